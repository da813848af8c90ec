package main

import (
	"github.com/BurntSushi/toml"

	"github.com/akeil/warp"
)

// job is a batch described in a toml file:
//
//  transform = "scale"
//  images = ["a.png", "b/*.jpg"]
//  [params]
//  factor_x = 2
//  factor_y = "0.5"
type job struct {
	Transform string                 `toml:"transform"`
	Output    string                 `toml:"output"`
	Images    []string               `toml:"images"`
	Params    map[string]interface{} `toml:"params"`
}

func readJob(path string) (job, error) {
	var j job
	md, err := toml.DecodeFile(path, &j)
	if err != nil {
		return j, warp.Wrap(err, "read job file %q", path)
	}

	undecoded := md.Undecoded()
	if len(undecoded) != 0 {
		return j, warp.NewInvalidParameter("unknown key %q in job file %q", undecoded[0].String(), path)
	}
	if j.Transform == "" {
		return j, warp.NewInvalidParameter("job file %q has no transform", path)
	}

	return j, nil
}

package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/warp"
)

func main() {
	warp.SetLogLevel("warning")

	app := kingpin.New("warp", "Rotate, scale, reflect and translate images")
	app.HelpFlag.Short('h')

	var (
		config   = app.Flag("config", "Configuration file").Short('c').String()
		output   = app.Flag("output", "Output directory").Short('o').String()
		jobs     = app.Flag("jobs", "Number of images processed in parallel").Short('j').Int()
		preview  = app.Flag("preview", "Write before/after images to this directory").String()
		report   = app.Flag("report", "Write a PDF report to this file").String()
		logLevel = app.Flag("log-level", "Log level (debug, info, warning, error, none)").String()
	)

	rotate := app.Command("rotate", "Rotate images around their center")
	var (
		angle     = rotate.Flag("angle", "Angle in degrees").Short('a').Required().String()
		rotateImg = rotate.Arg("images", "Image files").Required().Strings()
	)

	scale := app.Command("scale", "Scale images around their center")
	var (
		fx       = scale.Flag("fx", "Horizontal factor").Required().String()
		fy       = scale.Flag("fy", "Vertical factor").Required().String()
		scaleImg = scale.Arg("images", "Image files").Required().Strings()
	)

	reflect := app.Command("reflect", "Mirror images")
	var (
		axis       = reflect.Flag("axis", "horizontal or vertical").Required().String()
		reflectImg = reflect.Arg("images", "Image files").Required().Strings()
	)

	translate := app.Command("translate", "Shift images")
	var (
		dx           = translate.Flag("dx", "Horizontal offset in pixels").Required().String()
		dy           = translate.Flag("dy", "Vertical offset in pixels").Required().String()
		translateImg = translate.Arg("images", "Image files").Required().Strings()
	)

	batch := app.Command("batch", "Run a job file")
	jobFile := batch.Arg("jobfile", "toml job file").Required().String()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	s, err := loadSettings(*config)
	if err != nil {
		fail(err)
	}
	s.override(*output, *jobs, *logLevel, *preview, *report)

	err = warp.SetLogLevel(s.LogLevel)
	if err != nil {
		fail(err)
	}

	var failed int
	switch command {
	case "rotate":
		failed, err = doTransform(os.Stdout, s, command, params("angle", *angle), *rotateImg)
	case "scale":
		failed, err = doTransform(os.Stdout, s, command, params("factor_x", *fx, "factor_y", *fy), *scaleImg)
	case "reflect":
		failed, err = doTransform(os.Stdout, s, command, params("axis", *axis), *reflectImg)
	case "translate":
		failed, err = doTransform(os.Stdout, s, command, params("dx", *dx, "dy", *dy), *translateImg)
	case "batch":
		failed, err = doJob(s, *jobFile, *output)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fail(err)
	}
	if failed != 0 {
		fmt.Printf("%d image(s) failed\n", failed)
		os.Exit(1)
	}
	os.Exit(0)
}

func doJob(s settings, path, outputFlag string) (int, error) {
	j, err := readJob(path)
	if err != nil {
		return 0, err
	}
	// the job file may choose the output root, the command line wins
	if j.Output != "" && outputFlag == "" {
		s.Output = j.Output
	}
	return doTransform(os.Stdout, s, j.Transform, j.Params, j.Images)
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}

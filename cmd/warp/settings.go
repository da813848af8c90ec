package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/akeil/warp"
)

const envPrefix = "warp"

type settings struct {
	Output   string `toml:"output" envconfig:"OUTPUT"`
	Jobs     int    `toml:"jobs" envconfig:"JOBS"`
	LogLevel string `toml:"log_level" envconfig:"LOG_LEVEL"`
	Preview  string `toml:"preview" envconfig:"PREVIEW"`
	Report   string `toml:"report" envconfig:"REPORT"`
}

func defaultSettings() settings {
	return settings{
		Output:   warp.DefaultOutputRoot,
		Jobs:     1,
		LogLevel: "warning",
	}
}

// defaultConfigPath is $XDG_CONFIG_HOME/warp/config.toml.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "warp", "config.toml")
}

// loadSettings reads the config file and applies environment overrides.
// A missing file is only an error if the path was given explicitly.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	if path != "" {
		_, err := toml.DecodeFile(path, &s)
		if err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return s, warp.Wrap(err, "read config %q", path)
			}
		}
	}

	err := envconfig.Process(envPrefix, &s)
	if err != nil {
		return s, warp.Wrap(err, "read environment")
	}

	return s, nil
}

// override applies values from command line flags.
// Empty strings and non-positive numbers mean "not set".
func (s *settings) override(output string, jobs int, logLevel, preview, report string) {
	if output != "" {
		s.Output = output
	}
	if jobs > 0 {
		s.Jobs = jobs
	}
	if logLevel != "" {
		s.LogLevel = logLevel
	}
	if preview != "" {
		s.Preview = preview
	}
	if report != "" {
		s.Report = report
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "graphanon.yaml"

// fileConfig mirrors the optional YAML defaults file. Zero values mean
// "not set"; flags given on the command line always win.
type fileConfig struct {
	Alpha    float64 `yaml:"alpha"`
	Strategy string  `yaml:"strategy"`
	Metric   string  `yaml:"metric"`
	Seed     int64   `yaml:"seed"`
	Jobs     int     `yaml:"jobs"`
}

// loadFileConfig reads path, or defaultConfigPath when path is empty.
// A missing implicit default is fine; a missing explicit path is an error.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	implicit := path == ""
	if implicit {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if implicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// applyConfigDefaults copies file values into any flag the invocation
// did not set explicitly. Flags the running subcommand does not declare
// are skipped by pflag's Changed lookup.
func applyConfigDefaults(cmd *cobra.Command, cfg fileConfig) {
	f := cmd.Flags()
	if cfg.Alpha != 0 && !f.Changed("alpha") {
		flagAlpha = cfg.Alpha
	}
	if cfg.Strategy != "" && !f.Changed("strategy") {
		flagStrategy = cfg.Strategy
	}
	if cfg.Metric != "" && !f.Changed("metric") {
		flagMetric = cfg.Metric
	}
	if cfg.Seed != 0 && !f.Changed("seed") {
		flagSeed = cfg.Seed
	}
	if cfg.Jobs != 0 && !f.Changed("jobs") {
		flagJobs = cfg.Jobs
	}
}

// Package config loads the optional aoc.yaml configuration file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aakee/aoc2023/internal/errors"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = "aoc.yaml"

// Config controls where puzzle inputs are read from.
type Config struct {
	// InputsDir replaces the directory of every day's embedded default
	// input path, keeping the file name.
	InputsDir string `yaml:"inputs_dir"`
	// Inputs maps a day number to a full input path, overriding both
	// InputsDir and the embedded default.
	Inputs map[int]string `yaml:"inputs"`
}

// Load reads and parses the config file at path. A missing file at the
// default path yields an empty config; a path the user asked for
// explicitly must exist.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, errors.Configf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Configf("failed to parse config file %s: %v", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	for day, path := range cfg.Inputs {
		if day < 1 || day > 25 {
			return errors.Configf("inputs: day %d out of range", day)
		}
		if path == "" {
			return errors.Configf("inputs: empty path for day %d", day)
		}
	}
	return nil
}

// ResolveInput applies the precedence order for a day's input path:
// explicit argument, per-day override, inputs directory, embedded default.
func (c *Config) ResolveInput(day int, defaultPath, arg string) string {
	if arg != "" {
		return arg
	}
	if p, ok := c.Inputs[day]; ok {
		return p
	}
	if c.InputsDir != "" {
		return filepath.Join(c.InputsDir, filepath.Base(defaultPath))
	}
	return defaultPath
}

// Package config provides configuration loading from YAML files.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Library LibraryConfig `yaml:"library"`
	UI      UIConfig      `yaml:"ui"`
}

// LogConfig represents logging configuration. Logs always go to a
// file because the TUI owns the terminal.
type LogConfig struct {
	Level     string `yaml:"level" default:"info"`
	File      string `yaml:"file" default:"player.log"`
	MaxSizeMB int    `yaml:"max_size_mb" default:"10" validate:"gte=1"`
}

// LibraryConfig represents the canned library service configuration.
type LibraryConfig struct {
	Addr    string `yaml:"addr" default:"127.0.0.1:0"`
	DelayMs int    `yaml:"delay_ms" default:"600" validate:"gte=0,lte=10000"`
}

// UIConfig represents UI tuning knobs.
type UIConfig struct {
	BufferRows int `yaml:"buffer_rows" default:"5" validate:"gte=0,lte=100"`
}

// Load loads configuration from a YAML file. A missing file yields the
// default configuration; a present but invalid file is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "applying defaults")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parsing config")
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, errors.Wrap(err, "reading config")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return cfg, nil
}

// Package config loads the mlpipe CLI configuration from the environment.
package config

import (
	envparse "github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config carries the environment-driven settings of the mlpipe CLI.
type Config struct {
	// PrimitivesDir is the directory searched for named primitive metadata.
	PrimitivesDir string `env:"MLPIPE_PRIMITIVES_DIR" envDefault:"components/primitives"`
	// LogLevel selects the log level (debug, info, warn, error).
	LogLevel string `env:"MLPIPE_LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config

	err := envparse.Parse(&cfg)
	if err != nil {
		return cfg, errors.Wrap(err, "unable to parse environment")
	}

	return cfg, nil
}

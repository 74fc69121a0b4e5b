// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file and STAFFGEN_ env vars.
// - External errors are wrapped with this package's sentinel errors.
package config

import "github.com/okian/staffgen/internal/domain/model"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxCount caps the employees generated per request. Zero leaves only the
	// generator's hard limit in place.
	MaxCount int `koanf:"max_count"`

	// DefaultCount and the default age bounds seed the CLI flags.
	DefaultCount  int `koanf:"default_count"`
	DefaultMinAge int `koanf:"default_min_age"`
	DefaultMaxAge int `koanf:"default_max_age"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		Addr:          ":9080",
		MaxCount:      10_000,
		DefaultCount:  10,
		DefaultMinAge: 19,
		DefaultMaxAge: 35,
	}
}

// DefaultRequest builds a generation request from the configured defaults.
func (c *Config) DefaultRequest() model.GenerationRequest {
	return model.GenerationRequest{
		Count: c.DefaultCount,
		Age:   model.AgeRange{Min: c.DefaultMinAge, Max: c.DefaultMaxAge},
	}
}

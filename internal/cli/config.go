package cli

import (
	"time"

	"github.com/okian/staffgen/internal/domain/model"
)

// Config holds the options of one generate invocation.
type Config struct {
	BaseURL       string        // Service URL; empty runs the generator in-process
	Count         int           // Number of employees to generate
	MinAge        int           // Youngest age in whole years
	MaxAge        int           // Oldest age in whole years
	MaxCount      int           // In-process cap on Count; zero disables it
	Seed          uint64        // Non-zero seeds the in-process generator
	Timeout       time.Duration // Overall timeout of the run
	OutputFile    string        // Optional file receiving the result JSON
	LogFile       string        // Optional file mirroring the log output
	LogFormat     string        // text or json
	LogLevel      string        // debug, info, warn or error
	ShowEmployees bool          // Render the employee list as well
	Verbose       bool          // Enable debug logging
}

// Request converts the flags into a generation request.
func (c *Config) Request() model.GenerationRequest {
	return model.GenerationRequest{
		Count: c.Count,
		Age:   model.AgeRange{Min: c.MinAge, Max: c.MaxAge},
	}
}

// Remote reports whether the run targets a running service.
func (c *Config) Remote() bool {
	return c.BaseURL != ""
}

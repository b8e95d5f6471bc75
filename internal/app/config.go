package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"torus-life/pkg/core"
)

const (
	// AskSeedPercent makes the runner prompt for the seed percentage.
	AskSeedPercent = -1
	// DefaultSeedPercent is used when the prompt is answered with an empty line.
	DefaultSeedPercent = 25
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows           int
	Cols           int
	SeedPercent    int
	Seed           int64
	Interval       time.Duration
	MaxGenerations int
	Scale          int
	LogLevel       string
	LogFormat      string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:        40,
		Cols:        60,
		SeedPercent: AskSeedPercent,
		Interval:    core.DefaultInterval,
		Scale:       10,
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of grid columns")
	fs.IntVar(&c.SeedPercent, "percent", c.SeedPercent, "percentage of cells alive at start (0-100, -1 asks interactively)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for the initial state (0 picks one from the clock)")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs until extinction)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the GUI")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logging level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log output format: text or json")
}

// Params renders the board settings in the string-map form sim factories take.
func (c *Config) Params(seedPercent int) map[string]string {
	return map[string]string{
		"rows":         fmt.Sprint(c.Rows),
		"cols":         fmt.Sprint(c.Cols),
		"seed_percent": fmt.Sprint(seedPercent),
	}
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	var errs []error
	if c.Rows < 1 {
		errs = append(errs, fmt.Errorf("rows must be at least 1, got %d", c.Rows))
	}
	if c.Cols < 1 {
		errs = append(errs, fmt.Errorf("cols must be at least 1, got %d", c.Cols))
	}
	if c.SeedPercent < AskSeedPercent || c.SeedPercent > 100 {
		errs = append(errs, fmt.Errorf("percent must be between 0 and 100, got %d", c.SeedPercent))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %s", c.Interval))
	}
	if c.MaxGenerations < 0 {
		errs = append(errs, fmt.Errorf("generations must not be negative, got %d", c.MaxGenerations))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1, got %d", c.Scale))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat))
	}
	return errors.Join(errs...)
}

package life

import "strconv"

// Config controls the Life board dimensions and initial density.
type Config struct {
	Rows        int
	Cols        int
	SeedPercent int
}

// DefaultConfig returns the standard 40×60 board seeded at 25%.
func DefaultConfig() Config {
	return Config{Rows: 40, Cols: 60, SeedPercent: 25}
}

// FromMap populates a Config from a string map. Missing or invalid entries
// keep their default values.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed_percent"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.SeedPercent = parsed
		}
	}
	return c
}

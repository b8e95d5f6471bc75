package app

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclRunFile is the top-level structure of a run file.
type hclRunFile struct {
	Life *hclLife `hcl:"life,block"`
}

// hclLife holds the optional settings of the life block. Absent attributes
// stay nil and leave the current configuration untouched.
type hclLife struct {
	Rows        *int    `hcl:"rows,optional"`
	Cols        *int    `hcl:"cols,optional"`
	SeedPercent *int    `hcl:"seed_percent,optional"`
	Seed        *int64  `hcl:"seed,optional"`
	Interval    *string `hcl:"interval,optional"`
	Generations *int    `hcl:"generations,optional"`
	Scale       *int    `hcl:"scale,optional"`
	LogLevel    *string `hcl:"log_level,optional"`
	LogFormat   *string `hcl:"log_format,optional"`
}

// LoadFile overlays settings from the HCL run file at path onto c.
func (c *Config) LoadFile(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse run file %s: %w", path, diags)
	}
	return c.decode(path, file.Body)
}

// LoadBytes is LoadFile for an in-memory run file; filename is used in
// diagnostics only.
func (c *Config) LoadBytes(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse run file %s: %w", filename, diags)
	}
	return c.decode(filename, file.Body)
}

func (c *Config) decode(filename string, body hcl.Body) error {
	var parsed hclRunFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode run file %s: %w", filename, diags)
	}
	l := parsed.Life
	if l == nil {
		return nil
	}

	if l.Rows != nil {
		c.Rows = *l.Rows
	}
	if l.Cols != nil {
		c.Cols = *l.Cols
	}
	if l.SeedPercent != nil {
		c.SeedPercent = *l.SeedPercent
	}
	if l.Seed != nil {
		c.Seed = *l.Seed
	}
	if l.Interval != nil {
		d, err := time.ParseDuration(*l.Interval)
		if err != nil {
			return fmt.Errorf("run file %s: invalid interval: %w", filename, err)
		}
		c.Interval = d
	}
	if l.Generations != nil {
		c.MaxGenerations = *l.Generations
	}
	if l.Scale != nil {
		c.Scale = *l.Scale
	}
	if l.LogLevel != nil {
		c.LogLevel = *l.LogLevel
	}
	if l.LogFormat != nil {
		c.LogFormat = *l.LogFormat
	}
	return nil
}

// Package config handles loading of batch conversion files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/csv2geojson/internal/convert"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Format string `yaml:"format,omitempty"`
	Jobs   []Job  `yaml:"jobs"`
	Indent bool   `yaml:"indent,omitempty"`
}

// Job represents a single table to convert.
type Job struct {
	// nil means inherit from Config
	Indent *bool `yaml:"indent,omitempty"`

	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Format string `yaml:"format,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that every job is complete and uniquely named.
func (c *Config) Validate() error {
	if _, err := convert.ParseFormat(c.Format); err != nil {
		return err
	}

	var errs []error
	seen := make(map[string]bool, len(c.Jobs))
	for i, job := range c.Jobs {
		switch {
		case job.Name == "":
			errs = append(errs, fmt.Errorf("job #%d: name is required", i+1))
			continue
		case seen[job.Name]:
			errs = append(errs, fmt.Errorf("job %q: duplicate name", job.Name))
		}
		seen[job.Name] = true

		if job.Input == "" {
			errs = append(errs, fmt.Errorf("job %q: input is required", job.Name))
		}
		if job.Output == "" {
			errs = append(errs, fmt.Errorf("job %q: output is required", job.Name))
		}
		if _, err := convert.ParseFormat(job.Format); err != nil {
			errs = append(errs, fmt.Errorf("job %q: %w", job.Name, err))
		}
	}

	return errors.Join(errs...)
}

// Options resolves the write options of a job against the file defaults.
func (c *Config) Options(job Job) convert.WriteOptions {
	format := job.Format
	if format == "" {
		format = c.Format
	}
	// formats are checked by Validate
	f, _ := convert.ParseFormat(format)

	indent := c.Indent
	if job.Indent != nil {
		indent = *job.Indent
	}

	return convert.WriteOptions{Format: f, Indent: indent}
}

// Select returns the jobs named in names, in the given order.
// Unknown names are returned separately. An empty names list selects all jobs.
func (c *Config) Select(names []string) (jobs []Job, unknown []string) {
	if len(names) == 0 {
		return c.Jobs, nil
	}

	available := make(map[string]Job, len(c.Jobs))
	for _, j := range c.Jobs {
		available[j.Name] = j
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		if j, ok := available[name]; ok {
			jobs = append(jobs, j)
		} else {
			unknown = append(unknown, name)
		}
	}

	return jobs, unknown
}

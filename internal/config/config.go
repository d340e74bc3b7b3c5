package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries everything one run needs. The yaml-tagged fields form the
// preset format; the rest is per-invocation state and never serialized.
type Config struct {
	Input     string `yaml:"-"`
	OutputDir string `yaml:"-"`
	LogLevel  string `yaml:"-"`

	Threshold       int     `yaml:"threshold"`         // binarization percent
	Connectivity    int     `yaml:"connectivity"`      // 4 or 8
	Deskew          int     `yaml:"deskew"`            // deskew search percent
	Fuzz            int     `yaml:"fuzz"`              // trim fuzz percent
	MinAreaFraction float64 `yaml:"min_area_fraction"` // noise cutoff relative to the largest photo
	DPI             int     `yaml:"dpi"`               // PDF page render resolution
	Jobs            int     `yaml:"jobs"`              // parallel batches, 0 = one per CPU core
}

func Default() *Config {
	return &Config{
		LogLevel:        "warning",
		Threshold:       90,
		Connectivity:    4,
		Deskew:          40,
		Fuzz:            10,
		MinAreaFraction: 0.1,
		DPI:             300,
		Jobs:            1,
	}
}

func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100, got %d", c.Threshold)
	}
	if c.Connectivity != 4 && c.Connectivity != 8 {
		return fmt.Errorf("connectivity must be 4 or 8, got %d", c.Connectivity)
	}
	if c.Deskew < 0 || c.Deskew > 100 {
		return fmt.Errorf("deskew must be between 0 and 100, got %d", c.Deskew)
	}
	if c.Fuzz < 0 || c.Fuzz > 100 {
		return fmt.Errorf("fuzz must be between 0 and 100, got %d", c.Fuzz)
	}
	if c.MinAreaFraction < 0 || c.MinAreaFraction > 1 {
		return fmt.Errorf("min area fraction must be between 0 and 1, got %g", c.MinAreaFraction)
	}
	if c.DPI < 1 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be 0 or more, got %d", c.Jobs)
	}
	if c.LogLevel != "warning" && c.LogLevel != "info" {
		return fmt.Errorf("log level must be warning or info, got %q", c.LogLevel)
	}
	return nil
}

// LoadPreset reads tunable parameters from a YAML preset. Keys the file
// omits keep their default values.
func LoadPreset(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	return cfg, nil
}

// WritePreset saves the tunable parameters as a YAML preset.
func (c *Config) WritePreset(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}

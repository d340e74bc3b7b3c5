package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Threshold != 90 {
		t.Errorf("Threshold = %d, want 90", cfg.Threshold)
	}
	if cfg.Connectivity != 4 {
		t.Errorf("Connectivity = %d, want 4", cfg.Connectivity)
	}
	if cfg.Deskew != 40 {
		t.Errorf("Deskew = %d, want 40", cfg.Deskew)
	}
	if cfg.Fuzz != 10 {
		t.Errorf("Fuzz = %d, want 10", cfg.Fuzz)
	}
	if cfg.MinAreaFraction != 0.1 {
		t.Errorf("MinAreaFraction = %g, want 0.1", cfg.MinAreaFraction)
	}
	if cfg.LogLevel != "warning" {
		t.Errorf("LogLevel = %q, want warning", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"threshold too low", func(c *Config) { c.Threshold = -1 }, "threshold"},
		{"threshold too high", func(c *Config) { c.Threshold = 101 }, "threshold"},
		{"bad connectivity", func(c *Config) { c.Connectivity = 6 }, "connectivity"},
		{"deskew too high", func(c *Config) { c.Deskew = 150 }, "deskew"},
		{"fuzz negative", func(c *Config) { c.Fuzz = -5 }, "fuzz"},
		{"fraction above one", func(c *Config) { c.MinAreaFraction = 1.5 }, "min area fraction"},
		{"zero dpi", func(c *Config) { c.DPI = 0 }, "dpi"},
		{"negative jobs", func(c *Config) { c.Jobs = -2 }, "jobs"},
		{"unknown log level", func(c *Config) { c.LogLevel = "debug" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	cfg := Default()
	cfg.Threshold = 100
	cfg.Connectivity = 8
	cfg.Deskew = 0
	cfg.Fuzz = 100
	cfg.MinAreaFraction = 1
	cfg.Jobs = 0
	cfg.LogLevel = "info"

	if err := cfg.Validate(); err != nil {
		t.Errorf("boundary values must validate, got %v", err)
	}
}

func TestPresetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")

	cfg := Default()
	cfg.Threshold = 75
	cfg.Connectivity = 8
	cfg.MinAreaFraction = 0.25
	cfg.Jobs = 3
	if err := cfg.WritePreset(path); err != nil {
		t.Fatalf("WritePreset: %v", err)
	}

	loaded, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if loaded.Threshold != 75 || loaded.Connectivity != 8 || loaded.MinAreaFraction != 0.25 || loaded.Jobs != 3 {
		t.Errorf("loaded %+v, want the written parameters back", loaded)
	}
	if loaded.Deskew != 40 || loaded.Fuzz != 10 {
		t.Errorf("untouched parameters changed: %+v", loaded)
	}
}

func TestLoadPresetPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(path, []byte("threshold: 60\n"), 0644); err != nil {
		t.Fatalf("write preset: %v", err)
	}

	cfg, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if cfg.Threshold != 60 {
		t.Errorf("Threshold = %d, want 60", cfg.Threshold)
	}
	if cfg.Connectivity != 4 || cfg.Deskew != 40 || cfg.DPI != 300 {
		t.Errorf("omitted keys must keep defaults, got %+v", cfg)
	}
}

func TestLoadPresetErrors(t *testing.T) {
	if _, err := LoadPreset(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing preset file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("threshold: [not a number\n"), 0644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	if _, err := LoadPreset(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestPresetOmitsRuntimeFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")

	cfg := Default()
	cfg.Input = "/scans/batch1.png"
	cfg.OutputDir = "/out"
	if err := cfg.WritePreset(path); err != nil {
		t.Fatalf("WritePreset: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read preset: %v", err)
	}
	text := string(data)
	if strings.Contains(text, "batch1.png") || strings.Contains(text, "/out") {
		t.Errorf("preset must not capture per-run paths:\n%s", text)
	}
}

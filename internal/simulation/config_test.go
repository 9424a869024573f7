package simulation

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero bodies", func(c *Config) { c.BodyCount = 0 }},
		{"negative bodies", func(c *Config) { c.BodyCount = -3 }},
		{"zero mass", func(c *Config) { c.Mass.Min = 0 }},
		{"inverted mass range", func(c *Config) { c.Mass = Range{Min: 40, Max: 20} }},
		{"inverted speed range", func(c *Config) { c.Speed = Range{Min: 5, Max: 1} }},
		{"zero radius scale", func(c *Config) { c.RadiusScale = 0 }},
		{"zero width", func(c *Config) { c.Arena.Width = 0 }},
		{"negative height", func(c *Config) { c.Arena.Height = -1 }},
		{"zero trajectory", func(c *Config) { c.TrajectoryCapacity = 0 }},
		{"negative margin", func(c *Config) { c.ClearanceMargin = -1 }},
		{"no attempts", func(c *Config) { c.MaxPlacementAttempts = 0 }},
		{"NaN min mass", func(c *Config) { c.Mass.Min = math.NaN() }},
		{"NaN max mass", func(c *Config) { c.Mass.Max = math.NaN() }},
		{"infinite max mass", func(c *Config) { c.Mass.Max = math.Inf(1) }},
		{"NaN speed", func(c *Config) { c.Speed.Min = math.NaN() }},
		{"infinite speed", func(c *Config) { c.Speed.Max = math.Inf(1) }},
		{"NaN radius scale", func(c *Config) { c.RadiusScale = math.NaN() }},
		{"infinite width", func(c *Config) { c.Arena.Width = math.Inf(1) }},
		{"NaN height", func(c *Config) { c.Arena.Height = math.NaN() }},
		{"infinite margin", func(c *Config) { c.ClearanceMargin = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrConfiguration) {
				t.Errorf("Expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	data := `{"body_count": 4, "mass": {"min": 5, "max": 8}, "arena": {"width": 300, "height": 200}, "seed": 9}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.BodyCount != 4 || cfg.Mass != (Range{Min: 5, Max: 8}) || cfg.Arena != (Arena{Width: 300, Height: 200}) || cfg.Seed != 9 {
		t.Errorf("Unexpected config from file: %+v", cfg)
	}
	// Missing fields keep defaults
	def := DefaultConfig()
	if cfg.Speed != def.Speed || cfg.TrajectoryCapacity != def.TrajectoryCapacity || cfg.ClearanceMargin != def.ClearanceMargin {
		t.Errorf("Expected defaults for missing fields, got %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for malformed file")
	}
}

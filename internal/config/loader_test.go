package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// Run from a temp dir and home so no on-disk config interferes
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.World.Preset != "flat" {
		t.Errorf("Preset = %q, expected flat", cfg.World.Preset)
	}
	if cfg.World.Size != 8 {
		t.Errorf("Size = %d, expected 8", cfg.World.Size)
	}
	if cfg.World.DirtChance != 0.3 {
		t.Errorf("DirtChance = %v, expected 0.3", cfg.World.DirtChance)
	}
	if cfg.Camera.Sensitivity != 0.3 {
		t.Errorf("Sensitivity = %v, expected 0.3", cfg.Camera.Sensitivity)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("world:\n  preset: hills\n  size: 12\n  trees: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}

	if cfg.World.Preset != "hills" {
		t.Errorf("Preset = %q, expected hills", cfg.World.Preset)
	}
	if cfg.World.Size != 12 {
		t.Errorf("Size = %d, expected 12", cfg.World.Size)
	}
	// Unset values are sanitized back to defaults
	if cfg.Camera.Sensitivity != 0.3 {
		t.Errorf("Sensitivity = %v, expected sanitized default 0.3", cfg.Camera.Sensitivity)
	}
	if cfg.View.TileSize != 3 {
		t.Errorf("TileSize = %v, expected sanitized default 3", cfg.View.TileSize)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Config)
		check func(Config) bool
	}{
		{
			name:  "negative dirt chance",
			mod:   func(c *Config) { c.World.DirtChance = -0.5 },
			check: func(c Config) bool { return c.World.DirtChance == 0.3 },
		},
		{
			name:  "dirt chance above one",
			mod:   func(c *Config) { c.World.DirtChance = 1.5 },
			check: func(c Config) bool { return c.World.DirtChance == 0.3 },
		},
		{
			name:  "degenerate world size",
			mod:   func(c *Config) { c.World.Size = 0 },
			check: func(c Config) bool { return c.World.Size == 8 },
		},
		{
			name:  "more trees than columns",
			mod:   func(c *Config) { c.World.Trees = 1000 },
			check: func(c Config) bool { return c.World.Trees == 3 },
		},
		{
			name:  "zero sensitivity",
			mod:   func(c *Config) { c.Camera.Sensitivity = 0 },
			check: func(c Config) bool { return c.Camera.Sensitivity == 0.3 },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mod(&cfg)
			cfg.Sanitize()
			if !tc.check(cfg) {
				t.Errorf("Sanitize left invalid value: %+v", cfg)
			}
		})
	}
}

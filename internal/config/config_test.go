package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"physics-sim/internal/physics"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	p := Default().Params()
	if p != physics.DefaultParams() {
		t.Errorf("Expected default params %+v, got %+v", physics.DefaultParams(), p)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected Load not to create the file")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := "world:\n  gravity: -9.8\n  mode: radial\n  radial_walls: true\nspawn:\n  radius: 4\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.World.Gravity != -9.8 || cfg.World.Mode != physics.Radial || !cfg.World.RadialWalls {
		t.Errorf("Expected world overrides, got %+v", cfg.World)
	}
	if cfg.Spawn.Radius != 4 {
		t.Errorf("Expected radius 4, got %v", cfg.Spawn.Radius)
	}
	if cfg.World.RightWall != physics.RightWall || cfg.Window.Title != "Physics" {
		t.Errorf("Expected untouched settings to keep defaults, got %+v", cfg)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown mode", "world:\n  mode: sideways\n"},
		{"malformed yaml", "world: [\n"},
		{"radius out of range", "spawn:\n  radius: 100\n"},
		{"zero wall", "world:\n  right_wall: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sim.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if cfg != Default() {
				t.Errorf("Expected defaults alongside the error, got %+v", cfg)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sim.yaml")
	cfg := Default()
	cfg.World.Mode = physics.Radial
	cfg.Spawn.BurstCount = 12
	cfg.Debug.ShowStats = true
	cfg.Debug.ShowMem = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"elasticity zero", func(c *Config) { c.Spawn.Elasticity = 0 }},
		{"elasticity above one", func(c *Config) { c.Spawn.Elasticity = 1.2 }},
		{"inverted radius range", func(c *Config) { c.Spawn.MinRadius, c.Spawn.MaxRadius = 10, 5 }},
		{"negative burst", func(c *Config) { c.Spawn.BurstCount = -1 }},
		{"zero scale", func(c *Config) { c.Window.Scale = 0 }},
		{"zero max dt", func(c *Config) { c.Window.MaxDt = 0 }},
		{"zero gravity distance", func(c *Config) { c.World.MinGravityDistance = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PHYSICS_SIM_GRAVITY", "-100")
	t.Setenv("PHYSICS_SIM_MODE", "radial")
	t.Setenv("PHYSICS_SIM_RADIAL_WALLS", "1")
	t.Setenv("PHYSICS_SIM_TITLE", "Orbits")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.World.Gravity != -100 || cfg.World.Mode != physics.Radial || !cfg.World.RadialWalls {
		t.Errorf("Expected env overrides, got %+v", cfg.World)
	}
	if cfg.Window.Title != "Orbits" {
		t.Errorf("Expected title Orbits, got %q", cfg.Window.Title)
	}
}

func TestApplyEnvErrorLeavesConfigUntouched(t *testing.T) {
	tests := map[string]string{
		"PHYSICS_SIM_GRAVITY":    "heavy",
		"PHYSICS_SIM_MODE":       "spiral",
		"PHYSICS_SIM_ELASTICITY": "3",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			cfg := Default()
			if err := cfg.ApplyEnv(); err == nil {
				t.Fatal("Expected an error")
			}
			if cfg != Default() {
				t.Errorf("Expected config unchanged, got %+v", cfg)
			}
		})
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"physics-sim/internal/env"
	"physics-sim/internal/physics"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/sim.yaml"

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid config")

// World holds the physics parameters.
type World struct {
	RightWall          float64             `yaml:"right_wall"`
	Height             float64             `yaml:"height"`
	Gravity            float64             `yaml:"gravity"`
	Mode               physics.GravityMode `yaml:"mode"`
	GravityConstant    float64             `yaml:"gravity_constant"`
	MinGravityDistance float64             `yaml:"min_gravity_distance"`
	RadialWalls        bool                `yaml:"radial_walls"`
	CollisionLogEvery  uint64              `yaml:"collision_log_every"`
}

// Spawn holds the spawn marker and burst settings.
type Spawn struct {
	Radius       float64 `yaml:"radius"`
	MinRadius    float64 `yaml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius"`
	Elasticity   float64 `yaml:"elasticity"`
	LaunchScale  float64 `yaml:"launch_scale"`
	BurstCount   int     `yaml:"burst_count"`
	BurstSpacing float64 `yaml:"burst_spacing"`
}

// Window holds the window and frame settings of the interactive shell.
type Window struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Scale     float64 `yaml:"scale"`
	Title     string  `yaml:"title"`
	TargetFPS int     `yaml:"target_fps"`
	MaxDt     float64 `yaml:"max_dt"`
}

// Debug holds overlay toggles. Persisted across runs.
type Debug struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowMem   bool `yaml:"show_mem"`
	ShowStats bool `yaml:"show_stats"`
}

// Config is the whole simulator configuration.
type Config struct {
	World  World  `yaml:"world"`
	Spawn  Spawn  `yaml:"spawn"`
	Window Window `yaml:"window"`
	Debug  Debug  `yaml:"debug"`
}

// Default returns the classic sandbox: a 400x300 world drawn at 2x in an 800x600 window,
// gravity -400, marker radius 10 (1..30), launch scale 2.5, bursts of 50 bodies 0.3 apart.
func Default() Config {
	p := physics.DefaultParams()
	return Config{
		World: World{
			RightWall:          p.RightWall,
			Height:             300,
			Gravity:            p.Gravity,
			Mode:               p.Mode,
			GravityConstant:    p.GravityConstant,
			MinGravityDistance: p.MinGravityDistance,
			CollisionLogEvery:  p.CollisionLogEvery,
		},
		Spawn: Spawn{
			Radius:       10,
			MinRadius:    1,
			MaxRadius:    30,
			Elasticity:   physics.DefaultElasticity,
			LaunchScale:  2.5,
			BurstCount:   50,
			BurstSpacing: 0.3,
		},
		Window: Window{
			Width:     800,
			Height:    600,
			Scale:     2,
			Title:     "Physics",
			TargetFPS: 120,
			MaxDt:     0.05,
		},
		Debug: Debug{
			ShowFPS:   true,
			ShowMem:   false,
			ShowStats: false,
		},
	}
}

// Params converts the world section into physics parameters.
func (c Config) Params() physics.Params {
	return physics.Params{
		RightWall:          c.World.RightWall,
		Gravity:            c.World.Gravity,
		Mode:               c.World.Mode,
		GravityConstant:    c.World.GravityConstant,
		MinGravityDistance: c.World.MinGravityDistance,
		RadialWalls:        c.World.RadialWalls,
		CollisionLogEvery:  c.World.CollisionLogEvery,
	}
}

// Validate reports the first setting that would make the simulation misbehave.
func (c Config) Validate() error {
	switch {
	case c.World.RightWall <= 0:
		return fmt.Errorf("%w: world.right_wall must be positive, got %v", ErrInvalid, c.World.RightWall)
	case c.World.Height <= 0:
		return fmt.Errorf("%w: world.height must be positive, got %v", ErrInvalid, c.World.Height)
	case c.World.GravityConstant <= 0:
		return fmt.Errorf("%w: world.gravity_constant must be positive, got %v", ErrInvalid, c.World.GravityConstant)
	case c.World.MinGravityDistance <= 0:
		return fmt.Errorf("%w: world.min_gravity_distance must be positive, got %v", ErrInvalid, c.World.MinGravityDistance)
	case c.Spawn.MinRadius <= 0 || c.Spawn.MaxRadius < c.Spawn.MinRadius:
		return fmt.Errorf("%w: spawn radius range [%v, %v]", ErrInvalid, c.Spawn.MinRadius, c.Spawn.MaxRadius)
	case c.Spawn.Radius < c.Spawn.MinRadius || c.Spawn.Radius > c.Spawn.MaxRadius:
		return fmt.Errorf("%w: spawn.radius %v outside [%v, %v]", ErrInvalid, c.Spawn.Radius, c.Spawn.MinRadius, c.Spawn.MaxRadius)
	case c.Spawn.Elasticity <= 0 || c.Spawn.Elasticity > 1:
		return fmt.Errorf("%w: spawn.elasticity must be in (0, 1], got %v", ErrInvalid, c.Spawn.Elasticity)
	case c.Spawn.BurstCount < 0:
		return fmt.Errorf("%w: spawn.burst_count must not be negative, got %d", ErrInvalid, c.Spawn.BurstCount)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window.scale must be positive, got %v", ErrInvalid, c.Window.Scale)
	case c.Window.MaxDt <= 0:
		return fmt.Errorf("%w: window.max_dt must be positive, got %v", ErrInvalid, c.Window.MaxDt)
	}
	return nil
}

// Load reads the config from path. Settings missing from the file keep their Default()
// values. A missing file returns Default() and does not create one; a file that cannot be
// parsed or fails Validate returns Default() together with the error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path as YAML, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from PHYSICS_SIM_* variables (GRAVITY, MODE, RIGHT_WALL,
// RADIAL_WALLS, RADIUS, ELASTICITY, TITLE) and validates the result. On error c is unchanged.
func (c *Config) ApplyEnv() error {
	next := *c
	floats := []struct {
		name string
		dst  *float64
	}{
		{"GRAVITY", &next.World.Gravity},
		{"RIGHT_WALL", &next.World.RightWall},
		{"RADIUS", &next.Spawn.Radius},
		{"ELASTICITY", &next.Spawn.Elasticity},
	}
	for _, f := range floats {
		v, ok, err := env.Float(f.name)
		if err != nil {
			return fmt.Errorf("%s%s: %w", env.Prefix, f.name, err)
		}
		if ok {
			*f.dst = v
		}
	}
	if s, ok := env.String("MODE"); ok {
		mode, err := physics.ParseGravityMode(s)
		if err != nil {
			return fmt.Errorf("%sMODE: %w", env.Prefix, err)
		}
		next.World.Mode = mode
	}
	if v, ok, err := env.Bool("RADIAL_WALLS"); err != nil {
		return fmt.Errorf("%sRADIAL_WALLS: %w", env.Prefix, err)
	} else if ok {
		next.World.RadialWalls = v
	}
	if s, ok := env.String("TITLE"); ok {
		next.Window.Title = s
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

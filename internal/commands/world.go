package commands

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"physics-sim/internal/config"
	"physics-sim/internal/layout"
	"physics-sim/internal/physics"
)

// Logger receives command output. *logger.Logger satisfies it.
type Logger interface {
	Log(line string)
}

// RegisterWorld registers the simulation commands (spawn, burst, delete, reset, mode,
// gravity, refocus, layout, stats, help) against w. Defaults for radius, elasticity and
// bursts come from cfg. Output lines go to out.
func RegisterWorld(reg *Registry, w *physics.World, cfg config.Config, out Logger) {
	center := r2.Vec{X: cfg.World.RightWall / 2, Y: cfg.World.Height / 2}

	{
		fs := NewFlagSet("spawn")
		x := fs.Float64("x", center.X, "center x")
		y := fs.Float64("y", center.Y, "center y")
		u := fs.Float64("u", 0, "velocity x")
		v := fs.Float64("v", 0, "velocity y")
		r := fs.Float64("r", cfg.Spawn.Radius, "radius")
		e := fs.Float64("e", cfg.Spawn.Elasticity, "elasticity in (0, 1]")
		reg.Register("spawn", "spawn [-x X] [-y Y] [-u U] [-v V] [-r R] [-e E]", fs, func() error {
			if *r <= 0 {
				return fmt.Errorf("spawn: radius must be positive, got %v", *r)
			}
			w.SpawnElastic(r2.Vec{X: *x, Y: *y}, r2.Vec{X: *u, Y: *v}, *r, *e)
			out.Log(fmt.Sprintf("spawned body at (%g, %g) r=%g", *x, *y, *r))
			return nil
		})
	}

	{
		fs := NewFlagSet("burst")
		x := fs.Float64("x", center.X, "first body x")
		y := fs.Float64("y", center.Y, "first body y")
		u := fs.Float64("u", 0, "velocity x")
		v := fs.Float64("v", 0, "velocity y")
		r := fs.Float64("r", cfg.Spawn.Radius, "radius")
		e := fs.Float64("e", cfg.Spawn.Elasticity, "elasticity in (0, 1]")
		n := fs.Int("n", cfg.Spawn.BurstCount, "number of bodies")
		spacing := fs.Float64("spacing", cfg.Spawn.BurstSpacing, "distance along x between bodies")
		reg.Register("burst", "burst [-x X] [-y Y] [-u U] [-v V] [-r R] [-e E] [-n N] [-spacing S]", fs, func() error {
			if *r <= 0 {
				return fmt.Errorf("burst: radius must be positive, got %v", *r)
			}
			w.SpawnBurst(r2.Vec{X: *x, Y: *y}, r2.Vec{X: *u, Y: *v}, *r, *e, *n, *spacing)
			out.Log(fmt.Sprintf("spawned %d bodies", max(*n, 0)))
			return nil
		})
	}

	{
		fs := NewFlagSet("delete")
		x := fs.Float64("x", center.X, "point x")
		y := fs.Float64("y", center.Y, "point y")
		reg.Register("delete", "delete -x X -y Y", fs, func() error {
			n := w.DeleteNear(r2.Vec{X: *x, Y: *y})
			out.Log(fmt.Sprintf("deleted %d bodies", n))
			return nil
		})
	}

	reg.Register("reset", "reset", NewFlagSet("reset"), func() error {
		w.Reset()
		out.Log("world reset")
		return nil
	})

	{
		fs := NewFlagSet("mode")
		reg.Register("mode", "mode uniform|radial", fs, func() error {
			if fs.NArg() != 1 {
				return fmt.Errorf("mode: expected one of uniform, radial")
			}
			m, err := physics.ParseGravityMode(fs.Arg(0))
			if err != nil {
				return fmt.Errorf("mode: %w", err)
			}
			w.SetMode(m)
			out.Log("mode: " + m.String())
			return nil
		})
	}

	{
		fs := NewFlagSet("gravity")
		g := fs.Float64("g", math.NaN(), "uniform acceleration on y (negative pulls down)")
		reg.Register("gravity", "gravity -g VALUE", fs, func() error {
			if math.IsNaN(*g) {
				return fmt.Errorf("gravity: -g is required")
			}
			w.SetGravityMagnitude(*g)
			out.Log(fmt.Sprintf("gravity: %g", w.Gravity()))
			return nil
		})
	}

	reg.Register("refocus", "refocus", NewFlagSet("refocus"), func() error {
		w.Refocus(center)
		return nil
	})

	{
		fs := NewFlagSet("layout")
		kind := fs.String("kind", "grid", "grid or cloud")
		seed := fs.Int64("seed", 0, "noise seed (0 = time based)")
		cols := fs.Int("cols", layout.DefaultGridOptions().Columns, "grid columns")
		rows := fs.Int("rows", layout.DefaultGridOptions().Rows, "grid rows")
		n := fs.Int("n", layout.DefaultCloudOptions().Count, "cloud size")
		reg.Register("layout", "layout [-kind grid|cloud] [-seed S] [-cols C] [-rows R] [-n N]", fs, func() error {
			var spawns []layout.Spawn
			switch strings.ToLower(*kind) {
			case "grid":
				opts := layout.DefaultGridOptions()
				opts.Columns, opts.Rows, opts.Seed = *cols, *rows, *seed
				spawns = layout.Grid(opts)
			case "cloud":
				opts := layout.DefaultCloudOptions()
				opts.Center, opts.Count, opts.Seed = center, *n, *seed
				spawns = layout.Cloud(opts)
			default:
				return fmt.Errorf("layout: unknown kind %q", *kind)
			}
			layout.Apply(w, spawns)
			out.Log(fmt.Sprintf("layout %s: %d bodies", *kind, len(spawns)))
			return nil
		})
	}

	reg.Register("stats", "stats", NewFlagSet("stats"), func() error {
		out.Log(fmt.Sprintf("bodies=%d mode=%s gravity=%g collisions=%d energy=%.1f",
			w.Len(), w.Mode(), w.Gravity(), w.Collisions(), w.TotalEnergy()))
		return nil
	})

	reg.Register("help", "help", NewFlagSet("help"), func() error {
		for _, name := range reg.Names() {
			out.Log("cmd " + reg.Usage(name))
		}
		return nil
	})
}

package main

import (
	"flag"
	"fmt"
	"os"

	"physics-sim/internal/commands"
	"physics-sim/internal/config"
	"physics-sim/internal/debug"
	"physics-sim/internal/env"
	"physics-sim/internal/graphics"
	"physics-sim/internal/input"
	"physics-sim/internal/logger"
	"physics-sim/internal/physics"
	"physics-sim/internal/render"
	"physics-sim/internal/terminal"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "YAML config file")
	envPath := flag.String("env", ".env", "dotenv file with PHYSICS_SIM_* overrides")
	logPath := flag.String("log", logger.DefaultPath, "log file (empty keeps logs in memory)")
	layoutKind := flag.String("layout", "", "initial layout: grid or cloud")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	if err := env.Load(*envPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(*logPath)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Logf("config: %v (using defaults)", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Logf("env: %v", err)
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	world := physics.NewWorld(cfg.Params())
	world.SetLogger(log)

	reg := commands.NewRegistry()
	commands.RegisterWorld(reg, world, cfg, log)
	if *layoutKind != "" {
		if err := reg.Execute([]string{"layout", "-kind", *layoutKind}); err != nil {
			log.Log(err.Error())
		}
	}

	vp := input.Viewport{Scale: cfg.Window.Scale, WorldHeight: cfg.World.Height}
	marker := input.NewMarker(cfg.Spawn)
	ctrl := input.NewController(world, marker, cfg.Spawn)
	term := terminal.New(log, reg)
	rend := render.New(vp, cfg.World.RightWall)
	dbg := debug.New(cfg.Debug)

	update := func(dt float64) {
		term.Update()
		if !term.IsOpen() {
			ctrl.Update(vp)
		}
		if ctrl.Paused() {
			return
		}
		world.Step(min(dt, cfg.Window.MaxDt))
	}
	draw := func() {
		rend.Draw(world.Snapshot(), marker)
		dbg.Draw(debug.Stats{
			Bodies:     world.Len(),
			Collisions: world.Collisions(),
			Energy:     world.TotalEnergy(),
			Mode:       world.Mode().String(),
			Paused:     ctrl.Paused(),
		})
		term.Draw()
	}
	graphics.Run(cfg.Window, update, draw)
}

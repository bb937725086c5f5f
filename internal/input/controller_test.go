package input

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"physics-sim/internal/config"
	"physics-sim/internal/physics"
)

func newController() (*Controller, *physics.World, *Marker) {
	cfg := config.Default()
	w := physics.NewWorld(cfg.Params())
	m := NewMarker(cfg.Spawn)
	return NewController(w, m, cfg.Spawn), w, m
}

func TestControllerLaunch(t *testing.T) {
	c, w, m := newController()

	c.Apply(Frame{Pointer: r2.Vec{X: 100, Y: 100}, PressLeft: true})
	c.Apply(Frame{Pointer: r2.Vec{X: 90, Y: 100}, Grow: 2})
	if !m.Visible || m.Radius != 12 {
		t.Fatalf("Expected visible marker with radius 12, got visible=%v r=%v", m.Visible, m.Radius)
	}
	c.Apply(Frame{Pointer: r2.Vec{X: 90, Y: 100}, ReleaseLeft: true})

	if w.Len() != 1 {
		t.Fatalf("Expected 1 body, got %d", w.Len())
	}
	b := w.Bodies()[0]
	if b.Position != (r2.Vec{X: 100, Y: 100}) || b.Velocity != (r2.Vec{X: 25}) || b.Radius() != 12 {
		t.Errorf("Unexpected body %+v", b)
	}

	// A second release without a press spawns nothing.
	c.Apply(Frame{ReleaseLeft: true})
	if w.Len() != 1 {
		t.Errorf("Expected release without press to be ignored, got %d bodies", w.Len())
	}
}

func TestControllerSpreadLaunch(t *testing.T) {
	c, w, _ := newController()
	c.Apply(Frame{Pointer: r2.Vec{X: 50, Y: 200}, PressLeft: true})
	c.Apply(Frame{Pointer: r2.Vec{X: 50, Y: 200}, ReleaseLeft: true, Spread: true})

	want := 1 + config.Default().Spawn.BurstCount
	if w.Len() != want {
		t.Errorf("Expected %d bodies, got %d", want, w.Len())
	}
}

func TestControllerSpreadLaunchUsesSpawnElasticity(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.Elasticity = 0.6
	w := physics.NewWorld(cfg.Params())
	c := NewController(w, NewMarker(cfg.Spawn), cfg.Spawn)

	c.Apply(Frame{Pointer: r2.Vec{X: 50, Y: 200}, PressLeft: true})
	c.Apply(Frame{Pointer: r2.Vec{X: 50, Y: 200}, ReleaseLeft: true, Spread: true})

	for i, b := range w.Bodies() {
		if b.Elasticity() != 0.6 {
			t.Fatalf("body %d: expected elasticity 0.6, got %v", i, b.Elasticity())
		}
	}
}

func TestControllerKeys(t *testing.T) {
	c, w, _ := newController()
	w.Spawn(r2.Vec{X: 100, Y: 100}, r2.Vec{}, 10)
	w.Spawn(r2.Vec{X: 300, Y: 100}, r2.Vec{}, 10)

	c.Apply(Frame{Pointer: r2.Vec{X: 95, Y: 100}, PressRight: true})
	if w.Len() != 1 {
		t.Fatalf("Expected right click to delete one body, %d left", w.Len())
	}

	c.Apply(Frame{SelectRadial: true})
	if w.Mode() != physics.Radial {
		t.Errorf("Expected radial mode, got %v", w.Mode())
	}
	c.Apply(Frame{SelectLinear: true})
	if w.Mode() != physics.Uniform {
		t.Errorf("Expected uniform mode, got %v", w.Mode())
	}

	c.Apply(Frame{TogglePause: true})
	if !c.Paused() {
		t.Error("Expected paused")
	}
	c.Apply(Frame{TogglePause: true})
	if c.Paused() {
		t.Error("Expected unpaused")
	}

	c.Apply(Frame{Reset: true})
	if w.Len() != 0 {
		t.Errorf("Expected reset to clear bodies, got %d", w.Len())
	}
}

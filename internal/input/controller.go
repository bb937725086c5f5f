package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"physics-sim/internal/config"
	"physics-sim/internal/physics"
)

// growPerFrame is how much W/S change the marker radius each frame they are held.
const growPerFrame = 0.1

// Frame is the input sampled for one frame, already mapped to world coordinates.
type Frame struct {
	Pointer      r2.Vec
	PressLeft    bool
	ReleaseLeft  bool
	PressRight   bool
	Spread       bool    // E held: releasing the marker also fires a burst
	Grow         float64 // radius change this frame
	Reset        bool
	SelectRadial bool
	SelectLinear bool
	TogglePause  bool
}

// Poll samples raylib input for the current frame.
func Poll(vp Viewport) Frame {
	mp := rl.GetMousePosition()
	f := Frame{
		Pointer:      vp.ToWorld(float64(mp.X), float64(mp.Y)),
		PressLeft:    rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		ReleaseLeft:  rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		PressRight:   rl.IsMouseButtonPressed(rl.MouseButtonRight),
		Spread:       rl.IsKeyDown(rl.KeyE),
		Grow:         -float64(rl.GetMouseWheelMove()),
		Reset:        rl.IsKeyPressed(rl.KeyR),
		SelectRadial: rl.IsKeyPressed(rl.KeyA),
		SelectLinear: rl.IsKeyPressed(rl.KeyD),
		TogglePause:  rl.IsKeyPressed(rl.KeyP),
	}
	if rl.IsKeyDown(rl.KeyW) {
		f.Grow += growPerFrame
	}
	if rl.IsKeyDown(rl.KeyS) {
		f.Grow -= growPerFrame
	}
	return f
}

// Controller turns input frames into world edits: left drag launches a body, right click
// deletes under the pointer, R resets, A/D pick radial/uniform gravity, P pauses.
type Controller struct {
	world  *physics.World
	marker *Marker
	spawn  config.Spawn
	paused bool
}

// NewController returns a controller editing w through marker.
func NewController(w *physics.World, marker *Marker, spawn config.Spawn) *Controller {
	return &Controller{world: w, marker: marker, spawn: spawn}
}

// Paused reports whether stepping is suspended.
func (c *Controller) Paused() bool {
	return c.paused
}

// Apply applies one frame of input.
func (c *Controller) Apply(f Frame) {
	if f.PressLeft {
		c.marker.Press(f.Pointer)
	} else {
		c.marker.Move(f.Pointer)
	}
	if f.Grow != 0 {
		c.marker.Grow(f.Grow)
	}
	if f.ReleaseLeft {
		if l, ok := c.marker.Release(); ok {
			c.world.SpawnElastic(l.Position, l.Velocity, l.Radius, c.spawn.Elasticity)
			if f.Spread {
				c.world.SpawnBurst(l.Position, l.Velocity, l.Radius, c.spawn.Elasticity, c.spawn.BurstCount, c.spawn.BurstSpacing)
			}
		}
	}
	if f.PressRight {
		c.world.DeleteNear(f.Pointer)
	}
	if f.Reset {
		c.world.Reset()
	}
	if f.SelectRadial {
		c.world.SetMode(physics.Radial)
	}
	if f.SelectLinear {
		c.world.SetMode(physics.Uniform)
	}
	if f.TogglePause {
		c.paused = !c.paused
	}
}

// Update polls raylib and applies the result.
func (c *Controller) Update(vp Viewport) {
	c.Apply(Poll(vp))
}

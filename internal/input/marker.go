package input

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"physics-sim/internal/config"
)

// Viewport maps between window pixels (y down) and world units (y up, floor at 0).
type Viewport struct {
	Scale       float64 // pixels per world unit
	WorldHeight float64 // world y drawn at the top edge of the window
}

// ToWorld converts a pixel position to world coordinates.
func (v Viewport) ToWorld(px, py float64) r2.Vec {
	return r2.Vec{X: px / v.Scale, Y: v.WorldHeight - py/v.Scale}
}

// ToScreen converts a world position to pixels.
func (v Viewport) ToScreen(p r2.Vec) (px, py float64) {
	return p.X * v.Scale, (v.WorldHeight - p.Y) * v.Scale
}

// Launch is a body released from the marker.
type Launch struct {
	Position r2.Vec
	Velocity r2.Vec
	Radius   float64
}

// Marker is the slingshot used to place bodies: the anchor is where the body appears,
// dragging away from it aims, and the launch velocity points from the pointer back to the
// anchor, scaled by LaunchScale. All coordinates are world units.
type Marker struct {
	Anchor  r2.Vec
	Aim     r2.Vec
	Radius  float64
	Visible bool

	minRadius   float64
	maxRadius   float64
	launchScale float64
}

// NewMarker returns a hidden marker using the spawn settings from cfg.
func NewMarker(cfg config.Spawn) *Marker {
	m := &Marker{
		minRadius:   cfg.MinRadius,
		maxRadius:   cfg.MaxRadius,
		launchScale: cfg.LaunchScale,
	}
	m.Radius = m.clamp(cfg.Radius)
	return m
}

// Press starts aiming from p.
func (m *Marker) Press(p r2.Vec) {
	m.Anchor = p
	m.Aim = p
	m.Visible = true
}

// Move updates the aim point. It has no visible effect until Press.
func (m *Marker) Move(p r2.Vec) {
	m.Aim = p
}

// Grow changes the radius by delta, clamped to the configured range.
func (m *Marker) Grow(delta float64) {
	m.Radius = m.clamp(m.Radius + delta)
}

// LaunchVelocity returns the velocity a body released now would get.
func (m *Marker) LaunchVelocity() r2.Vec {
	return r2.Scale(m.launchScale, r2.Sub(m.Anchor, m.Aim))
}

// Release hides the marker and returns the body to spawn. ok is false if the marker was
// not pressed.
func (m *Marker) Release() (l Launch, ok bool) {
	if !m.Visible {
		return Launch{}, false
	}
	m.Visible = false
	return Launch{Position: m.Anchor, Velocity: m.LaunchVelocity(), Radius: m.Radius}, true
}

// Dots returns n-1 evenly spaced points strictly between Aim and Anchor, for drawing the
// aim line.
func (m *Marker) Dots(n int) []r2.Vec {
	if n < 2 {
		return nil
	}
	diff := r2.Sub(m.Anchor, m.Aim)
	out := make([]r2.Vec, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, r2.Add(m.Aim, r2.Scale(float64(i)/float64(n), diff)))
	}
	return out
}

func (m *Marker) clamp(r float64) float64 {
	return math.Max(m.minRadius, math.Min(m.maxRadius, r))
}

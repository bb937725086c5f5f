package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// MinRadius replaces a radius that is not a positive finite number.
	MinRadius = 1.0
	// MinElasticity replaces an elasticity at or below zero.
	MinElasticity = 0.01
	// DefaultElasticity is perfectly elastic: no energy is lost per bounce.
	DefaultElasticity = 1.0
)

// Body is a circular disk with uniform density. Position and velocity change every tick;
// radius, mass and elasticity are fixed at creation and read through accessors.
type Body struct {
	Position r2.Vec
	Velocity r2.Vec

	radius     float64
	mass       float64
	elasticity float64
}

// NewBody returns a body at pos moving with vel. Mass is derived as π·r².
// A radius that is not positive and finite is clamped to MinRadius; elasticity is clamped
// into (0, 1]. Non-finite position or velocity components are zeroed.
func NewBody(pos, vel r2.Vec, radius, elasticity float64) Body {
	if !isFinite(radius) || radius <= 0 {
		radius = MinRadius
	}
	switch {
	case math.IsNaN(elasticity) || elasticity <= 0:
		elasticity = MinElasticity
	case elasticity > 1:
		elasticity = 1
	}
	return Body{
		Position:   finiteVec(pos),
		Velocity:   finiteVec(vel),
		radius:     radius,
		mass:       radius * radius * math.Pi,
		elasticity: elasticity,
	}
}

// Radius returns the body's radius.
func (b Body) Radius() float64 { return b.radius }

// Mass returns π·r², computed once when the body was created.
func (b Body) Mass() float64 { return b.mass }

// Elasticity returns the damping factor applied after each bounce or collision.
func (b Body) Elasticity() float64 { return b.elasticity }

// UpdateVelocity bounces the body off the side walls (x = 0, x = rightWall) and the floor
// (y = 0), then accelerates it by (0, gravity) for dt. Gravity is skipped for the tick
// while the body touches the floor so a resting body does not sink into it.
func (b *Body) UpdateVelocity(dt, gravity, rightWall float64) {
	onFloor := b.Position.Y <= b.radius
	onWall := b.Position.X-b.radius < 0 || b.Position.X+b.radius >= rightWall

	if onWall {
		b.Velocity.X = -b.Velocity.X
		b.Velocity = r2.Scale(b.elasticity, b.Velocity)
	}
	if onFloor && b.Velocity.Y < 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.Velocity = r2.Scale(b.elasticity, b.Velocity)
	}
	if onFloor {
		gravity = 0
	}
	b.Velocity.Y += gravity * dt
}

// IntegratePosition moves the body along its current velocity (semi-implicit Euler).
// Call after every velocity update of the tick.
func (b *Body) IntegratePosition(dt float64) {
	b.Position = r2.Add(b.Position, r2.Scale(dt, b.Velocity))
}

// Energy returns kinetic plus potential energy for a uniform field of the given gravity.
// gravity is signed like World.Gravity (negative pulls down).
func (b Body) Energy(gravity float64) float64 {
	return 0.5*b.mass*r2.Norm2(b.Velocity) + b.mass*-gravity*b.Position.Y
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec(v r2.Vec) r2.Vec {
	if !isFinite(v.X) {
		v.X = 0
	}
	if !isFinite(v.Y) {
		v.Y = 0
	}
	return v
}

package physics

import (
	"fmt"

	"github.com/jinzhu/copier"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// RightWall is the default x coordinate of the right wall. The left wall is x = 0 and the
	// floor is y = 0; there is no ceiling.
	RightWall = 400.0
	// DefaultGravity is the default uniform acceleration on y (negative is down).
	DefaultGravity = -400.0
	// CollisionLogEvery is how often (in resolved collisions) the running total is logged.
	CollisionLogEvery = 10000
)

// Logger receives diagnostic lines from the world. *logger.Logger satisfies it.
type Logger interface {
	Log(line string)
}

// Params configures a World. Zero values fall back to the package defaults, except Gravity
// and RadialWalls which are taken as given.
type Params struct {
	RightWall          float64
	Gravity            float64
	Mode               GravityMode
	GravityConstant    float64
	MinGravityDistance float64
	// RadialWalls keeps wall and floor bounce (with zero gravity) active in radial mode.
	RadialWalls bool
	// CollisionLogEvery of 0 uses the default; logging also needs a Logger.
	CollisionLogEvery uint64
}

// DefaultParams returns the parameters of the classic sandbox: a 400 wide box, gravity -400,
// uniform mode.
func DefaultParams() Params {
	return Params{
		RightWall:          RightWall,
		Gravity:            DefaultGravity,
		Mode:               Uniform,
		GravityConstant:    GravityConstant,
		MinGravityDistance: MinGravityDistance,
		CollisionLogEvery:  CollisionLogEvery,
	}
}

// BodyView is the read-only part of a body needed for drawing.
type BodyView struct {
	Position r2.Vec
	Radius   float64
}

// World owns the bodies and advances them one tick at a time. It is not safe for concurrent
// use; spawn, delete and mode changes must happen between calls to Step.
type World struct {
	params     Params
	bodies     []Body
	contacts   []r2.Vec
	collisions uint64
	log        Logger
}

// NewWorld returns an empty world configured by p.
func NewWorld(p Params) *World {
	d := DefaultParams()
	if !isFinite(p.RightWall) || p.RightWall <= 0 {
		p.RightWall = d.RightWall
	}
	if !isFinite(p.Gravity) {
		p.Gravity = d.Gravity
	}
	if !isFinite(p.GravityConstant) || p.GravityConstant <= 0 {
		p.GravityConstant = d.GravityConstant
	}
	if !isFinite(p.MinGravityDistance) || p.MinGravityDistance <= 0 {
		p.MinGravityDistance = d.MinGravityDistance
	}
	if p.CollisionLogEvery == 0 {
		p.CollisionLogEvery = d.CollisionLogEvery
	}
	if p.Mode != Uniform && p.Mode != Radial {
		p.Mode = Uniform
	}
	return &World{params: p}
}

// SetLogger sets where the collision tally is reported. nil disables logging.
func (w *World) SetLogger(l Logger) {
	w.log = l
}

// Params returns the world's current parameters.
func (w *World) Params() Params {
	return w.params
}

// Spawn adds a perfectly elastic body.
func (w *World) Spawn(pos, vel r2.Vec, radius float64) {
	w.SpawnElastic(pos, vel, radius, DefaultElasticity)
}

// SpawnElastic adds a body with the given elasticity. See NewBody for input clamping.
func (w *World) SpawnElastic(pos, vel r2.Vec, radius, elasticity float64) {
	w.bodies = append(w.bodies, NewBody(pos, vel, radius, elasticity))
}

// SpawnBurst adds count bodies starting at origin, each one spacing further along x, all
// sharing vel, radius and elasticity.
func (w *World) SpawnBurst(origin, vel r2.Vec, radius, elasticity float64, count int, spacing float64) {
	for i := 0; i < count; i++ {
		pos := r2.Vec{X: origin.X + float64(i)*spacing, Y: origin.Y}
		w.SpawnElastic(pos, vel, radius, elasticity)
	}
}

// DeleteNear removes every body whose center lies within its own radius of point and
// returns how many were removed.
func (w *World) DeleteNear(point r2.Vec) int {
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if r2.Norm(r2.Sub(b.Position, point)) <= b.radius {
			continue
		}
		kept = append(kept, b)
	}
	removed := len(w.bodies) - len(kept)
	clear(w.bodies[len(kept):])
	w.bodies = kept
	return removed
}

// Reset removes all bodies. Mode, gravity and the collision tally are kept.
func (w *World) Reset() {
	w.bodies = nil
	w.contacts = w.contacts[:0]
}

// SetMode switches the gravity model; it takes effect on the next Step. Values other than
// Uniform and Radial are ignored.
func (w *World) SetMode(m GravityMode) {
	if m != Uniform && m != Radial {
		return
	}
	w.params.Mode = m
}

// Mode returns the active gravity model.
func (w *World) Mode() GravityMode {
	return w.params.Mode
}

// SetGravityMagnitude sets the uniform-mode acceleration on y. Non-finite values are ignored.
func (w *World) SetGravityMagnitude(g float64) {
	if !isFinite(g) {
		return
	}
	w.params.Gravity = g
}

// Gravity returns the uniform-mode acceleration on y.
func (w *World) Gravity() float64 {
	return w.params.Gravity
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Bodies returns a copy of every body.
func (w *World) Bodies() []Body {
	out := make([]Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Snapshot returns the position and radius of every body, for drawing.
func (w *World) Snapshot() []BodyView {
	views := make([]BodyView, 0, len(w.bodies))
	if err := copier.Copy(&views, w.bodies); err != nil {
		views = views[:0]
		for _, b := range w.bodies {
			views = append(views, BodyView{Position: b.Position, Radius: b.radius})
		}
	}
	return views
}

// Collisions returns the number of collisions resolved since the world was created.
func (w *World) Collisions() uint64 {
	return w.collisions
}

// Contacts returns the contact normals resolved during the last Step.
func (w *World) Contacts() []r2.Vec {
	out := make([]r2.Vec, len(w.contacts))
	copy(out, w.contacts)
	return out
}

// TotalEnergy sums kinetic and uniform-field potential energy over all bodies.
func (w *World) TotalEnergy() float64 {
	var e float64
	for _, b := range w.bodies {
		e += b.Energy(w.params.Gravity)
	}
	return e
}

// Refocus translates every body so the first one sits at center.
func (w *World) Refocus(center r2.Vec) {
	if len(w.bodies) == 0 {
		return
	}
	offset := r2.Sub(w.bodies[0].Position, center)
	for i := range w.bodies {
		w.bodies[i].Position = r2.Sub(w.bodies[i].Position, offset)
	}
}

// Step advances the world by dt: contacts (uniform mode only), then velocities, then
// positions. A non-positive or non-finite dt leaves the world unchanged.
func (w *World) Step(dt float64) {
	if !isFinite(dt) || dt <= 0 {
		return
	}
	w.contacts = w.contacts[:0]

	switch w.params.Mode {
	case Uniform:
		w.resolveContacts()
		for i := range w.bodies {
			w.bodies[i].UpdateVelocity(dt, w.params.Gravity, w.params.RightWall)
		}
	case Radial:
		Gravitate(w.bodies, dt, w.params.GravityConstant, w.params.MinGravityDistance)
		if w.params.RadialWalls {
			for i := range w.bodies {
				w.bodies[i].UpdateVelocity(dt, 0, w.params.RightWall)
			}
		}
	}

	for i := range w.bodies {
		w.bodies[i].IntegratePosition(dt)
	}
}

// resolveContacts runs every ordered pair through DetectContact and ResolveContact. Each
// pair is resolved on copies that are written back before the next pair is examined, so
// later pairs see the updated velocities.
func (w *World) resolveContacts() {
	for i := range w.bodies {
		for j := range w.bodies {
			overlapping, distance := DetectContact(w.bodies[i], w.bodies[j])
			if !overlapping || i == j {
				continue
			}
			a, b := w.bodies[i], w.bodies[j]
			normal, ok := ResolveContact(&a, &b, distance)
			if !ok {
				continue
			}
			w.bodies[i], w.bodies[j] = a, b
			w.contacts = append(w.contacts, normal)
			w.countCollision()
		}
	}
}

func (w *World) countCollision() {
	if w.log != nil && w.collisions%w.params.CollisionLogEvery == 0 {
		w.log.Log(fmt.Sprintf("collision: %d", w.collisions))
	}
	w.collisions++
}

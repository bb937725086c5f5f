package physics

import "gonum.org/v1/gonum/spatial/r2"

const (
	// GravityConstant scales the mutual attraction in radial mode.
	GravityConstant = 50.0
	// MinGravityDistance bounds the inverse-square term near zero separation.
	MinGravityDistance = 0.02
)

// pull returns the velocity change that other imparts on b over dt.
// Bodies at the identical position have no direction between them and contribute nothing.
func pull(b, other Body, dt, g, minDistance float64) r2.Vec {
	toOther := r2.Sub(other.Position, b.Position)
	distance := r2.Norm(toOther)
	if distance == 0 {
		return r2.Vec{}
	}
	unit := r2.Scale(1/distance, toOther)
	if distance < minDistance {
		distance = minDistance
	}
	acc := g * other.mass / (distance * distance)
	return r2.Scale(acc*dt, unit)
}

// Gravitate applies mutual inverse-square attraction to every body over dt. Each body is
// pulled by every other body as they were at the start of the call; no update is visible
// to the rest of the set until the whole pass has been computed.
func Gravitate(bodies []Body, dt, g, minDistance float64) {
	if len(bodies) < 2 {
		return
	}
	snapshot := make([]Body, len(bodies))
	copy(snapshot, bodies)

	out := make([]r2.Vec, len(bodies))
	for i, b := range snapshot {
		v := b.Velocity
		for j, other := range snapshot {
			if i == j {
				continue
			}
			v = r2.Add(v, pull(b, other, dt, g, minDistance))
		}
		out[i] = v
	}
	for i := range bodies {
		bodies[i].Velocity = out[i]
	}
}

package physics

import "gonum.org/v1/gonum/spatial/r2"

// separationProbe is the time step used to test whether two bodies are already receding.
const separationProbe = 0.001

// DetectContact reports whether a and b overlap and, if so, the distance between their
// centers. Two bodies at the identical position never overlap (self-pair guard).
func DetectContact(a, b Body) (overlapping bool, distance float64) {
	if a.Position == b.Position {
		return false, 0
	}
	distance = r2.Norm(r2.Sub(b.Position, a.Position))
	if distance < a.radius+b.radius {
		return true, distance
	}
	return false, 0
}

// movingApart advances both bodies by separationProbe and reports whether their centers
// end up further apart than distance.
func movingApart(a, b *Body, distance float64) bool {
	na := r2.Add(a.Position, r2.Scale(separationProbe, a.Velocity))
	nb := r2.Add(b.Position, r2.Scale(separationProbe, b.Velocity))
	return r2.Norm(r2.Sub(nb, na)) > distance
}

// ResolveContact exchanges momentum between two overlapping bodies along their contact
// normal using the 1-D elastic collision equations for unequal masses, then scales each
// velocity by that body's elasticity. distance must be the positive center distance from
// DetectContact. a and b must not point at the same Body.
//
// Bodies that are already moving apart are left untouched and ok is false.
func ResolveContact(a, b *Body, distance float64) (normal r2.Vec, ok bool) {
	if distance <= 0 || movingApart(a, b, distance) {
		return r2.Vec{}, false
	}

	normal = r2.Scale(1/distance, r2.Sub(b.Position, a.Position))

	aci := r2.Dot(a.Velocity, normal)
	bci := r2.Dot(b.Velocity, normal)

	m1, m2 := a.mass, b.mass
	total := m1 + m2
	acf := ((m1-m2)*aci + 2*m2*bci) / total
	bcf := ((m2-m1)*bci + 2*m1*aci) / total

	// Only the normal component changes; the tangential part is carried through.
	a.Velocity = r2.Scale(a.elasticity, r2.Add(a.Velocity, r2.Scale(acf-aci, normal)))
	b.Velocity = r2.Scale(b.elasticity, r2.Add(b.Velocity, r2.Scale(bcf-bci, normal)))

	return normal, true
}

package simulation

import (
	"collision-sim/internal/common"

	"gonum.org/v1/gonum/spatial/r2"
)

// ResolvePair handles a possible collision between a and b. When the circles
// touch or overlap, both velocities are replaced by their elastic post-collision
// values and the bodies are pushed apart symmetrically until they just touch.
// Returns false, leaving both bodies untouched, when they are apart.
func ResolvePair(a, b *Body) bool {
	delta := r2.Sub(a.position, b.position) // x1 - x2
	dist := r2.Norm(delta)
	reach := a.radius + b.radius
	if dist > reach {
		return false
	}

	// Coincident centres have no contact line; use a fixed axis instead.
	if dist < common.Epsilon {
		delta = common.FallbackAxis
		dist = 0
	}

	// Both velocities come from the pre-collision values.
	v1, v2 := a.velocity, b.velocity
	m1, m2 := a.mass, b.mass
	total := m1 + m2
	a.velocity = r2.Sub(v1, r2.Scale(2*m2/total, common.Project(r2.Sub(v1, v2), delta)))
	b.velocity = r2.Sub(v2, r2.Scale(2*m1/total, common.Project(r2.Sub(v2, v1), r2.Scale(-1, delta))))

	separate(a, b, delta, reach-dist)
	return true
}

// separate moves a and b apart along dir by offset in total, half each.
func separate(a, b *Body, dir r2.Vec, offset float64) {
	shift := r2.Scale(offset/2, common.UnitOr(dir, common.FallbackAxis))
	a.position = r2.Add(a.position, shift)
	b.position = r2.Sub(b.position, shift)
}

package simulation

import (
	"collision-sim/internal/conservation"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// BodySnapshot is a read-only copy of a body's state handed to the display
// after each tick.
type BodySnapshot struct {
	ID         string
	Position   r2.Vec
	Velocity   r2.Vec
	Speed      float64
	Mass       float64
	Radius     float64
	Color      color.RGBA
	Trajectory []r2.Vec // oldest first
}

// snapshot copies the body state.
func (b *Body) snapshot() BodySnapshot {
	return BodySnapshot{
		ID:         b.id,
		Position:   b.position,
		Velocity:   b.velocity,
		Speed:      b.Speed(),
		Mass:       b.mass,
		Radius:     b.radius,
		Color:      b.color,
		Trajectory: b.trajectory.Points(),
	}
}

// snapshotParticle exposes a snapshot to the conservation ledger.
type snapshotParticle struct {
	s *BodySnapshot
}

func (p snapshotParticle) Mass() float64    { return p.s.Mass }
func (p snapshotParticle) Velocity() r2.Vec { return p.s.Velocity }

// Particles wraps snapshots for conservation.Measure.
func Particles(snaps []BodySnapshot) []conservation.Particle {
	out := make([]conservation.Particle, len(snaps))
	for i := range snaps {
		out[i] = snapshotParticle{s: &snaps[i]}
	}
	return out
}

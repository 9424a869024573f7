package simulation

import (
	"collision-sim/internal/common"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Place assigns every body a random position fully inside the arena, keeping at
// least margin between its edge and the edge of every body placed before it.
// Each body is re-rolled up to maxAttempts times before giving up with
// ErrPlacementInfeasible.
func Place(bodies []*Body, arena Arena, margin float64, maxAttempts int, rng *rand.Rand) error {
	for i, b := range bodies {
		lo := r2.Vec{X: b.radius, Y: b.radius}
		hi := r2.Vec{X: arena.Width - b.radius, Y: arena.Height - b.radius}
		if hi.X < lo.X || hi.Y < lo.Y {
			return fmt.Errorf("%w: body %d (radius %.2f) does not fit in a %gx%g arena",
				ErrPlacementInfeasible, i, b.radius, arena.Width, arena.Height)
		}

		placed := false
		for attempt := 0; attempt < maxAttempts && !placed; attempt++ {
			pos, err := common.NewRandomVector(rng, lo, hi)
			if err != nil {
				return fmt.Errorf("failed to generate random position for body %d: %w", i, err)
			}
			b.position = pos
			placed = clearOfPrevious(bodies[:i], b, margin)
		}
		if !placed {
			return fmt.Errorf("%w: no free spot for body %d after %d attempts",
				ErrPlacementInfeasible, i, maxAttempts)
		}
	}
	return nil
}

// clearOfPrevious reports whether b keeps the clearance margin to every placed body.
func clearOfPrevious(placed []*Body, b *Body, margin float64) bool {
	for _, other := range placed {
		gap := common.Distance(b.position, other.position) - (b.radius + other.radius)
		if gap < margin {
			return false
		}
	}
	return true
}

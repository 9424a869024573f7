package common

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Epsilon is the distance below which two points are treated as coincident.
const Epsilon = 1e-9

// FallbackAxis is used as the contact normal when two centres coincide.
var FallbackAxis = r2.Vec{X: 1, Y: 0}

// Project returns the vector projection of a onto b, (a·b / b·b) * b.
// A zero-length b yields the zero vector.
func Project(a, b r2.Vec) r2.Vec {
	bb := r2.Dot(b, b)
	if bb < Epsilon*Epsilon {
		return r2.Vec{}
	}
	return r2.Scale(r2.Dot(a, b)/bb, b)
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// UnitOr returns the unit vector of v, or fallback when v is (almost) zero.
func UnitOr(v, fallback r2.Vec) r2.Vec {
	if r2.Norm(v) < Epsilon {
		return fallback
	}
	return r2.Unit(v)
}

// NewRandomVector creates a point with coordinates drawn uniformly from
// [min.X, max.X] x [min.Y, max.Y].
func NewRandomVector(rng *rand.Rand, min, max r2.Vec) (r2.Vec, error) {
	if max.X < min.X || max.Y < min.Y {
		return r2.Vec{}, fmt.Errorf("empty range: min %s, max %s", Format(min), Format(max))
	}
	return r2.Vec{
		X: min.X + rng.Float64()*(max.X-min.X),
		Y: min.Y + rng.Float64()*(max.Y-min.Y),
	}, nil
}

// IsFinite reports whether both components are finite numbers.
func IsFinite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Format returns a string representation of the vector.
func Format(v r2.Vec) string {
	// Limited precision for cleaner log output
	return fmt.Sprintf("[%.3f, %.3f]", v.X, v.Y)
}

package conservation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

// Particle is anything with a mass and a velocity.
type Particle interface {
	Mass() float64
	Velocity() r2.Vec
}

// Totals holds the conserved quantities of a body set plus speed statistics.
type Totals struct {
	Count         int
	TotalMass     float64
	Momentum      r2.Vec
	MomentumNorm  float64 // |Momentum|
	KineticEnergy float64
	MeanSpeed     float64
	SpeedStdDev   float64
}

// Drift is the change of the conserved quantities between two measurements.
type Drift struct {
	Momentum      r2.Vec
	KineticEnergy float64
}

// Measure computes the totals for the given particles.
func Measure[P Particle](particles []P) Totals {
	n := len(particles)
	if n == 0 {
		return Totals{}
	}

	masses := make([]float64, n)
	speedSq := make([]float64, n)
	speeds := make([]float64, n)
	velData := make([]float64, n*2)
	for i, p := range particles {
		v := p.Velocity()
		masses[i] = p.Mass()
		speedSq[i] = v.X*v.X + v.Y*v.Y
		speeds[i] = math.Sqrt(speedSq[i])
		velData[i*2] = v.X
		velData[i*2+1] = v.Y
	}

	// Momentum = V^T * m, with V the n x 2 velocity matrix
	V := mat.NewDense(n, 2, velData)
	m := mat.NewVecDense(n, masses)
	var momentum mat.VecDense
	momentum.MulVec(V.T(), m)

	mean, std := stat.MeanStdDev(speeds, nil)
	if n == 1 {
		std = 0 // sample std dev of a single value is NaN
	}

	return Totals{
		Count:         n,
		TotalMass:     floats.Sum(masses),
		Momentum:      r2.Vec{X: momentum.AtVec(0), Y: momentum.AtVec(1)},
		MomentumNorm:  blas64.Nrm2(momentum.RawVector()),
		KineticEnergy: 0.5 * floats.Dot(masses, speedSq),
		MeanSpeed:     mean,
		SpeedStdDev:   std,
	}
}

// Drift returns later minus t.
func (t Totals) Drift(later Totals) Drift {
	return Drift{
		Momentum:      r2.Sub(later.Momentum, t.Momentum),
		KineticEnergy: later.KineticEnergy - t.KineticEnergy,
	}
}

// String representation for logging
func (t Totals) String() string {
	return fmt.Sprintf("n=%d p=[%.3f, %.3f] |p|=%.3f E=%.3f speed=%.3f±%.3f",
		t.Count, t.Momentum.X, t.Momentum.Y, t.MomentumNorm, t.KineticEnergy, t.MeanSpeed, t.SpeedStdDev)
}

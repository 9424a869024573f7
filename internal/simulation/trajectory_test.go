package simulation

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTrajectoryBound(t *testing.T) {
	tr := NewTrajectory(DefaultTrajectoryCapacity)
	for i := 0; i < 150; i++ {
		tr.Append(r2.Vec{X: float64(i)})
		if tr.Len() > DefaultTrajectoryCapacity {
			t.Fatalf("Expected at most %d points, got %d", DefaultTrajectoryCapacity, tr.Len())
		}
	}

	points := tr.Points()
	if len(points) != 100 {
		t.Fatalf("Expected 100 points, got %d", len(points))
	}
	// FIFO: the first 50 were dropped
	for i, p := range points {
		if p.X != float64(50+i) {
			t.Fatalf("Expected point %d to be %d, got %g", i, 50+i, p.X)
		}
	}
}

func TestTrajectoryPartial(t *testing.T) {
	tr := NewTrajectory(5)
	tr.Append(r2.Vec{X: 1})
	tr.Append(r2.Vec{X: 2})

	points := tr.Points()
	if len(points) != 2 || points[0].X != 1 || points[1].X != 2 {
		t.Errorf("Expected [1 2], got %v", points)
	}

	// Points is a copy
	points[0].X = 99
	if tr.Points()[0].X != 1 {
		t.Error("Expected Points to return a copy")
	}
}

func TestTrajectoryDefaultCapacity(t *testing.T) {
	if got := NewTrajectory(0).Cap(); got != DefaultTrajectoryCapacity {
		t.Errorf("Expected default capacity %d, got %d", DefaultTrajectoryCapacity, got)
	}
}

func TestBodyIntegrate(t *testing.T) {
	b := newBody(r2.Vec{X: 10, Y: 20}, r2.Vec{X: 1.5, Y: -2}, 5, 5, 3)
	for i := 0; i < 4; i++ {
		b.Integrate()
	}

	if b.Position() != (r2.Vec{X: 16, Y: 12}) {
		t.Errorf("Expected position [16, 12], got %v", b.Position())
	}
	if b.Velocity() != (r2.Vec{X: 1.5, Y: -2}) {
		t.Errorf("Expected velocity unchanged, got %v", b.Velocity())
	}
	traj := b.Trajectory()
	if len(traj) != 3 {
		t.Fatalf("Expected 3 trajectory points, got %d", len(traj))
	}
	if traj[0] != (r2.Vec{X: 13, Y: 16}) || traj[2] != b.Position() {
		t.Errorf("Expected trajectory from [13, 16] to current position, got %v", traj)
	}
}

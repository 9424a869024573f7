package simulation

import "gonum.org/v1/gonum/spatial/r2"

// DefaultTrajectoryCapacity is the number of past positions kept per body.
const DefaultTrajectoryCapacity = 100

// Trajectory is a bounded FIFO of positions. Once full, every Append drops
// the oldest point.
type Trajectory struct {
	points []r2.Vec
	start  int
	size   int
}

// NewTrajectory creates an empty trajectory holding at most capacity points.
func NewTrajectory(capacity int) *Trajectory {
	if capacity <= 0 {
		capacity = DefaultTrajectoryCapacity
	}
	return &Trajectory{points: make([]r2.Vec, capacity)}
}

// Append records p as the newest point.
func (t *Trajectory) Append(p r2.Vec) {
	capacity := len(t.points)
	if t.size < capacity {
		t.points[(t.start+t.size)%capacity] = p
		t.size++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % capacity
}

// Len returns the number of recorded points.
func (t *Trajectory) Len() int {
	return t.size
}

// Cap returns the maximum number of points kept.
func (t *Trajectory) Cap() int {
	return len(t.points)
}

// Points returns a copy of the recorded points, oldest first.
func (t *Trajectory) Points() []r2.Vec {
	out := make([]r2.Vec, t.size)
	for i := range out {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}

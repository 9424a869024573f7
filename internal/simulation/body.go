package simulation

import (
	"collision-sim/internal/common"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Body is a circular rigid body moving in the arena.
type Body struct {
	id         string
	position   r2.Vec
	velocity   r2.Vec // Changed only by collisions
	mass       float64
	radius     float64
	color      color.RGBA
	trajectory *Trajectory
}

// NewBody creates a body with random mass, velocity and color drawn from cfg.
// The body starts at the origin; Place moves it into the arena.
func NewBody(cfg Config, rng *rand.Rand) *Body {
	mass := cfg.Mass.Min + rng.Float64()*(cfg.Mass.Max-cfg.Mass.Min)
	vel := r2.Vec{
		X: cfg.Speed.Min + rng.Float64()*(cfg.Speed.Max-cfg.Speed.Min),
		Y: cfg.Speed.Min + rng.Float64()*(cfg.Speed.Max-cfg.Speed.Min),
	}
	b := newBody(r2.Vec{}, vel, mass, cfg.RadiusScale*mass, cfg.TrajectoryCapacity)
	b.color = randomColor(rng)
	return b
}

// newBody builds a body with exact parameters.
func newBody(pos, vel r2.Vec, mass, radius float64, capacity int) *Body {
	return &Body{
		id:         fmt.Sprintf("body-%s", uuid.NewString()[:8]), // Shorter unique ID
		position:   pos,
		velocity:   vel,
		mass:       mass,
		radius:     radius,
		color:      color.RGBA{200, 200, 255, 255},
		trajectory: NewTrajectory(capacity),
	}
}

func randomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255}
}

// GetID returns the unique identifier of the body.
func (b *Body) GetID() string {
	return b.id
}

// Position returns the current centre of the body.
func (b *Body) Position() r2.Vec {
	return b.position
}

// Velocity returns the current velocity, in arena units per tick.
func (b *Body) Velocity() r2.Vec {
	return b.velocity
}

// Speed returns the velocity magnitude.
func (b *Body) Speed() float64 {
	return r2.Norm(b.velocity)
}

func (b *Body) Mass() float64 {
	return b.mass
}

func (b *Body) Radius() float64 {
	return b.radius
}

func (b *Body) Color() color.RGBA {
	return b.color
}

// Trajectory returns the recorded past positions, oldest first.
func (b *Body) Trajectory() []r2.Vec {
	return b.trajectory.Points()
}

// Integrate advances the position by one tick and records it in the trajectory.
func (b *Body) Integrate() {
	b.position = r2.Add(b.position, b.velocity)
	b.trajectory.Append(b.position)
}

// String representation for logging
func (b *Body) String() string {
	return fmt.Sprintf("Body[%s] m=%.2f r=%.2f Pos: %s Vel: %s",
		b.id, b.mass, b.radius, common.Format(b.position), common.Format(b.velocity))
}

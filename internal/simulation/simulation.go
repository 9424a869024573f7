package simulation

import (
	"collision-sim/internal/conservation"
	"fmt"
	"log"
	"math/rand"
	"time"
)

// Simulation holds the state of one run: the bodies, the arena and the tick count.
// It is not safe for concurrent use; the driver calls Step from a single goroutine.
type Simulation struct {
	cfg    Config
	rng    *rand.Rand
	bodies []*Body // Index order fixes the pair iteration order
	arena  Arena   // Arena used by the last Step
	tick   int
	logger *log.Logger
}

// NewSimulation validates cfg, creates cfg.BodyCount bodies and places them in cfg.Arena.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bodies := make([]*Body, cfg.BodyCount)
	for i := range bodies {
		bodies[i] = NewBody(cfg, rng)
	}
	if err := Place(bodies, cfg.Arena, cfg.ClearanceMargin, cfg.MaxPlacementAttempts, rng); err != nil {
		return nil, fmt.Errorf("placing %d bodies: %w", cfg.BodyCount, err)
	}

	return &Simulation{
		cfg:    cfg,
		rng:    rng,
		bodies: bodies,
		arena:  cfg.Arena,
		logger: log.Default(),
	}, nil
}

// SetLogger replaces the logger used by Run.
func (s *Simulation) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Config returns the configuration the run was created with.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Bodies returns the bodies in index order. The slice is shared with the simulation.
func (s *Simulation) Bodies() []*Body {
	return s.bodies
}

// Arena returns the arena of the last step.
func (s *Simulation) Arena() Arena {
	return s.arena
}

// Tick returns the number of steps taken so far.
func (s *Simulation) Tick() int {
	return s.tick
}

// Step advances the run by one tick: every pair (i < j) is resolved on the
// pre-step state, then each body moves and bounces off the walls of arena.
func (s *Simulation) Step(arena Arena) {
	s.arena = arena

	// 1. Pairwise collisions
	for i := 0; i < len(s.bodies)-1; i++ {
		for j := i + 1; j < len(s.bodies); j++ {
			ResolvePair(s.bodies[i], s.bodies[j])
		}
	}

	// 2. Motion and walls
	for _, b := range s.bodies {
		b.Integrate()
		ResolveWall(b, arena)
	}

	s.tick++
}

// Snapshot returns a copy of every body's state, in index order.
func (s *Simulation) Snapshot() []BodySnapshot {
	out := make([]BodySnapshot, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.snapshot()
	}
	return out
}

// Totals measures momentum and energy of the current body set.
func (s *Simulation) Totals() conservation.Totals {
	return conservation.Measure(s.bodies)
}

// Run executes numSteps ticks against the current arena, logging the state
// every logEvery ticks (0 logs only the initial and final state).
func (s *Simulation) Run(numSteps, logEvery int) {
	s.logger.Printf("Starting simulation: Bodies=%d, Arena=%gx%g", len(s.bodies), s.arena.Width, s.arena.Height)
	s.logger.Println("Initial State:")
	s.PrintState()

	start := s.Totals()
	for i := 0; i < numSteps; i++ {
		s.Step(s.arena)
		if logEvery > 0 && s.tick%logEvery == 0 {
			s.logger.Printf("--- Tick %d --- %s", s.tick, s.Totals())
		}
	}

	end := s.Totals()
	drift := start.Drift(end)
	s.logger.Printf("--- Simulation Finished after %d ticks (momentum drift [%.3f, %.3f], energy drift %.3f) ---",
		s.tick, drift.Momentum.X, drift.Momentum.Y, drift.KineticEnergy)
	s.PrintState()
}

// PrintState logs every body and the current totals.
func (s *Simulation) PrintState() {
	s.logger.Printf("Tick: %d", s.tick)
	for _, b := range s.bodies {
		s.logger.Printf("  %s", b) // Uses String() method
	}
	s.logger.Printf("Totals: %s", s.Totals())
}

package visualization

import (
	"collision-sim/internal/simulation"
	"errors"
	"testing"
)

func testConfig() simulation.Config {
	cfg := simulation.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func TestLayoutSetsArena(t *testing.T) {
	r, err := NewRenderer(testConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	w, h := r.Layout(640, 360)
	if w != 640 || h != 360 {
		t.Errorf("Expected layout 640x360, got %dx%d", w, h)
	}
	if got := r.arena(); got != (simulation.Arena{Width: 640, Height: 360}) {
		t.Errorf("Expected arena 640x360, got %+v", got)
	}
}

func TestRestartUsesWindowArena(t *testing.T) {
	r, err := NewRenderer(testConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	old := r.sim
	r.paused = true
	r.Layout(1000, 700)

	r.restart()

	if r.sim == old {
		t.Fatal("Expected a new run after restart")
	}
	if got := r.sim.Arena(); got != (simulation.Arena{Width: 1000, Height: 700}) {
		t.Errorf("Expected run arena 1000x700, got %+v", got)
	}
	if r.paused || r.lastErr != nil {
		t.Errorf("Expected running state without error, got paused=%v err=%v", r.paused, r.lastErr)
	}
}

func TestRestartFailureKeepsRun(t *testing.T) {
	r, err := NewRenderer(testConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	old := r.sim
	// Too small for any body of mass 20-40
	r.Layout(30, 30)

	r.restart()

	if r.sim != old {
		t.Error("Expected the previous run to be kept")
	}
	if !errors.Is(r.lastErr, simulation.ErrPlacementInfeasible) {
		t.Errorf("Expected ErrPlacementInfeasible, got %v", r.lastErr)
	}
}

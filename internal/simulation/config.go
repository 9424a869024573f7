package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

var (
	// ErrConfiguration is returned when a Config fails validation before a run starts.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrPlacementInfeasible is returned when a body cannot be placed within the retry budget.
	ErrPlacementInfeasible = errors.New("placement infeasible")
)

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Arena is the rectangle bodies move in, anchored at the origin.
// It may change between ticks.
type Arena struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Config is the per-run snapshot of simulation parameters.
type Config struct {
	BodyCount            int     `json:"body_count"`
	Mass                 Range   `json:"mass"`
	Speed                Range   `json:"speed"`
	RadiusScale          float64 `json:"radius_scale"`
	Arena                Arena   `json:"arena"`
	TrajectoryCapacity   int     `json:"trajectory_capacity"`
	ClearanceMargin      float64 `json:"clearance_margin"`
	MaxPlacementAttempts int     `json:"max_placement_attempts"`
	Seed                 int64   `json:"seed,omitempty"` // 0 picks a time based seed
}

// DefaultConfig returns the stock parameters: ten bodies of mass 20-40 with
// speed components 0-5 in an 800x480 arena.
func DefaultConfig() Config {
	return Config{
		BodyCount:            10,
		Mass:                 Range{Min: 20, Max: 40},
		Speed:                Range{Min: 0, Max: 5},
		RadiusScale:          1,
		Arena:                Arena{Width: 800, Height: 480},
		TrajectoryCapacity:   100,
		ClearanceMargin:      10,
		MaxPlacementAttempts: 1000,
	}
}

// LoadConfig reads a JSON config file. Fields missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config before any body is created.
func (c Config) Validate() error {
	switch {
	case !allFinite(c.Mass.Min, c.Mass.Max, c.Speed.Min, c.Speed.Max, c.RadiusScale,
		c.Arena.Width, c.Arena.Height, c.ClearanceMargin):
		return fmt.Errorf("%w: parameters must be finite numbers", ErrConfiguration)
	case c.BodyCount <= 0:
		return fmt.Errorf("%w: body count must be positive, got %d", ErrConfiguration, c.BodyCount)
	case c.Mass.Min <= 0:
		return fmt.Errorf("%w: minimum mass must be positive, got %g", ErrConfiguration, c.Mass.Min)
	case c.Mass.Max < c.Mass.Min:
		return fmt.Errorf("%w: mass range [%g, %g] is empty", ErrConfiguration, c.Mass.Min, c.Mass.Max)
	case c.Speed.Max < c.Speed.Min:
		return fmt.Errorf("%w: speed range [%g, %g] is empty", ErrConfiguration, c.Speed.Min, c.Speed.Max)
	case c.RadiusScale <= 0:
		return fmt.Errorf("%w: radius scale must be positive, got %g", ErrConfiguration, c.RadiusScale)
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %gx%g", ErrConfiguration, c.Arena.Width, c.Arena.Height)
	case c.TrajectoryCapacity <= 0:
		return fmt.Errorf("%w: trajectory capacity must be positive, got %d", ErrConfiguration, c.TrajectoryCapacity)
	case c.ClearanceMargin < 0:
		return fmt.Errorf("%w: clearance margin must not be negative, got %g", ErrConfiguration, c.ClearanceMargin)
	case c.MaxPlacementAttempts <= 0:
		return fmt.Errorf("%w: placement attempts must be positive, got %d", ErrConfiguration, c.MaxPlacementAttempts)
	}
	return nil
}

func allFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

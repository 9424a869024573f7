package cli

import (
	"collision-sim/internal/simulation"
	"flag"
	"fmt"
)

// Options controls how the process drives a run.
type Options struct {
	Headless bool
	Steps    int
	LogEvery int
	TPS      int
}

// Parse builds the run config and the process options from args.
func Parse(args []string) (simulation.Config, Options, error) {
	fs := flag.NewFlagSet("simulation", flag.ContinueOnError)
	cf := simulation.RegisterFlags(fs)

	var opts Options
	fs.BoolVar(&opts.Headless, "headless", false, "run without a window and log the state")
	fs.IntVar(&opts.Steps, "steps", 600, "ticks to run in headless mode")
	fs.IntVar(&opts.LogEvery, "log-every", 60, "headless log interval in ticks (0 = start and end only)")
	fs.IntVar(&opts.TPS, "tps", 60, "ticks per second in window mode")

	if err := fs.Parse(args); err != nil {
		return simulation.Config{}, opts, err
	}
	cfg, err := cf.Resolve(fs)
	if err != nil {
		return cfg, opts, err
	}

	if opts.Steps < 0 {
		return cfg, opts, fmt.Errorf("steps must not be negative, got %d", opts.Steps)
	}
	if opts.LogEvery < 0 {
		return cfg, opts, fmt.Errorf("log interval must not be negative, got %d", opts.LogEvery)
	}
	if opts.TPS <= 0 {
		return cfg, opts, fmt.Errorf("tps must be positive, got %d", opts.TPS)
	}
	return cfg, opts, nil
}

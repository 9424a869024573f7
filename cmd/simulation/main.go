package main

import (
	"collision-sim/internal/cli"
	"collision-sim/internal/simulation"
	"collision-sim/internal/visualization"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("[collisions] ")

	cfg, opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Error validating configuration: %v", err)
	}

	if opts.Headless {
		runHeadless(cfg, opts)
		return
	}

	vis, err := visualization.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}
	ebiten.SetWindowSize(int(cfg.Arena.Width), int(cfg.Arena.Height))
	ebiten.SetWindowTitle("Collision Simulator")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)
	if err := ebiten.RunGame(vis); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(cfg simulation.Config, opts cli.Options) {
	sim, err := simulation.NewSimulation(cfg)
	if err != nil {
		log.Fatalf("Error creating simulation: %v", err)
	}
	sim.Run(opts.Steps, opts.LogEvery)
	log.Println("Application finished.")
}

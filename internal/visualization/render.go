package visualization

import (
	"collision-sim/internal/simulation"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	trajectoryWidth = 2.0 // Line width of trajectory segments
	glyphWidth      = 6   // Debug font cell size
	glyphHeight     = 16
	speedLabelGap   = 20 // Distance of the speed label above the body edge
)

var backgroundColor = color.RGBA{0, 0, 0, 255}

// Renderer implements ebiten.Game for a collision run.
// Enter restarts with the configured parameters, Space pauses, Esc quits.
type Renderer struct {
	cfg     simulation.Config
	sim     *simulation.Simulation
	paused  bool
	lastErr error

	screenWidth  int
	screenHeight int
}

// NewRenderer creates a renderer and starts the first run.
func NewRenderer(cfg simulation.Config) (*Renderer, error) {
	sim, err := simulation.NewSimulation(cfg)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		cfg:          cfg,
		sim:          sim,
		screenWidth:  int(cfg.Arena.Width),
		screenHeight: int(cfg.Arena.Height),
	}, nil
}

// arena returns the arena matching the current window size.
func (r *Renderer) arena() simulation.Arena {
	return simulation.Arena{Width: float64(r.screenWidth), Height: float64(r.screenHeight)}
}

// restart begins a new run in the current window. On failure the old run keeps going.
func (r *Renderer) restart() {
	cfg := r.cfg
	cfg.Arena = r.arena()
	sim, err := simulation.NewSimulation(cfg)
	if err != nil {
		log.Printf("Renderer: restart failed: %v", err)
		r.lastErr = err
		return
	}
	r.sim = sim
	r.lastErr = nil
	r.paused = false
}

// Update is called every tick and advances the simulation by one step.
func (r *Renderer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		r.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		r.paused = !r.paused
	}

	if r.paused || r.screenWidth <= 0 || r.screenHeight <= 0 {
		return nil
	}
	r.sim.Step(r.arena())
	return nil
}

// Draw is called every frame to render the simulation.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	bodies := r.sim.Snapshot()

	// Trajectories first so bodies are on top
	for _, b := range bodies {
		for i := 1; i < len(b.Trajectory); i++ {
			p0, p1 := b.Trajectory[i-1], b.Trajectory[i]
			vector.StrokeLine(screen, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y),
				trajectoryWidth, b.Color, true)
		}
	}

	for _, b := range bodies {
		x, y := float32(b.Position.X), float32(b.Position.Y)
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), b.Color, true)

		// Mass at the centre, speed above the body
		massText := fmt.Sprintf("%.0f", b.Mass)
		drawCentered(screen, massText, b.Position.X, b.Position.Y)
		speedText := fmt.Sprintf("%.2f", b.Speed)
		drawCentered(screen, speedText, b.Position.X, b.Position.Y-b.Radius-speedLabelGap)
	}

	r.drawDebugInfo(screen)
}

func drawCentered(screen *ebiten.Image, msg string, x, y float64) {
	ebitenutil.DebugPrintAt(screen, msg, int(x)-len(msg)*glyphWidth/2, int(y)-glyphHeight/2)
}

func (r *Renderer) drawDebugInfo(screen *ebiten.Image) {
	totals := r.sim.Totals()
	msg := fmt.Sprintf("Tick: %d  FPS: %.1f  TPS: %.1f\n", r.sim.Tick(), ebiten.ActualFPS(), ebiten.ActualTPS())
	msg += fmt.Sprintf("Bodies: %d  Arena: %dx%d\n", totals.Count, r.screenWidth, r.screenHeight)
	msg += fmt.Sprintf("Momentum: [%.2f, %.2f]  Energy: %.2f\n", totals.Momentum.X, totals.Momentum.Y, totals.KineticEnergy)
	msg += "Enter: restart  Space: pause  Esc: quit"
	if r.paused {
		msg += "\nPAUSED"
	}
	if r.lastErr != nil {
		msg += fmt.Sprintf("\nRestart failed: %v", r.lastErr)
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout is called when the window size changes; the new size becomes the arena of the next step.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	r.screenWidth = outsideWidth
	r.screenHeight = outsideHeight
	return r.screenWidth, r.screenHeight
}

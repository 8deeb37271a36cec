//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"zing/internal/core"
	"zing/internal/render"
	"zing/internal/sims/zing"
	"zing/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Zing simulation to the ebiten.Game interface. Clicks become
// point edits and the pacer decides when to step automatically.
type Game struct {
	sim     *zing.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep
	log     *slog.Logger

	scale  int
	paused bool
	seed   int64
}

// New constructs a Game for the provided simulation.
func New(sim *zing.Sim, cfg *Config, log *slog.Logger) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		pacer:   core.NewFixedInterval(sim.Speed()),
		log:     log,
		scale:   cfg.Scale,
		paused:  cfg.Paused,
		seed:    sim.Seed(),
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.Step()
		d := g.sim.Deaths()
		g.log.Info("manual step",
			"generation", g.sim.Generation(),
			"deaths_fire", d.Fire,
			"deaths_sickness", d.Sickness,
			"deaths_drowning", d.Drowning,
		)
	}
	g.handleClicks()

	g.overlay.Update()
	g.hud.Update(g.gridWidth())

	g.pacer.SetInterval(g.sim.Speed())
	if !g.paused && g.pacer.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

func (g *Game) handleClicks() {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx >= g.gridWidth() {
		return
	}
	x, y := mx/g.scale, my/g.scale
	if left {
		g.sim.Cycle(x, y)
	}
	if right {
		g.sim.Reseed(x, y)
	}
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x66, G: 0x66, B: 0xCC, A: 0xFF})
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

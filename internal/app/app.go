//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"oncolife/internal/render"
	"oncolife/internal/ui"
	"oncolife/pkg/sims/oncolife"
)

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     *oncolife.Life
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	brush   *Brush

	scale    int
	panel    int
	tps      int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim *oncolife.Life, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, cfg.Panel),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		brush:   NewBrush(),
		scale:   cfg.Scale,
		panel:   cfg.Panel,
		tps:     cfg.TPS,
		seed:    cfg.Seed,
		paused:  true,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		logrus.Infof("brush: %s", g.brush.Next())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.resize(oncolife.SizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.resize(-oncolife.SizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.setTPS(nextTPS(g.tps, 1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.setTPS(nextTPS(g.tps, -1))
	}

	g.overlay.Update()
	g.hud.Update(g.gridWidth())
	g.paint()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// resize changes the grid size and reallocates the painter and window to
// match.
func (g *Game) resize(delta int) {
	changed, err := g.sim.ResizeBy(delta)
	if err != nil {
		logrus.Warnf("resize: %v", err)
		return
	}
	if !changed {
		return
	}
	size := g.sim.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	ebiten.SetWindowSize(WindowSize(size, g.scale, g.panel))
}

func (g *Game) setTPS(tps int) {
	g.tps = tps
	ebiten.SetTPS(tps)
}

// paint applies mouse drags on the grid: left paints the brush kind, right
// paints Dead.
func (g *Game) paint() {
	var kind oncolife.Kind
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		kind = g.brush.Kind()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		kind = oncolife.KindDead
	default:
		return
	}
	x, y := ebiten.CursorPosition()
	if g.hud.Contains(x) {
		return
	}
	grid := g.sim.Grid()
	row, col, ok := render.CellAt(x, y, g.scale, grid.Rows(), grid.Cols())
	if !ok {
		return
	}
	if cur, err := grid.Get(row, col); err == nil && cur.Kind == kind {
		return
	}
	if err := g.sim.Paint(row, col, kind); err != nil {
		logrus.Warnf("paint (%d,%d): %v", row, col, err)
	}
}

// Draw renders the grid, boundary indicators and control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.sim.Size(), g.scale, g.panel)
}

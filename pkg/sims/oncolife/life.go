package oncolife

import (
	"context"

	"github.com/sirupsen/logrus"

	"oncolife/pkg/core"
)

// Life adapts an Engine to the core.Sim contract and keeps the caller-level
// state front-ends need: generation counter, population history and the
// kind buffer used for rendering.
type Life struct {
	name string
	cfg  Config

	engine     *Engine
	generation int
	history    []Census
	display    []uint8
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	l, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// NewWithConfig builds an empty simulation from cfg. Call Reset to fill it.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	g, err := NewGrid(cfg.Height, cfg.Width, cfg.Boundaries)
	if err != nil {
		return nil, err
	}
	l := &Life{
		name:   simName(cfg.Rules),
		cfg:    cfg,
		engine: NewEngine(g, cfg.Rules, core.NewRNG(cfg.Seed)),
	}
	l.record()
	return l, nil
}

func simName(r Rules) string {
	if r.Name == RulesGUI {
		return "oncolife-gui"
	}
	return "oncolife"
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return l.name }

// Size reports the grid dimensions.
func (l *Life) Size() core.Size {
	g := l.engine.Grid()
	return core.Size{W: g.Cols(), H: g.Rows()}
}

// Cells exposes the kind of every cell in row-major order.
func (l *Life) Cells() []uint8 { return l.display }

// Grid returns the current grid.
func (l *Life) Grid() *Grid { return l.engine.Grid() }

// Engine exposes the underlying engine.
func (l *Life) Engine() *Engine { return l.engine }

// Config returns the active configuration.
func (l *Life) Config() Config { return l.cfg }

// Generation returns the number of advances since the last reset or clear.
func (l *Life) Generation() int { return l.generation }

// Census returns the current population per kind.
func (l *Life) Census() Census { return l.history[len(l.history)-1] }

// History returns the census recorded after every generation, starting with
// the initial state.
func (l *Life) History() []Census { return l.history }

// Reset clears the grid and refills it deterministically. A zero seed falls
// back to the configured seed.
func (l *Life) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = l.cfg.Seed
	}
	rng := core.NewLayoutRNG(effective)
	g := MustGrid(l.cfg.Height, l.cfg.Width, l.engine.Grid().Boundaries())
	if l.cfg.Demo {
		DemoScene(g, l.cfg.Rules, rng)
	} else {
		fillRandom(g, l.cfg, rng)
	}
	l.engine.SetGrid(g)
	l.engine.Reseed(effective)
	l.generation = 0
	l.history = nil
	l.record()
	logrus.Debugf("reset %s %dx%d seed=%d %v", l.name, g.Rows(), g.Cols(), effective, g.Census())
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if l.cfg.Workers > 1 {
		if err := l.engine.AdvanceParallel(context.Background(), l.cfg.Workers); err != nil {
			logrus.Errorf("parallel advance failed: %v", err)
			return
		}
	} else {
		l.engine.Advance()
	}
	l.generation++
	l.record()
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		c := l.Census()
		logrus.Debugf("[gen %05d] alive=%d cancer=%d cure=%d dead=%d",
			l.generation, c[KindAlive], c[KindCancer], c[KindCure], c[KindDead])
	}
}

// Clear replaces the grid with an all-Dead one of the same size and
// boundaries, restarting the generation counter and history.
func (l *Life) Clear() {
	g := l.engine.Grid()
	l.engine.SetGrid(MustGrid(g.Rows(), g.Cols(), g.Boundaries()))
	l.generation = 0
	l.history = nil
	l.record()
}

// Resize clears the sim to a new size, keeping boundaries.
func (l *Life) Resize(rows, cols int) error {
	g, err := NewGrid(rows, cols, l.engine.Grid().Boundaries())
	if err != nil {
		return err
	}
	l.cfg.Height, l.cfg.Width = rows, cols
	l.engine.SetGrid(g)
	l.generation = 0
	l.history = nil
	l.record()
	return nil
}

// Grid side limits and increment used by interactive resizing.
const (
	MinSide  = 10
	MaxSide  = 256
	SizeStep = 2
)

// ResizeBy grows or shrinks both sides by delta, clamped to [MinSide,
// MaxSide], and clears the grid. It reports whether the size changed.
func (l *Life) ResizeBy(delta int) (bool, error) {
	g := l.engine.Grid()
	rows := clampSide(g.Rows() + delta)
	cols := clampSide(g.Cols() + delta)
	if rows == g.Rows() && cols == g.Cols() {
		return false, nil
	}
	if err := l.Resize(rows, cols); err != nil {
		return false, err
	}
	logrus.Debugf("resized %s to %dx%d", l.name, rows, cols)
	return true, nil
}

func clampSide(n int) int {
	if n < MinSide {
		return MinSide
	}
	if n > MaxSide {
		return MaxSide
	}
	return n
}

// Load replaces the current grid with g, restarting the counters. The sim
// adopts g's size and boundaries.
func (l *Life) Load(g *Grid) {
	l.cfg.Height, l.cfg.Width = g.Rows(), g.Cols()
	l.cfg.Boundaries = g.Boundaries()
	l.engine.SetGrid(g)
	l.generation = 0
	l.history = nil
	l.record()
}

// Paint places a cell of kind at (row, col). Cancer and Cure cells take the
// current rule weights.
func (l *Life) Paint(row, col int, kind Kind) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}
	if err := l.engine.Grid().Set(NewCell(kind, row, col, l.cfg.Rules.WeightFor(kind))); err != nil {
		return err
	}
	l.refresh()
	return nil
}

// SetBoundary changes one edge's mode on the live grid.
func (l *Life) SetBoundary(e Edge, m BoundaryMode) error {
	if err := l.engine.Grid().SetBoundary(e, m); err != nil {
		return err
	}
	l.cfg.Boundaries = l.engine.Grid().Boundaries()
	return nil
}

// CycleBoundary advances an edge to its next mode and returns it.
func (l *Life) CycleBoundary(e Edge) BoundaryMode {
	next := l.engine.Grid().Boundaries()[e%NumEdges].Next()
	_ = l.SetBoundary(e%NumEdges, next)
	return next
}

// SetWorkers sets the number of row bands advanced in parallel. Values below
// 2 select the serial engine.
func (l *Life) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	l.cfg.Workers = n
}

// SetRules swaps the rule set for subsequent generations.
func (l *Life) SetRules(r Rules) error {
	if err := r.Validate(); err != nil {
		return err
	}
	l.cfg.Rules = r
	l.engine.SetRules(r)
	return nil
}

func (l *Life) record() {
	l.display = l.engine.Grid().Kinds(l.display)
	l.history = append(l.history, l.engine.Grid().Census())
}

func (l *Life) refresh() {
	l.display = l.engine.Grid().Kinds(l.display)
	if len(l.history) > 0 {
		l.history[len(l.history)-1] = l.engine.Grid().Census()
	}
}

func fillRandom(g *Grid, cfg Config, rng *core.RNG) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v := rng.Float64()
			var cell Cell
			switch {
			case v < cfg.FillCancer:
				cell = Cancer(r, c, cfg.Rules.CancerWeight)
			case v < cfg.FillCancer+cfg.FillCure:
				cell = Cure(r, c, cfg.Rules.CureWeight)
			case v < cfg.FillCancer+cfg.FillCure+cfg.FillAlive:
				cell = Alive(r, c)
			default:
				continue
			}
			g.cells[g.Index(r, c)] = cell
		}
	}
}

func init() {
	core.Register("oncolife", factory(RulesConsole))
	core.Register("oncolife-gui", factory(RulesGUI))
}

func factory(preset string) core.Factory {
	return func(m map[string]string) core.Sim {
		opts := map[string]string{"rules": preset}
		for k, v := range m {
			opts[k] = v
		}
		cfg, err := FromMap(opts)
		if err != nil {
			logrus.Warnf("%s: %v; using defaults", simName(cfg.Rules), err)
			cfg = DefaultConfig()
			cfg.Rules, _ = RulesByName(preset)
		}
		l, err := NewWithConfig(cfg)
		if err != nil {
			logrus.Errorf("%s: %v", preset, err)
			return nil
		}
		return l
	}
}

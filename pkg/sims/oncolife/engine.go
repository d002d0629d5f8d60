package oncolife

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"oncolife/pkg/core"
)

// Engine owns the current grid and advances it one generation at a time.
// It performs no locking; callers serialize Advance with external writes.
type Engine struct {
	grid  *Grid
	rules Rules
	rng   *core.RNG
}

// NewEngine wraps grid. A nil rng is replaced by one seeded with 0.
func NewEngine(grid *Grid, rules Rules, rng *core.RNG) *Engine {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &Engine{grid: grid, rules: rules, rng: rng}
}

// Grid returns the current grid.
func (e *Engine) Grid() *Grid { return e.grid }

// SetGrid replaces the current grid, e.g. after a clear or resize.
func (e *Engine) SetGrid(g *Grid) { e.grid = g }

// Rules returns the active rule set.
func (e *Engine) Rules() Rules { return e.rules }

// SetRules replaces the rule set used by subsequent generations.
func (e *Engine) SetRules(r Rules) { e.rules = r }

// Reseed restarts the random stream.
func (e *Engine) Reseed(seed int64) { e.rng = core.NewRNG(seed) }

// Advance computes the next generation. Every successor is evaluated against
// the pre-advance grid and written into a clone, which then becomes current.
func (e *Engine) Advance() {
	cur := e.grid
	next := cur.Clone()
	for i := range cur.cells {
		next.cells[i] = e.rules.Process(cur.cells[i], cur, e.rng)
	}
	e.grid = next
}

// AdvanceParallel computes the next generation with rows split into bands
// processed concurrently. Each band draws from its own RNG forked from the
// engine's in band order, so the result is reproducible for a fixed seed and
// worker count. The grid is swapped only once every band has finished.
func (e *Engine) AdvanceParallel(ctx context.Context, workers int) error {
	cur := e.grid
	if workers <= 1 || cur.rows < 2 {
		e.Advance()
		return nil
	}
	if workers > cur.rows {
		workers = cur.rows
	}
	next := cur.Clone()
	rules := e.rules

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		startRow := w * cur.rows / workers
		endRow := (w + 1) * cur.rows / workers
		rng := e.rng.Fork()
		g.Go(func() error {
			for row := startRow; row < endRow; row++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				base := row * cur.cols
				for col := 0; col < cur.cols; col++ {
					next.cells[base+col] = rules.Process(cur.cells[base+col], cur, rng)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("advance generation: %w", err)
	}
	e.grid = next
	return nil
}

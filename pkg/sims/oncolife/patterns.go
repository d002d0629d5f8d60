package oncolife

import (
	"fmt"
	"sort"
	"strings"
)

// Pattern is a set of Alive offsets relative to its top-left anchor.
type Pattern struct {
	Name    string
	Offsets []Coordinate
}

var patterns = map[string]Pattern{
	"glider": {Name: "glider", Offsets: []Coordinate{
		{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
	}},
	"blinker": {Name: "blinker", Offsets: []Coordinate{
		{0, 0}, {0, 1}, {0, 2},
	}},
	"block": {Name: "block", Offsets: []Coordinate{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
	}},
	"beehive": {Name: "beehive", Offsets: []Coordinate{
		{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 2},
	}},
	"toad": {Name: "toad", Offsets: []Coordinate{
		{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2},
	}},
}

// LookupPattern returns the named pattern.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// PatternNames lists the built-in patterns.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp writes p into g with its anchor at (row, col) using cells of kind.
// Nothing is written when any cell would land outside the grid.
func (p Pattern) Stamp(g *Grid, row, col int, kind Kind, w float64) error {
	for _, o := range p.Offsets {
		if !g.InBounds(row+o.Row, col+o.Col) {
			return fmt.Errorf("stamp %s at (%d,%d): %w", p.Name, row, col, ErrOutOfBounds)
		}
	}
	for _, o := range p.Offsets {
		if err := g.Set(NewCell(kind, row+o.Row, col+o.Col, w)); err != nil {
			return err
		}
	}
	return nil
}

type placement struct {
	pattern string
	row     int
	col     int
}

type seedCell struct {
	kind Kind
	row  int
	col  int
}

var (
	demoPatterns = []placement{
		{"glider", 1, 1},
		{"blinker", 10, 10},
		{"block", 15, 15},
	}
	demoCells = []seedCell{
		{KindCancer, 5, 20},
		{KindCancer, 25, 10},
		{KindCancer, 30, 30},
		{KindCure, 20, 25},
		{KindCure, 35, 5},
	}
)

// demoRandomAlive is the number of extra Alive cells scattered by DemoScene.
const demoRandomAlive = 20

// DemoScene stamps a glider, a blinker and a block, scatters a few Cancer and
// Cure cells, then drops random Alive cells onto Dead slots. Placements that
// do not fit the grid are skipped.
func DemoScene(g *Grid, r Rules, rng interface{ IntN(int) int }) {
	for _, p := range demoPatterns {
		pat, _ := LookupPattern(p.pattern)
		_ = pat.Stamp(g, p.row, p.col, KindAlive, 0)
	}
	for _, c := range demoCells {
		if !g.InBounds(c.row, c.col) {
			continue
		}
		_ = g.Set(NewCell(c.kind, c.row, c.col, r.WeightFor(c.kind)))
	}
	for i := 0; i < demoRandomAlive; i++ {
		row, col := rng.IntN(g.Rows()), rng.IntN(g.Cols())
		if g.cells[g.Index(row, col)].Kind == KindDead {
			g.cells[g.Index(row, col)] = Alive(row, col)
		}
	}
}

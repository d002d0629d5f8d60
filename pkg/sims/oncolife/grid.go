package oncolife

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidDimensions reports a non-positive row or column count.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// Grid stores cells in a flat row-major arena indexed by row*cols+col.
type Grid struct {
	rows, cols int
	bounds     Boundaries
	cells      []Cell
}

// NewGrid allocates an all-Dead grid.
func NewGrid(rows, cols int, b Boundaries) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, bounds: b, cells: make([]Cell, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c] = Dead(r, c)
		}
	}
	return g, nil
}

// MustGrid is NewGrid for dimensions known to be valid.
func MustGrid(rows, cols int, b Boundaries) *Grid {
	g, err := NewGrid(rows, cols, b)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Boundaries returns the per-edge modes.
func (g *Grid) Boundaries() Boundaries { return g.bounds }

// SetBoundaries replaces all four edge modes.
func (g *Grid) SetBoundaries(b Boundaries) { g.bounds = b }

// SetBoundary changes the mode of a single edge.
func (g *Grid) SetBoundary(e Edge, m BoundaryMode) error {
	if e >= NumEdges {
		return fmt.Errorf("%w: %d", ErrInvalidEdge, e)
	}
	if int(m) >= len(modeNames) {
		return fmt.Errorf("%w: %d", ErrInvalidBoundaryMode, m)
	}
	g.bounds[e] = m
	return nil
}

// InBounds reports whether (row, col) addresses a slot.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the arena index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("get (%d,%d) in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	return g.cells[g.Index(row, col)], nil
}

// Set stores cell at its own coordinate, replacing the previous occupant.
func (g *Grid) Set(cell Cell) error {
	row, col := cell.Coord.Row, cell.Coord.Col
	if !g.InBounds(row, col) {
		return fmt.Errorf("set (%d,%d) in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	if !cell.Kind.Valid() {
		return fmt.Errorf("set (%d,%d): %w: %d", row, col, ErrInvalidKind, cell.Kind)
	}
	g.cells[g.Index(row, col)] = cell
	return nil
}

// Clone returns an independent copy with the same size and boundaries.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, bounds: g.bounds, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// CountNeighbors counts cells of kind around (row, col) using the grid's own
// boundary modes.
func (g *Grid) CountNeighbors(row, col int, kind Kind) int {
	return g.CountNeighborsWith(row, col, kind, g.bounds)
}

// CountNeighborsWith scans the 3x3 block centered on (row, col), resolving
// each probe through b. Resolved positions may repeat under Periodic or Mirror
// and are counted every time they are hit. The center is always part of the
// scan, so it is subtracted once when it matches kind. A center outside the
// grid has no neighbors.
func (g *Grid) CountNeighborsWith(row, col int, kind Kind, b Boundaries) int {
	if !g.InBounds(row, col) {
		return 0
	}
	count := 0
	for i := row - 1; i <= row+1; i++ {
		ri, ok := b.resolveRow(row, i, g.rows)
		if !ok {
			continue
		}
		base := ri * g.cols
		for j := col - 1; j <= col+1; j++ {
			cj, ok := b.resolveCol(col, j, g.cols)
			if !ok {
				continue
			}
			if g.cells[base+cj].Kind == kind {
				count++
			}
		}
	}
	if g.cells[row*g.cols+col].Kind == kind {
		count--
	}
	return count
}

// Census counts the population of each kind.
type Census [NumKinds]int

// Of returns the population of kind k.
func (c Census) Of(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return c[k]
}

// Total returns the number of cells counted.
func (c Census) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Census tallies every cell by kind.
func (g *Grid) Census() Census {
	var c Census
	for _, cell := range g.cells {
		if cell.Kind.Valid() {
			c[cell.Kind]++
		}
	}
	return c
}

// Kinds writes each cell's kind byte into dst in row-major order, growing dst
// when needed.
func (g *Grid) Kinds(dst []uint8) []uint8 {
	if cap(dst) < len(g.cells) {
		dst = make([]uint8, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	for i, cell := range g.cells {
		dst[i] = uint8(cell.Kind)
	}
	return dst
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(Cell)) {
	for _, cell := range g.cells {
		fn(cell)
	}
}

// Equal reports whether both grids have the same size, boundaries and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols || g.bounds != o.bounds {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

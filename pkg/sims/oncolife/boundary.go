package oncolife

import (
	"errors"
	"fmt"
	"strings"
)

// BoundaryMode controls how an out-of-range neighbor lookup is resolved.
type BoundaryMode uint8

const (
	// Normal treats positions past the edge as absent.
	Normal BoundaryMode = iota
	// Periodic wraps around to the opposite edge.
	Periodic
	// Mirror clamps to the nearest edge cell.
	Mirror
)

// Edge names one side of the grid.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// NumEdges is the number of grid sides.
const NumEdges = 4

// Boundaries holds one mode per edge, indexed by Edge.
type Boundaries [NumEdges]BoundaryMode

var (
	// ErrInvalidBoundaryMode reports an unrecognized mode name.
	ErrInvalidBoundaryMode = errors.New("invalid boundary mode")
	// ErrInvalidEdge reports an unrecognized edge name.
	ErrInvalidEdge = errors.New("invalid edge")
)

var (
	modeNames = [...]string{"normal", "periodic", "mirror"}
	edgeNames = [NumEdges]string{"left", "right", "top", "bottom"}
)

func (m BoundaryMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("BoundaryMode(%d)", uint8(m))
}

// Next cycles Normal -> Periodic -> Mirror -> Normal.
func (m BoundaryMode) Next() BoundaryMode {
	return BoundaryMode((int(m) + 1) % len(modeNames))
}

// ParseBoundaryMode accepts the mode names case-insensitively. "default" and
// the empty string are rejected rather than silently treated as Normal.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return BoundaryMode(i), nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrInvalidBoundaryMode, s)
}

func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		return edgeNames[e]
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// ParseEdge accepts left/right/top/bottom (and up/down as aliases).
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return EdgeLeft, nil
	case "right":
		return EdgeRight, nil
	case "top", "up":
		return EdgeTop, nil
	case "bottom", "down":
		return EdgeBottom, nil
	}
	return EdgeLeft, fmt.Errorf("%w: %q", ErrInvalidEdge, s)
}

// Uniform returns Boundaries with every edge set to m.
func Uniform(m BoundaryMode) Boundaries {
	return Boundaries{m, m, m, m}
}

func (b Boundaries) String() string {
	return fmt.Sprintf("L:%s R:%s T:%s B:%s", b[EdgeLeft], b[EdgeRight], b[EdgeTop], b[EdgeBottom])
}

// Resolve maps v onto [0, limit) using mode. The boolean is false when the
// position has no neighbor.
func Resolve(v, limit int, mode BoundaryMode) (int, bool) {
	if limit <= 0 {
		return 0, false
	}
	switch mode {
	case Periodic:
		return ((v % limit) + limit) % limit, true
	case Mirror:
		if v < 0 {
			return 0, true
		}
		if v >= limit {
			return limit - 1, true
		}
		return v, true
	default:
		if v < 0 || v >= limit {
			return 0, false
		}
		return v, true
	}
}

// resolveCol picks the edge from the direction of the probe relative to the
// center column. A probe in the center column is never remapped.
func (b Boundaries) resolveCol(center, j, cols int) (int, bool) {
	switch {
	case j < center:
		return Resolve(j, cols, b[EdgeLeft])
	case j > center:
		return Resolve(j, cols, b[EdgeRight])
	default:
		return j, true
	}
}

func (b Boundaries) resolveRow(center, i, rows int) (int, bool) {
	switch {
	case i < center:
		return Resolve(i, rows, b[EdgeTop])
	case i > center:
		return Resolve(i, rows, b[EdgeBottom])
	default:
		return i, true
	}
}

package oncolife

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Kind is the discriminant of a cell variant.
type Kind uint8

const (
	KindDead Kind = iota
	KindAlive
	KindCancer
	KindCure
)

// NumKinds is the number of cell variants.
const NumKinds = 4

// Weighting bounds applied at configuration and UI boundaries.
const (
	MinWeighting = 0.0001
	MaxWeighting = 1.0
)

var (
	// ErrInvalidKind reports an unrecognized cell kind name.
	ErrInvalidKind = errors.New("invalid cell kind")
)

var kindNames = [NumKinds]string{"Dead", "Alive", "Cancer", "Cure"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the four variants.
func (k Kind) Valid() bool { return k < NumKinds }

// NextLive returns the next non-Dead kind after k, wrapping Cure to Alive.
func (k Kind) NextLive() Kind {
	k = (k + 1) % NumKinds
	if k == KindDead {
		k++
	}
	return k
}

// Kinds lists every variant in discriminant order.
func Kinds() []Kind {
	return []Kind{KindDead, KindAlive, KindCancer, KindCure}
}

// ParseKind accepts the kind names case-insensitively.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Kind(i), nil
		}
	}
	return KindDead, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Coordinate identifies a grid position.
type Coordinate struct {
	Row int
	Col int
}

// Cell is one grid occupant. Weighting is only meaningful for Cancer and Cure.
type Cell struct {
	Kind      Kind
	Coord     Coordinate
	Weighting float64
}

// Dead returns a Dead cell at (row, col).
func Dead(row, col int) Cell {
	return Cell{Kind: KindDead, Coord: Coordinate{Row: row, Col: col}}
}

// Alive returns an Alive cell at (row, col).
func Alive(row, col int) Cell {
	return Cell{Kind: KindAlive, Coord: Coordinate{Row: row, Col: col}}
}

// Cancer returns a Cancer cell at (row, col) carrying weighting w.
func Cancer(row, col int, w float64) Cell {
	return Cell{Kind: KindCancer, Coord: Coordinate{Row: row, Col: col}, Weighting: w}
}

// Cure returns a Cure cell at (row, col) carrying weighting w.
func Cure(row, col int, w float64) Cell {
	return Cell{Kind: KindCure, Coord: Coordinate{Row: row, Col: col}, Weighting: w}
}

// NewCell builds a cell of the given kind. Weighting is dropped for kinds that
// do not carry one.
func NewCell(kind Kind, row, col int, w float64) Cell {
	switch kind {
	case KindCancer:
		return Cancer(row, col, w)
	case KindCure:
		return Cure(row, col, w)
	case KindAlive:
		return Alive(row, col)
	default:
		return Dead(row, col)
	}
}

// At returns a copy of c relocated to (row, col).
func (c Cell) At(row, col int) Cell {
	c.Coord = Coordinate{Row: row, Col: col}
	return c
}

// ClampWeighting limits w to [MinWeighting, MaxWeighting]. Non-finite values
// fall back to def.
func ClampWeighting(w, def float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		w = def
	}
	if w < MinWeighting {
		return MinWeighting
	}
	if w > MaxWeighting {
		return MaxWeighting
	}
	return w
}

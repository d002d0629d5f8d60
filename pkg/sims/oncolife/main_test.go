package oncolife

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}

// seqSource replays fixed draws and fails the test when exhausted.
type seqSource struct {
	t     *testing.T
	draws []float64
}

func (s *seqSource) Float64() float64 {
	s.t.Helper()
	if len(s.draws) == 0 {
		s.t.Fatal("unexpected random draw")
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func noDraws(t *testing.T) *seqSource { return &seqSource{t: t} }

func draws(t *testing.T, vals ...float64) *seqSource { return &seqSource{t: t, draws: vals} }

// gridFrom builds a grid from rows of glyphs: '.' Dead, 'O' Alive,
// 'X' Cancer, '+' Cure.
func gridFrom(t *testing.T, b Boundaries, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows), len(rows[0]), b)
	if err != nil {
		t.Fatal(err)
	}
	for r, line := range rows {
		for c, ch := range line {
			var cell Cell
			switch ch {
			case '.':
				cell = Dead(r, c)
			case 'O':
				cell = Alive(r, c)
			case 'X':
				cell = Cancer(r, c, 0.01)
			case '+':
				cell = Cure(r, c, 0.1)
			default:
				t.Fatalf("bad glyph %q", ch)
			}
			if err := g.Set(cell); err != nil {
				t.Fatal(err)
			}
		}
	}
	return g
}

func kindAt(t *testing.T, g *Grid, row, col int) Kind {
	t.Helper()
	c, err := g.Get(row, col)
	if err != nil {
		t.Fatal(err)
	}
	return c.Kind
}

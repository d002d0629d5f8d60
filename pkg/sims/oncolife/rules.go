package oncolife

import (
	"errors"
	"fmt"
	"strings"

	"oncolife/pkg/core"
)

// ErrInvalidRules reports a rule set with out-of-range thresholds or chances.
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds the thresholds and probabilities of the transition table.
type Rules struct {
	Name string

	BirthNeighbors int
	SurviveMin     int
	SurviveMax     int

	// CancerChance is the per-generation chance that a Dead cell touching at
	// least one Cancer cell becomes Cancer.
	CancerChance float64
	// CureChance is the chance that a Dead cell with at least
	// CureSpawnCancerNeighbors Cancer neighbors becomes Cure.
	CureChance               float64
	CureSpawnCancerNeighbors int

	CancerCrowdNeighbors int
	CancerEliminatedTo   Kind

	CureExhaustDeadNeighbors int
	CureCrowdNeighbors       int

	// Weights assigned to Cancer and Cure cells born during a generation.
	CancerWeight float64
	CureWeight   float64
}

// Rule preset names.
const (
	RulesConsole = "console"
	RulesGUI     = "gui"
)

// ConsoleRules is the canonical rule set: eliminated Cancer dies and Cure
// cells tolerate more crowding.
func ConsoleRules() Rules {
	return Rules{
		Name:                     RulesConsole,
		BirthNeighbors:           3,
		SurviveMin:               2,
		SurviveMax:               3,
		CancerChance:             0.1,
		CureChance:               0.5,
		CureSpawnCancerNeighbors: 5,
		CancerCrowdNeighbors:     7,
		CancerEliminatedTo:       KindDead,
		CureExhaustDeadNeighbors: 6,
		CureCrowdNeighbors:       3,
		CancerWeight:             0.01,
		CureWeight:               0.1,
	}
}

// GUIRules is the desktop variant: eliminated Cancer turns Alive and Cure
// cells die sooner.
func GUIRules() Rules {
	r := ConsoleRules()
	r.Name = RulesGUI
	r.CancerEliminatedTo = KindAlive
	r.CureExhaustDeadNeighbors = 4
	r.CureCrowdNeighbors = 2
	return r
}

// RulesByName returns the named preset.
func RulesByName(name string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", RulesConsole:
		return ConsoleRules(), nil
	case RulesGUI:
		return GUIRules(), nil
	}
	return Rules{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidRules, name)
}

// Validate checks every threshold lies in [0,8] and every chance in [0,1].
func (r Rules) Validate() error {
	thresholds := []struct {
		name string
		v    int
	}{
		{"birth_neighbors", r.BirthNeighbors},
		{"survive_min", r.SurviveMin},
		{"survive_max", r.SurviveMax},
		{"cure_spawn_cancer_neighbors", r.CureSpawnCancerNeighbors},
		{"cancer_crowd_neighbors", r.CancerCrowdNeighbors},
		{"cure_exhaust_dead_neighbors", r.CureExhaustDeadNeighbors},
		{"cure_crowd_neighbors", r.CureCrowdNeighbors},
	}
	for _, t := range thresholds {
		if t.v < 0 || t.v > 8 {
			return fmt.Errorf("%w: %s=%d outside [0,8]", ErrInvalidRules, t.name, t.v)
		}
	}
	if r.SurviveMin > r.SurviveMax {
		return fmt.Errorf("%w: survive_min %d > survive_max %d", ErrInvalidRules, r.SurviveMin, r.SurviveMax)
	}
	if r.CancerChance < 0 || r.CancerChance > 1 {
		return fmt.Errorf("%w: cancer_chance=%g outside [0,1]", ErrInvalidRules, r.CancerChance)
	}
	if r.CureChance < 0 || r.CureChance > 1 {
		return fmt.Errorf("%w: cure_chance=%g outside [0,1]", ErrInvalidRules, r.CureChance)
	}
	if !r.CancerEliminatedTo.Valid() {
		return fmt.Errorf("%w: cancer_eliminated_to=%d", ErrInvalidRules, r.CancerEliminatedTo)
	}
	return nil
}

// Process returns the next-generation occupant of c's slot. g is the grid
// being read and is never written. rng is drawn only by Dead cells with a
// Cancer neighbor.
func (r Rules) Process(c Cell, g *Grid, rng core.Source) Cell {
	row, col := c.Coord.Row, c.Coord.Col
	switch c.Kind {
	case KindDead:
		if g.CountNeighbors(row, col, KindAlive) == r.BirthNeighbors {
			return Alive(row, col)
		}
		cancer := g.CountNeighbors(row, col, KindCancer)
		if cancer >= 1 && rng.Float64() < r.CancerChance {
			return Cancer(row, col, r.CancerWeight)
		}
		if cancer >= r.CureSpawnCancerNeighbors && rng.Float64() < r.CureChance {
			return Cure(row, col, r.CureWeight)
		}
		return Dead(row, col)
	case KindAlive:
		n := g.CountNeighbors(row, col, KindAlive)
		if n >= r.SurviveMin && n <= r.SurviveMax {
			return c
		}
		return Dead(row, col)
	case KindCancer:
		cure := g.CountNeighbors(row, col, KindCure)
		cancer := g.CountNeighbors(row, col, KindCancer)
		if cure >= 1 || cancer >= r.CancerCrowdNeighbors {
			return NewCell(r.CancerEliminatedTo, row, col, r.WeightFor(r.CancerEliminatedTo))
		}
		return c
	case KindCure:
		if g.CountNeighbors(row, col, KindDead) >= r.CureExhaustDeadNeighbors {
			return Dead(row, col)
		}
		if g.CountNeighbors(row, col, KindCure) >= r.CureCrowdNeighbors {
			return Dead(row, col)
		}
		return c
	default:
		panic(fmt.Sprintf("oncolife: unknown cell kind %d at (%d,%d)", c.Kind, row, col))
	}
}

// WeightFor returns the weighting a newly placed cell of kind k carries.
func (r Rules) WeightFor(k Kind) float64 {
	switch k {
	case KindCancer:
		return r.CancerWeight
	case KindCure:
		return r.CureWeight
	default:
		return 0
	}
}

// Package scenario loads simulation setups from YAML files.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"oncolife/pkg/core"
	"oncolife/pkg/sims/oncolife"
)

// ErrInvalidScenario reports a scenario that decodes but cannot be built.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is the on-disk description of a starting grid.
// Unknown fields are rejected so typos fail loudly.
type Scenario struct {
	Rows int   `yaml:"rows"`
	Cols int   `yaml:"cols"`
	Seed int64 `yaml:"seed"`

	Rules      string         `yaml:"rules"`
	Overrides  *RuleOverrides `yaml:"rule_overrides"`
	Boundaries Boundaries     `yaml:"boundaries"`

	CancerWeight *float64 `yaml:"cancer_weight"`
	CureWeight   *float64 `yaml:"cure_weight"`

	Cells    []CellSpec    `yaml:"cells"`
	Patterns []PatternSpec `yaml:"patterns"`
	Random   *RandomFill   `yaml:"random"`
	Demo     bool          `yaml:"demo"`
}

// RuleOverrides replaces individual fields of the chosen preset.
type RuleOverrides struct {
	CancerChance             *float64 `yaml:"cancer_chance"`
	CureChance               *float64 `yaml:"cure_chance"`
	CureSpawnCancerNeighbors *int     `yaml:"cure_spawn_cancer_neighbors"`
	CancerCrowdNeighbors     *int     `yaml:"cancer_crowd_neighbors"`
	CancerEliminatedTo       string   `yaml:"cancer_eliminated_to"`
	CureExhaustDeadNeighbors *int     `yaml:"cure_exhaust_dead_neighbors"`
	CureCrowdNeighbors       *int     `yaml:"cure_crowd_neighbors"`
}

// Boundaries names the mode of each edge. Empty entries mean normal.
type Boundaries struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

// CellSpec places one cell.
type CellSpec struct {
	Kind string `yaml:"kind"`
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
}

// PatternSpec stamps a named pattern with its top-left corner at Row, Col.
type PatternSpec struct {
	Name string `yaml:"name"`
	Row  int    `yaml:"row"`
	Col  int    `yaml:"col"`
	Kind string `yaml:"kind"`
}

// RandomFill scatters cells over Dead slots with the given densities.
type RandomFill struct {
	Alive  float64 `yaml:"alive"`
	Cancer float64 `yaml:"cancer"`
	Cure   float64 `yaml:"cure"`
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses a scenario with strict field checking.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return &s, nil
}

// Config converts the scenario into a sim configuration. Weights outside
// [0.0001, 1] are clamped with a warning.
func (s *Scenario) Config() (oncolife.Config, error) {
	cfg := oncolife.DefaultConfig()
	if s.Rows > 0 {
		cfg.Height = s.Rows
	}
	if s.Cols > 0 {
		cfg.Width = s.Cols
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	rules, err := oncolife.RulesByName(s.Rules)
	if err != nil {
		return cfg, err
	}
	if err := s.Overrides.apply(&rules); err != nil {
		return cfg, err
	}
	if s.CancerWeight != nil {
		rules.CancerWeight = clampWeight("cancer_weight", *s.CancerWeight, rules.CancerWeight)
	}
	if s.CureWeight != nil {
		rules.CureWeight = clampWeight("cure_weight", *s.CureWeight, rules.CureWeight)
	}
	if err := rules.Validate(); err != nil {
		return cfg, err
	}
	cfg.Rules = rules

	b, err := s.Boundaries.parse()
	if err != nil {
		return cfg, err
	}
	cfg.Boundaries = b
	cfg.Demo = s.Demo
	return cfg, nil
}

// Build creates the sim and lays out every cell, pattern and random fill.
func (s *Scenario) Build() (*oncolife.Life, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	life, err := oncolife.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	if s.Demo {
		life.Reset(cfg.Seed)
	}
	g := life.Grid()
	rules := cfg.Rules

	for _, p := range s.Patterns {
		pat, ok := oncolife.LookupPattern(p.Name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown pattern %q (have %v)", ErrInvalidScenario, p.Name, oncolife.PatternNames())
		}
		kind := oncolife.KindAlive
		if p.Kind != "" {
			if kind, err = oncolife.ParseKind(p.Kind); err != nil {
				return nil, fmt.Errorf("pattern %s: %w", p.Name, err)
			}
		}
		if err := pat.Stamp(g, p.Row, p.Col, kind, rules.WeightFor(kind)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}
	}
	for _, c := range s.Cells {
		kind, err := oncolife.ParseKind(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("cell (%d,%d): %w", c.Row, c.Col, err)
		}
		if err := g.Set(oncolife.NewCell(kind, c.Row, c.Col, rules.WeightFor(kind))); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}
	}
	if s.Random != nil {
		scatter(g, *s.Random, rules, core.NewLayoutRNG(cfg.Seed))
	}
	life.Load(g)
	c := life.Census()
	logrus.Infof("scenario %dx%d rules=%s boundaries=[%v] alive=%d cancer=%d cure=%d",
		g.Rows(), g.Cols(), rules.Name, g.Boundaries(), c.Of(oncolife.KindAlive), c.Of(oncolife.KindCancer), c.Of(oncolife.KindCure))
	return life, nil
}

func (o *RuleOverrides) apply(r *oncolife.Rules) error {
	if o == nil {
		return nil
	}
	if o.CancerChance != nil {
		r.CancerChance = *o.CancerChance
	}
	if o.CureChance != nil {
		r.CureChance = *o.CureChance
	}
	if o.CureSpawnCancerNeighbors != nil {
		r.CureSpawnCancerNeighbors = *o.CureSpawnCancerNeighbors
	}
	if o.CancerCrowdNeighbors != nil {
		r.CancerCrowdNeighbors = *o.CancerCrowdNeighbors
	}
	if o.CureExhaustDeadNeighbors != nil {
		r.CureExhaustDeadNeighbors = *o.CureExhaustDeadNeighbors
	}
	if o.CureCrowdNeighbors != nil {
		r.CureCrowdNeighbors = *o.CureCrowdNeighbors
	}
	if o.CancerEliminatedTo != "" {
		k, err := oncolife.ParseKind(o.CancerEliminatedTo)
		if err != nil {
			return fmt.Errorf("cancer_eliminated_to: %w", err)
		}
		r.CancerEliminatedTo = k
	}
	return nil
}

func (b Boundaries) parse() (oncolife.Boundaries, error) {
	var out oncolife.Boundaries
	names := [oncolife.NumEdges]string{
		oncolife.EdgeLeft:   b.Left,
		oncolife.EdgeRight:  b.Right,
		oncolife.EdgeTop:    b.Top,
		oncolife.EdgeBottom: b.Bottom,
	}
	for e := oncolife.Edge(0); e < oncolife.NumEdges; e++ {
		v := names[e]
		if v == "" {
			continue
		}
		m, err := oncolife.ParseBoundaryMode(v)
		if err != nil {
			return out, fmt.Errorf("boundaries.%s: %w", e, err)
		}
		out[e] = m
	}
	return out, nil
}

func clampWeight(key string, w, def float64) float64 {
	clamped := oncolife.ClampWeighting(w, def)
	if clamped != w {
		logrus.Warnf("%s %g outside [%g, %g]; using %g", key, w, oncolife.MinWeighting, oncolife.MaxWeighting, clamped)
	}
	return clamped
}

func scatter(g *oncolife.Grid, fill RandomFill, r oncolife.Rules, rng *core.RNG) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			v := rng.Float64()
			cur, _ := g.Get(row, col)
			if cur.Kind != oncolife.KindDead {
				continue
			}
			var kind oncolife.Kind
			switch {
			case v < fill.Cancer:
				kind = oncolife.KindCancer
			case v < fill.Cancer+fill.Cure:
				kind = oncolife.KindCure
			case v < fill.Cancer+fill.Cure+fill.Alive:
				kind = oncolife.KindAlive
			default:
				continue
			}
			_ = g.Set(oncolife.NewCell(kind, row, col, r.WeightFor(kind)))
		}
	}
}

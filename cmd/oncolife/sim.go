package main

import (
	"strconv"

	"github.com/spf13/pflag"

	"oncolife/internal/scenario"
	"oncolife/pkg/sims/oncolife"
)

// simFlags selects the starting grid shared by the run and gui commands.
type simFlags struct {
	scenario string
	rules    string
	rows     int
	cols     int
	seed     int64
	demo     bool
	workers  int
	edges    [oncolife.NumEdges]string
	set      map[string]string
}

func (f *simFlags) bind(fs *pflag.FlagSet, defaultRules string) {
	def := oncolife.DefaultConfig()
	fs.StringVar(&f.scenario, "scenario", "", "YAML scenario file; overrides the grid flags")
	fs.StringVar(&f.rules, "rules", defaultRules, "Rule preset (console, gui)")
	fs.IntVar(&f.rows, "rows", def.Height, "Grid rows")
	fs.IntVar(&f.cols, "cols", def.Width, "Grid columns")
	if fs.Lookup("seed") == nil {
		fs.Int64Var(&f.seed, "seed", def.Seed, "Seed for the initial fill and stochastic rules")
	}
	fs.BoolVar(&f.demo, "demo", false, "Start from the demo scene instead of a random fill")
	fs.IntVar(&f.workers, "workers", 1, "Row bands advanced in parallel")
	for e := oncolife.Edge(0); e < oncolife.NumEdges; e++ {
		fs.StringVar(&f.edges[e], e.String(), "normal", "Boundary mode of the "+e.String()+" edge (normal, periodic, mirror)")
	}
	fs.StringToStringVar(&f.set, "set", nil, "Extra sim options, e.g. cancer_chance=0.2,fill_alive=0.3")
}

// options flattens the flags into the key/value form understood by
// oncolife.FromMap. Explicit --set entries win.
func (f *simFlags) options() map[string]string {
	opts := map[string]string{
		"rules":   f.rules,
		"h":       strconv.Itoa(f.rows),
		"w":       strconv.Itoa(f.cols),
		"seed":    strconv.FormatInt(f.seed, 10),
		"demo":    strconv.FormatBool(f.demo),
		"workers": strconv.Itoa(f.workers),
	}
	for e, mode := range f.edges {
		opts[oncolife.Edge(e).String()] = mode
	}
	for k, v := range f.set {
		opts[k] = v
	}
	return opts
}

// build returns a sim ready to step.
func (f *simFlags) build() (*oncolife.Life, error) {
	if f.scenario != "" {
		s, err := scenario.Load(f.scenario)
		if err != nil {
			return nil, err
		}
		life, err := s.Build()
		if err != nil {
			return nil, err
		}
		life.SetWorkers(f.workers)
		return life, nil
	}
	cfg, err := oncolife.FromMap(f.options())
	if err != nil {
		return nil, err
	}
	life, err := oncolife.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	life.Reset(cfg.Seed)
	return life, nil
}

// Package sweep runs rule-parameter grids over several seeds on a worker pool
// and ranks them by how well Cancer is contained.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"oncolife/pkg/sims/oncolife"
)

// ParamSet is one point of the sweep grid.
type ParamSet struct {
	Rules        string
	CancerChance float64
	CureChance   float64
}

func (p ParamSet) String() string {
	return fmt.Sprintf("rules=%s cancer=%.3f cure=%.3f", p.Rules, p.CancerChance, p.CureChance)
}

// Result aggregates the runs of one ParamSet across all seeds.
type Result struct {
	Params ParamSet

	Runs        int
	FinalCancer float64 // mean over seeds
	FinalAlive  float64 // mean over seeds
	PeakCancer  int     // max over seeds
	Cleared     int     // seeds that ended with no Cancer
}

// Grid expands the cartesian product of presets and chances.
func Grid(presets []string, cancer, cure []float64) []ParamSet {
	sets := make([]ParamSet, 0, len(presets)*len(cancer)*len(cure))
	for _, preset := range presets {
		for _, cc := range cancer {
			for _, cu := range cure {
				sets = append(sets, ParamSet{Rules: preset, CancerChance: cc, CureChance: cu})
			}
		}
	}
	return sets
}

// Options controls a sweep.
type Options struct {
	Base        oncolife.Config
	Seeds       []int64
	Generations int
	Workers     int
}

type runResult struct {
	set    int
	final  oncolife.Census
	peak   int
	failed error
}

// Run evaluates every set for every seed. Results are sorted by mean final
// Cancer, then peak Cancer, then parameters, so the order does not depend on
// scheduling.
func Run(ctx context.Context, sets []ParamSet, opts Options) ([]Result, error) {
	for _, p := range sets {
		if _, err := configFor(opts.Base, p, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	type job struct {
		set  int
		seed int64
	}
	jobs := make(chan job)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runOne(opts.Base, sets[j.set], j.set, j.seed, opts.Generations)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := range sets {
			for _, seed := range opts.Seeds {
				select {
				case jobs <- job{set: i, seed: seed}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	agg := make([]Result, len(sets))
	for i, p := range sets {
		agg[i].Params = p
	}
	var firstErr error
	for res := range results {
		if res.failed != nil {
			if firstErr == nil {
				firstErr = res.failed
			}
			continue
		}
		r := &agg[res.set]
		r.Runs++
		r.FinalCancer += float64(res.final.Of(oncolife.KindCancer))
		r.FinalAlive += float64(res.final.Of(oncolife.KindAlive))
		if res.peak > r.PeakCancer {
			r.PeakCancer = res.peak
		}
		if res.final.Of(oncolife.KindCancer) == 0 {
			r.Cleared++
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	for i := range agg {
		if agg[i].Runs > 0 {
			agg[i].FinalCancer /= float64(agg[i].Runs)
			agg[i].FinalAlive /= float64(agg[i].Runs)
		}
	}
	sort.Slice(agg, func(i, j int) bool {
		a, b := agg[i], agg[j]
		if a.FinalCancer != b.FinalCancer {
			return a.FinalCancer < b.FinalCancer
		}
		if a.PeakCancer != b.PeakCancer {
			return a.PeakCancer < b.PeakCancer
		}
		return a.Params.String() < b.Params.String()
	})
	return agg, nil
}

func configFor(base oncolife.Config, p ParamSet, seed int64) (oncolife.Config, error) {
	cfg := base
	rules, err := oncolife.RulesByName(p.Rules)
	if err != nil {
		return cfg, err
	}
	rules.CancerWeight = base.Rules.CancerWeight
	rules.CureWeight = base.Rules.CureWeight
	rules.CancerChance = p.CancerChance
	rules.CureChance = p.CureChance
	if err := rules.Validate(); err != nil {
		return cfg, err
	}
	cfg.Rules = rules
	cfg.Seed = seed
	cfg.Workers = 1
	return cfg, nil
}

func runOne(base oncolife.Config, p ParamSet, set int, seed int64, generations int) runResult {
	cfg, err := configFor(base, p, seed)
	if err != nil {
		return runResult{set: set, failed: err}
	}
	life, err := oncolife.NewWithConfig(cfg)
	if err != nil {
		return runResult{set: set, failed: err}
	}
	life.Reset(seed)
	peak := life.Census().Of(oncolife.KindCancer)
	for g := 0; g < generations; g++ {
		life.Step()
		if n := life.Census().Of(oncolife.KindCancer); n > peak {
			peak = n
		}
	}
	logrus.Debugf("sweep %s seed=%d final=%v peak=%d", p, seed, life.Census(), peak)
	return runResult{set: set, final: life.Census(), peak: peak}
}

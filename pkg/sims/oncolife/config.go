package oncolife

import (
	"fmt"
	"strconv"
	"strings"
)

// Config controls the dimensions, rules and initial fill of a Life sim.
type Config struct {
	Width  int
	Height int

	Seed int64

	Rules      Rules
	Boundaries Boundaries

	// Densities used by Reset when Demo is false.
	FillAlive  float64
	FillCancer float64
	FillCure   float64

	// Demo stamps the demonstration scene instead of a random fill.
	Demo bool

	// Workers > 1 advances generations with row bands in parallel.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      64,
		Height:     64,
		Seed:       42,
		Rules:      ConsoleRules(),
		Boundaries: Uniform(Normal),
		FillAlive:  0.25,
		FillCancer: 0.01,
		FillCure:   0.005,
		Workers:    1,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys are ignored; malformed values are reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["rules"]; ok {
		r, err := RulesByName(v)
		if err != nil {
			return c, err
		}
		c.Rules = r
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, fmt.Errorf("%w: w=%q", ErrInvalidDimensions, v)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, fmt.Errorf("%w: h=%q", ErrInvalidDimensions, v)
		}
		c.Height = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("seed=%q: %w", v, err)
		}
		c.Seed = parsed
	}
	for e := Edge(0); e < NumEdges; e++ {
		v, ok := cfg[e.String()]
		if !ok {
			continue
		}
		m, err := ParseBoundaryMode(v)
		if err != nil {
			return c, fmt.Errorf("%s edge: %w", e, err)
		}
		c.Boundaries[e] = m
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"cancer_chance", &c.Rules.CancerChance},
		{"cure_chance", &c.Rules.CureChance},
		{"cancer_weight", &c.Rules.CancerWeight},
		{"cure_weight", &c.Rules.CureWeight},
		{"fill_alive", &c.FillAlive},
		{"fill_cancer", &c.FillCancer},
		{"fill_cure", &c.FillCure},
	}
	for _, f := range floats {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%s=%q: %w", f.key, v, err)
		}
		*f.dst = parsed
	}
	c.Rules.CancerWeight = ClampWeighting(c.Rules.CancerWeight, ConsoleRules().CancerWeight)
	c.Rules.CureWeight = ClampWeighting(c.Rules.CureWeight, ConsoleRules().CureWeight)
	if v, ok := cfg["workers"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("workers=%q: %w", v, err)
		}
		c.Workers = parsed
	}
	if v, ok := cfg["demo"]; ok {
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return c, fmt.Errorf("demo=%q: %w", v, err)
		}
		c.Demo = parsed
	}
	if err := c.Rules.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

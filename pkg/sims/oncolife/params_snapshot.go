package oncolife

import (
	"strconv"

	"oncolife/pkg/core"
)

// Parameters reports the current configuration, boundaries and population.
func (l *Life) Parameters() core.ParameterSnapshot {
	r := l.cfg.Rules
	b := l.engine.Grid().Boundaries()
	c := l.Census()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.engine.Grid().Cols()),
				intParam("h", "Height", l.engine.Grid().Rows()),
				int64Param("seed", "Seed", l.cfg.Seed),
				intParam("generation", "Generation", l.generation),
				stringParam("rules", "Rule set", r.Name),
			},
		},
		{
			Name: "Boundaries",
			Params: []core.Parameter{
				stringParam("left", "Left", b[EdgeLeft].String()),
				stringParam("right", "Right", b[EdgeRight].String()),
				stringParam("top", "Top", b[EdgeTop].String()),
				stringParam("bottom", "Bottom", b[EdgeBottom].String()),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				floatParam("cancer_chance", "Cancer chance", r.CancerChance),
				floatParam("cure_chance", "Cure chance", r.CureChance),
				floatParam("cancer_weight", "Cancer weight", r.CancerWeight),
				floatParam("cure_weight", "Cure weight", r.CureWeight),
				intParam("cancer_crowd_neighbors", "Cancer crowding", r.CancerCrowdNeighbors),
				intParam("cure_exhaust_dead_neighbors", "Cure exhaustion", r.CureExhaustDeadNeighbors),
				intParam("cure_crowd_neighbors", "Cure crowding", r.CureCrowdNeighbors),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("dead", "Dead", c[KindDead]),
				intParam("alive", "Alive", c[KindAlive]),
				intParam("cancer", "Cancer", c[KindCancer]),
				intParam("cure", "Cure", c[KindCure]),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var lifeControls = []core.ParameterControl{
	{Key: "cancer_weight", Label: "Cancer weight", Type: core.ParamTypeFloat, Step: 0.01, Min: MinWeighting, Max: MaxWeighting, HasMin: true, HasMax: true},
	{Key: "cure_weight", Label: "Cure weight", Type: core.ParamTypeFloat, Step: 0.01, Min: MinWeighting, Max: MaxWeighting, HasMin: true, HasMax: true},
	{Key: "cancer_chance", Label: "Cancer chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "cure_chance", Label: "Cure chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "cancer_crowd_neighbors", Label: "Cancer crowding", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
	{Key: "cure_exhaust_dead_neighbors", Label: "Cure exhaustion", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
	{Key: "cure_crowd_neighbors", Label: "Cure crowding", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
}

// ParameterControls lists the HUD-adjustable rule parameters.
func (l *Life) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), lifeControls...)
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, c := range lifeControls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetFloatParameter updates a probability or weight. Weights are clamped to
// [MinWeighting, MaxWeighting] and applied to the Cancer or Cure cells already
// on the grid.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	value = ctrl.Clamp(value)
	r := l.cfg.Rules
	switch key {
	case "cancer_weight":
		r.CancerWeight = ClampWeighting(value, r.CancerWeight)
		l.engine.Grid().reweight(KindCancer, r.CancerWeight)
	case "cure_weight":
		r.CureWeight = ClampWeighting(value, r.CureWeight)
		l.engine.Grid().reweight(KindCure, r.CureWeight)
	case "cancer_chance":
		r.CancerChance = value
	case "cure_chance":
		r.CureChance = value
	default:
		return false
	}
	return l.SetRules(r) == nil
}

// SetIntParameter updates one of the neighbor thresholds.
func (l *Life) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = int(ctrl.Clamp(float64(value)))
	r := l.cfg.Rules
	switch key {
	case "cancer_crowd_neighbors":
		r.CancerCrowdNeighbors = value
	case "cure_exhaust_dead_neighbors":
		r.CureExhaustDeadNeighbors = value
	case "cure_crowd_neighbors":
		r.CureCrowdNeighbors = value
	default:
		return false
	}
	return l.SetRules(r) == nil
}

func (g *Grid) reweight(kind Kind, w float64) {
	for i := range g.cells {
		if g.cells[i].Kind == kind {
			g.cells[i].Weighting = w
		}
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}

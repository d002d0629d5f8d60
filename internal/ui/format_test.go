package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oncolife/pkg/core"
	"oncolife/pkg/sims/oncolife"
)

func TestStatusLines(t *testing.T) {
	life := oncolife.New(8, 6)
	life.Reset(1)
	lines := statusLines(life.Parameters())

	assert.Equal(t, "Generation: 0", lines[0])
	assert.Contains(t, lines, "Rule set: console")
	assert.Equal(t, "L=normal R=normal T=normal B=normal", lines[len(lines)-1])
	assert.Empty(t, statusLines(core.ParameterSnapshot{}))
}

func TestBuildTitle(t *testing.T) {
	assert.Equal(t, "Oncolife Controls", buildTitle("oncolife"))
	assert.Equal(t, "Controls", buildTitle(""))
}

func TestAdjustInt(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true}

	v, ok := adjustInt(ctrl, 3, 1)
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	v, ok = adjustInt(ctrl, 8, 1)
	assert.False(t, ok)
	assert.Equal(t, 8, v)

	v, ok = adjustInt(ctrl, 0, -1)
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestAdjustFloat(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.01, Min: oncolife.MinWeighting, Max: oncolife.MaxWeighting, HasMin: true, HasMax: true}

	v, ok := adjustFloat(ctrl, 0.01, -1)
	assert.True(t, ok)
	assert.Equal(t, oncolife.MinWeighting, v)

	_, ok = adjustFloat(ctrl, oncolife.MaxWeighting, 1)
	assert.False(t, ok)

	v, ok = adjustFloat(core.ParameterControl{}, 0.5, 1)
	assert.True(t, ok)
	assert.InDelta(t, 0.55, v, 1e-9)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.50", formatFloat(core.ParameterControl{Step: 0.05}, 0.5))
	assert.Equal(t, "0.0100", formatFloat(core.ParameterControl{Step: 0.0005}, 0.01))
	assert.Equal(t, "0.5", formatFloat(core.ParameterControl{Step: 0.5}, 0.5))
	assert.Equal(t, "0.010", formatFloat(core.ParameterControl{Step: 0.005}, 0.01))
}

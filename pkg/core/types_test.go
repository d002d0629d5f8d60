package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSim struct{ name string }

func (s stubSim) Name() string   { return s.name }
func (s stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s stubSim) Reset(int64)    {}
func (s stubSim) Step()          {}
func (s stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("ignored", nil)
	Register("zz-stub", func(map[string]string) Sim { return stubSim{name: "zz-stub"} })

	_, ok := Sims()[""]
	assert.False(t, ok)
	_, ok = Sims()["ignored"]
	assert.False(t, ok)

	f, ok := Sims()["zz-stub"]
	assert.True(t, ok)
	assert.Equal(t, "zz-stub", f(nil).Name())
	assert.Contains(t, Names(), "zz-stub")
	delete(sims, "zz-stub")
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	assert.Equal(t, 0.0, c.Clamp(-2))
	assert.Equal(t, 1.0, c.Clamp(3))
	assert.Equal(t, 0.5, c.Clamp(0.5))
	assert.Equal(t, 9.0, ParameterControl{}.Clamp(9))
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := snap.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, "2", p.Value)
	_, ok = snap.Lookup("z")
	assert.False(t, ok)
}

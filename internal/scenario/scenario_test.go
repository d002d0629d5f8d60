package scenario

import (
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oncolife/pkg/core"
	"oncolife/pkg/sims/oncolife"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}

func TestLoadAndBuild(t *testing.T) {
	s, err := Load("testdata/tumor.yaml")
	require.NoError(t, err)

	life, err := s.Build()
	require.NoError(t, err)

	g := life.Grid()
	assert.Equal(t, 12, g.Rows())
	assert.Equal(t, 16, g.Cols())
	assert.Equal(t, oncolife.Boundaries{
		oncolife.EdgeLeft:   oncolife.Periodic,
		oncolife.EdgeRight:  oncolife.Periodic,
		oncolife.EdgeTop:    oncolife.Mirror,
		oncolife.EdgeBottom: oncolife.Normal,
	}, g.Boundaries())

	rules := life.Config().Rules
	assert.Equal(t, oncolife.RulesGUI, rules.Name)
	assert.Equal(t, 0.2, rules.CancerChance)
	assert.Equal(t, 3, rules.CureCrowdNeighbors)
	assert.Equal(t, 0.05, rules.CancerWeight)
	assert.Equal(t, oncolife.MaxWeighting, rules.CureWeight, "weights are clamped")

	c := life.Census()
	assert.Equal(t, 6, c.Of(oncolife.KindAlive))
	assert.Equal(t, 2, c.Of(oncolife.KindCancer))
	assert.Equal(t, 4, c.Of(oncolife.KindCure))

	cell, err := g.Get(5, 6)
	require.NoError(t, err)
	assert.Equal(t, 0.05, cell.Weighting)
	assert.Equal(t, 0, life.Generation())
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("rows: 4\ncolumns: 4\n"))
	assert.Error(t, err)
}

func TestConfigRejectsBadBoundary(t *testing.T) {
	s, err := Decode(strings.NewReader("boundaries:\n  left: wraparound\n"))
	require.NoError(t, err)
	_, err = s.Config()
	assert.ErrorIs(t, err, oncolife.ErrInvalidBoundaryMode)
}

func TestConfigRejectsBadOverrides(t *testing.T) {
	s, err := Decode(strings.NewReader("rule_overrides:\n  cure_chance: 2\n"))
	require.NoError(t, err)
	_, err = s.Config()
	assert.ErrorIs(t, err, oncolife.ErrInvalidRules)

	s, err = Decode(strings.NewReader("rule_overrides:\n  cancer_eliminated_to: zombie\n"))
	require.NoError(t, err)
	_, err = s.Config()
	assert.ErrorIs(t, err, oncolife.ErrInvalidKind)
}

func TestBuildRejectsBadPlacements(t *testing.T) {
	tests := map[string]string{
		"unknown pattern": "rows: 5\ncols: 5\npatterns:\n  - {name: spaceship, row: 0, col: 0}\n",
		"pattern overflow": "rows: 5\ncols: 5\npatterns:\n  - {name: glider, row: 4, col: 4}\n",
		"cell overflow":    "rows: 5\ncols: 5\ncells:\n  - {kind: alive, row: 5, col: 0}\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(doc))
			require.NoError(t, err)
			_, err = s.Build()
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}

	s, err := Decode(strings.NewReader("rows: 5\ncols: 5\ncells:\n  - {kind: zombie, row: 0, col: 0}\n"))
	require.NoError(t, err)
	_, err = s.Build()
	assert.ErrorIs(t, err, oncolife.ErrInvalidKind)
}

func TestRandomFillDeterministic(t *testing.T) {
	doc := "rows: 20\ncols: 20\nseed: 3\nrandom: {alive: 0.3, cancer: 0.02, cure: 0.01}\n"
	build := func() *oncolife.Life {
		s, err := Decode(strings.NewReader(doc))
		require.NoError(t, err)
		life, err := s.Build()
		require.NoError(t, err)
		return life
	}
	a, b := build(), build()
	assert.True(t, a.Grid().Equal(b.Grid()))
	assert.Greater(t, a.Census().Of(oncolife.KindAlive), 0)
}

func TestRandomFillUsesLayoutStream(t *testing.T) {
	s, err := Decode(strings.NewReader("rows: 12\ncols: 12\nseed: 9\nrandom: {alive: 0.4, cancer: 0.05, cure: 0.05}\n"))
	require.NoError(t, err)
	life, err := s.Build()
	require.NoError(t, err)

	fill := func(rng *core.RNG) *oncolife.Grid {
		g, err := oncolife.NewGrid(12, 12, oncolife.Boundaries{})
		require.NoError(t, err)
		scatter(g, *s.Random, life.Config().Rules, rng)
		return g
	}
	assert.True(t, life.Grid().Equal(fill(core.NewLayoutRNG(9))))
	assert.False(t, life.Grid().Equal(fill(core.NewRNG(9))), "fill must not share the step stream")
}

func TestBoundaryErrorNamesFirstBadEdge(t *testing.T) {
	s, err := Decode(strings.NewReader("boundaries:\n  bottom: sideways\n  left: wraparound\n"))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		_, err = s.Config()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boundaries.left")
	}
}

func TestDemoScenario(t *testing.T) {
	s, err := Decode(strings.NewReader("rows: 40\ncols: 40\ndemo: true\n"))
	require.NoError(t, err)
	life, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, life.Census().Of(oncolife.KindCancer))
}

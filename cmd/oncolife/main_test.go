package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oncolife/internal/console"
	"oncolife/pkg/sims/oncolife"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}

func parseSimFlags(t *testing.T, args ...string) *simFlags {
	t.Helper()
	var f simFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.bind(fs, oncolife.RulesConsole)
	require.NoError(t, fs.Parse(args))
	return &f
}

func TestSimFlagsOptions(t *testing.T) {
	f := parseSimFlags(t, "--rows", "5", "--cols", "7", "--left", "periodic", "--set", "cancer_chance=0.3,rules=gui")
	opts := f.options()

	assert.Equal(t, "5", opts["h"])
	assert.Equal(t, "7", opts["w"])
	assert.Equal(t, "periodic", opts["left"])
	assert.Equal(t, "normal", opts["bottom"])
	assert.Equal(t, "0.3", opts["cancer_chance"])
	assert.Equal(t, "gui", opts["rules"], "--set wins over flags")
}

func TestSimFlagsBuild(t *testing.T) {
	life, err := parseSimFlags(t, "--rows", "6", "--cols", "9", "--top", "mirror", "--seed", "3").build()
	require.NoError(t, err)
	assert.Equal(t, 6, life.Grid().Rows())
	assert.Equal(t, 9, life.Grid().Cols())
	assert.Equal(t, oncolife.Mirror, life.Grid().Boundaries()[oncolife.EdgeTop])
	assert.Equal(t, int64(3), life.Config().Seed)

	_, err = parseSimFlags(t, "--right", "sideways").build()
	assert.ErrorIs(t, err, oncolife.ErrInvalidBoundaryMode)

	_, err = parseSimFlags(t, "--scenario", "does-not-exist.yaml").build()
	assert.Error(t, err)
}

func TestRunLoopPrintsEveryGeneration(t *testing.T) {
	life, err := parseSimFlags(t, "--rows", "4", "--cols", "4").build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runLoop(context.Background(), life, console.NewPrinter(&buf, console.ASCIIGlyphs), 3, 0, false))
	assert.Equal(t, 3, life.Generation())
	assert.Equal(t, 4, strings.Count(buf.String(), "gen "))
}

func TestRunLoopCanceled(t *testing.T) {
	life, err := parseSimFlags(t, "--rows", "4", "--cols", "4").build()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err = runLoop(ctx, life, console.NewPrinter(&buf, console.ASCIIGlyphs), 5, 1000, true)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, life.Generation())
}

func TestRunCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "--rows", "3", "--cols", "5", "--demo=false", "--set", "fill_alive=0,fill_cancer=0,fill_cure=0",
		"-n", "2", "--tps", "0", "--quiet", "--stats", "--log", "error"})
	require.NoError(t, rootCmd.Execute())

	frame := "gen 2  alive=0 cancer=0 cure=0  [L:normal R:normal T:normal B:normal]\n.....\n.....\n.....\n"
	require.True(t, strings.HasPrefix(out.String(), frame), out.String())

	table := strings.Split(strings.TrimRight(strings.TrimPrefix(out.String(), frame), "\n"), "\n")
	require.Len(t, table, 4)
	assert.Equal(t, []string{"gen", "dead", "alive", "cancer", "cure"}, strings.Fields(table[0]))
	assert.Equal(t, []string{"2", "15", "0", "0", "0"}, strings.Fields(table[3]))
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "sims:       oncolife, oncolife-gui\n")
	assert.Contains(t, out.String(), "patterns:   beehive, blinker, block, glider, toad\n")
	assert.Contains(t, out.String(), "boundaries: normal, periodic, mirror\n")
}

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oncolife/pkg/sims/oncolife"
)

func sampleGrid(t *testing.T) *oncolife.Grid {
	t.Helper()
	g, err := oncolife.NewGrid(2, 3, oncolife.Uniform(oncolife.Normal))
	require.NoError(t, err)
	require.NoError(t, g.Set(oncolife.Alive(0, 0)))
	require.NoError(t, g.Set(oncolife.Cancer(0, 2, 0.01)))
	require.NoError(t, g.Set(oncolife.Cure(1, 1, 0.1)))
	return g
}

func TestRender(t *testing.T) {
	g := sampleGrid(t)
	assert.Equal(t, "O.X\n.+.\n", Render(g, ASCIIGlyphs))
	assert.Equal(t, "🟩🟥⬜\n🟥🟦🟥\n", Render(g, BlockGlyphs))
}

func TestPrinterFrame(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ASCIIGlyphs)
	require.NoError(t, p.Frame(7, sampleGrid(t)))
	assert.Equal(t, "gen 7  alive=1 cancer=1 cure=1  [L:normal R:normal T:normal B:normal]\nO.X\n.+.\n", buf.String())

	buf.Reset()
	p.SetClear(true)
	p.SetHeader(false)
	require.NoError(t, p.Frame(8, sampleGrid(t)))
	assert.True(t, strings.HasPrefix(buf.String(), clearScreen))
	assert.Equal(t, "O.X\n.+.\n", strings.TrimPrefix(buf.String(), clearScreen))
}

func TestGlyphsByName(t *testing.T) {
	g, err := GlyphsByName("")
	require.NoError(t, err)
	assert.Equal(t, ASCIIGlyphs, g)

	g, err = GlyphsByName("Blocks")
	require.NoError(t, err)
	assert.Equal(t, BlockGlyphs, g)

	_, err = GlyphsByName("braille")
	assert.Error(t, err)
}

func TestWriteHistory(t *testing.T) {
	history := make([]oncolife.Census, 5)
	for i := range history {
		history[i] = oncolife.Census{10 - i, i, 1, 0}
	}
	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, history, 2))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"gen", "dead", "alive", "cancer", "cure"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0", "10", "0", "1", "0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "8", "2", "1", "0"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"4", "6", "4", "1", "0"}, strings.Fields(lines[3]))
}

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
	}
	cells := []uint8{0, 1, 2, 7}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	assert.Equal(t, []byte{
		0, 0, 0, 255,
		0, 255, 0, 255,
		255, 0, 0, 255,
		255, 0, 0, 255,
	}, buf)
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{1, 3}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}

func TestEdgeStrips(t *testing.T) {
	s := EdgeStrips(40, 30, 3)
	assert.Equal(t, image.Rect(0, 0, 3, 30), s[0])
	assert.Equal(t, image.Rect(37, 0, 40, 30), s[1])
	assert.Equal(t, image.Rect(0, 0, 40, 3), s[2])
	assert.Equal(t, image.Rect(0, 27, 40, 30), s[3])

	tiny := EdgeStrips(4, 2, 5)
	assert.Equal(t, 1, tiny[0].Dx())
	assert.Equal(t, 1, tiny[2].Dy())
}

func TestCellAt(t *testing.T) {
	row, col, ok := CellAt(25, 9, 4, 10, 10)
	assert.True(t, ok)
	assert.Equal(t, 2, row)
	assert.Equal(t, 6, col)

	_, _, ok = CellAt(40, 0, 4, 10, 10)
	assert.False(t, ok)
	_, _, ok = CellAt(-1, 0, 4, 10, 10)
	assert.False(t, ok)
	_, _, ok = CellAt(1, 1, 0, 10, 10)
	assert.False(t, ok)
}

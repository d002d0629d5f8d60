package render

import (
	"image"
	"image/color"
)

// fillPaletteRGBA converts cell kinds into RGBA pixels using a palette. Kinds
// past the end of the palette use its last entry. When the palette is empty the
// buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// EdgeStrips returns the screen rectangles of the left, right, top and bottom
// indicator bars drawn around a w*h pixel view, in that order.
func EdgeStrips(w, h, thickness int) [4]image.Rectangle {
	if thickness <= 0 {
		thickness = 1
	}
	if thickness > w/2 {
		thickness = w / 2
	}
	if thickness > h/2 {
		thickness = h / 2
	}
	return [4]image.Rectangle{
		image.Rect(0, 0, thickness, h),
		image.Rect(w-thickness, 0, w, h),
		image.Rect(0, 0, w, thickness),
		image.Rect(0, h-thickness, w, h),
	}
}

// CellAt maps a screen position inside a scaled grid view to (row, col).
func CellAt(x, y, scale, rows, cols int) (int, int, bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col := y/scale, x/scale
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}

package oncolife

import "image/color"

var kindPalette = []color.RGBA{
	KindDead:   {R: 0, G: 0, B: 0, A: 255},
	KindAlive:  {R: 0, G: 255, B: 0, A: 255},
	KindCancer: {R: 255, G: 0, B: 0, A: 255},
	KindCure:   {R: 0, G: 0, B: 255, A: 255},
}

var boundaryColors = []color.RGBA{
	Normal:   {R: 128, G: 128, B: 128, A: 255},
	Periodic: {R: 0, G: 255, B: 0, A: 255},
	Mirror:   {R: 255, G: 136, B: 0, A: 255},
}

// Palette maps each Kind discriminant to its display color.
func (l *Life) Palette() []color.RGBA {
	return kindPalette
}

// KindColor returns the display color for k.
func KindColor(k Kind) color.RGBA {
	if !k.Valid() {
		return kindPalette[KindDead]
	}
	return kindPalette[k]
}

// BoundaryColor returns the indicator color for m.
func BoundaryColor(m BoundaryMode) color.RGBA {
	if int(m) >= len(boundaryColors) {
		return boundaryColors[Normal]
	}
	return boundaryColors[m]
}

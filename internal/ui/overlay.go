//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"oncolife/internal/render"
	"oncolife/pkg/sims/oncolife"
)

type boundarySim interface {
	Grid() *oncolife.Grid
	CycleBoundary(oncolife.Edge) oncolife.BoundaryMode
}

var edgeKeys = [oncolife.NumEdges]ebiten.Key{
	oncolife.EdgeLeft:   ebiten.KeyDigit1,
	oncolife.EdgeRight:  ebiten.KeyDigit2,
	oncolife.EdgeTop:    ebiten.KeyDigit3,
	oncolife.EdgeBottom: ebiten.KeyDigit4,
}

// Overlay draws the boundary-mode indicator bars along the grid edges and
// cycles an edge's mode when its digit key is pressed.
type Overlay struct {
	sim   boundarySim
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for sim. Sims without boundaries get an
// overlay that draws nothing.
func NewOverlay(sim any, scale int) *Overlay {
	o := &Overlay{scale: scale, show: true}
	if bs, ok := sim.(boundarySim); ok {
		o.sim = bs
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the edge and visibility keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.show = !o.show
	}
	if o.sim == nil {
		return
	}
	for e, key := range edgeKeys {
		if inpututil.IsKeyJustPressed(key) {
			m := o.sim.CycleBoundary(oncolife.Edge(e))
			logrus.Infof("%s edge -> %s", oncolife.Edge(e), m)
		}
	}
}

// Draw renders the indicator bars onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.sim == nil {
		return
	}
	g := o.sim.Grid()
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	thickness := scale / 2
	if thickness < 2 {
		thickness = 2
	}
	b := g.Boundaries()
	strips := render.EdgeStrips(g.Cols()*scale, g.Rows()*scale, thickness)
	for e, r := range strips {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		op.ColorScale.ScaleWithColor(oncolife.BoundaryColor(b[e]))
		screen.DrawImage(o.pixel, op)
	}
}

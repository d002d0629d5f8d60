package console

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"oncolife/pkg/core"
	"oncolife/pkg/sims/oncolife"
)

// View draws a Life sim full-screen on a terminal. Each cell is two columns
// wide; a one-cell frame around the grid shows each edge's boundary mode.
type View struct {
	screen tcell.Screen
	life   *oncolife.Life
	seed   int64
	paused bool
	brush  oncolife.Kind
}

// NewView binds life to an initialized screen.
func NewView(s tcell.Screen, life *oncolife.Life, seed int64) *View {
	return &View{screen: s, life: life, seed: seed, brush: oncolife.KindAlive}
}

// Paused reports whether ticks are ignored.
func (v *View) Paused() bool { return v.paused }

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw repaints the frame, grid and status line.
func (v *View) Draw() {
	s := v.screen
	s.Clear()
	g := v.life.Grid()
	rows, cols := g.Rows(), g.Cols()
	b := g.Boundaries()

	edge := func(e oncolife.Edge) tcell.Style {
		return tcell.StyleDefault.Background(rgb(oncolife.BoundaryColor(b[e])))
	}
	for y := 1; y <= rows; y++ {
		s.SetContent(0, y, ' ', nil, edge(oncolife.EdgeLeft))
		s.SetContent(2*cols+1, y, ' ', nil, edge(oncolife.EdgeRight))
	}
	for x := 1; x <= 2*cols; x++ {
		s.SetContent(x, 0, ' ', nil, edge(oncolife.EdgeTop))
		s.SetContent(x, rows+1, ' ', nil, edge(oncolife.EdgeBottom))
	}

	g.Each(func(c oncolife.Cell) {
		style := tcell.StyleDefault.Background(rgb(oncolife.KindColor(c.Kind)))
		x, y := 1+2*c.Coord.Col, 1+c.Coord.Row
		s.SetContent(x, y, ' ', nil, style)
		s.SetContent(x+1, y, ' ', nil, style)
	})

	census := v.life.Census()
	state := "running"
	if v.paused {
		state = "paused"
	}
	status := fmt.Sprintf("gen %d  alive=%d cancer=%d cure=%d  brush=%s  %s",
		v.life.Generation(), census.Of(oncolife.KindAlive), census.Of(oncolife.KindCancer),
		census.Of(oncolife.KindCure), v.brush, state)
	for i, r := range status {
		s.SetContent(i, rows+2, r, nil, tcell.StyleDefault)
	}
	s.Show()
}

// HandleKey applies one key press and reports whether the view should close.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch r := ev.Rune(); r {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.life.Step()
	case 'r':
		v.life.Reset(v.seed)
	case 'c':
		v.life.Clear()
	case 'k':
		v.brush = v.brush.NextLive()
	case '+', '=':
		v.resize(oncolife.SizeStep)
	case '-':
		v.resize(-oncolife.SizeStep)
	case '1', '2', '3', '4':
		e := oncolife.Edge(r - '1')
		logrus.Debugf("%s edge -> %s", e, v.life.CycleBoundary(e))
	}
	return false
}

func (v *View) resize(delta int) {
	if _, err := v.life.ResizeBy(delta); err != nil {
		logrus.Warnf("resize: %v", err)
	}
}

// HandleMouse paints the brush kind with the primary button and Dead with the
// secondary one.
func (v *View) HandleMouse(ev *tcell.EventMouse) {
	var kind oncolife.Kind
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		kind = v.brush
	case ev.Buttons()&tcell.Button2 != 0:
		kind = oncolife.KindDead
	default:
		return
	}
	x, y := ev.Position()
	if x < 1 || y < 1 {
		return
	}
	if err := v.life.Paint(y-1, (x-1)/2, kind); err != nil {
		logrus.Debugf("paint at screen (%d,%d): %v", x, y, err)
	}
}

// Run steps the sim at tps until ctx is done or the user quits.
func (v *View) Run(ctx context.Context, tps int) error {
	if tps <= 0 {
		tps = 10
	}
	step := core.NewFixedStep(tps).Step()
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(step)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventMouse:
				v.HandleMouse(ev)
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.Draw()
		case <-ticker.C:
			if v.paused {
				continue
			}
			v.life.Step()
			v.Draw()
		}
	}
}

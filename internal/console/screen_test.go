package console

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oncolife/pkg/sims/oncolife"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(40, 12)
	t.Cleanup(s.Fini)
	return s
}

func emptyLife(t *testing.T) *oncolife.Life {
	t.Helper()
	cfg := oncolife.DefaultConfig()
	cfg.Width, cfg.Height = 4, 3
	life, err := oncolife.NewWithConfig(cfg)
	require.NoError(t, err)
	return life
}

func background(s tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestViewDraw(t *testing.T) {
	s := simScreen(t)
	life := emptyLife(t)
	require.NoError(t, life.Paint(1, 2, oncolife.KindCancer))
	require.NoError(t, life.SetBoundary(oncolife.EdgeTop, oncolife.Mirror))

	v := NewView(s, life, 1)
	v.Draw()

	assert.Equal(t, rgb(oncolife.KindColor(oncolife.KindCancer)), background(s, 5, 2))
	assert.Equal(t, rgb(oncolife.KindColor(oncolife.KindCancer)), background(s, 6, 2))
	assert.Equal(t, rgb(oncolife.KindColor(oncolife.KindDead)), background(s, 1, 1))
	assert.Equal(t, rgb(oncolife.BoundaryColor(oncolife.Normal)), background(s, 0, 1))
	assert.Equal(t, rgb(oncolife.BoundaryColor(oncolife.Mirror)), background(s, 3, 0))

	r, _, _, _ := s.GetContent(0, 5)
	assert.Equal(t, 'g', r, "status line below the frame")
}

func TestViewHandleKey(t *testing.T) {
	s := simScreen(t)
	life := emptyLife(t)
	v := NewView(s, life, 1)

	key := func(r rune) bool { return v.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)) }

	assert.False(t, key(' '))
	assert.True(t, v.Paused())
	assert.False(t, key('n'))
	assert.Equal(t, 1, life.Generation())
	assert.False(t, key('2'))
	assert.Equal(t, oncolife.Periodic, life.Grid().Boundaries()[oncolife.EdgeRight])
	assert.False(t, key('k'))
	assert.Equal(t, oncolife.KindCancer, v.brush)
	assert.True(t, key('q'))
	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestViewResizeKeys(t *testing.T) {
	s := simScreen(t)
	life := emptyLife(t)
	v := NewView(s, life, 1)

	key := func(r rune) bool { return v.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)) }

	assert.False(t, key('+'))
	assert.Equal(t, oncolife.MinSide, life.Size().W)
	assert.Equal(t, oncolife.MinSide, life.Size().H)
	assert.False(t, key('='))
	assert.Equal(t, oncolife.MinSide+oncolife.SizeStep, life.Size().W)
	assert.False(t, key('-'))
	assert.False(t, key('-'))
	assert.Equal(t, oncolife.MinSide, life.Size().H, "shrinking stops at the minimum side")

	assert.NotPanics(t, v.Draw)
}

func TestViewHandleMouse(t *testing.T) {
	s := simScreen(t)
	life := emptyLife(t)
	v := NewView(s, life, 1)

	v.HandleMouse(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	cell, err := life.Grid().Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, oncolife.KindAlive, cell.Kind)

	v.HandleMouse(tcell.NewEventMouse(3, 3, tcell.Button2, tcell.ModNone))
	cell, _ = life.Grid().Get(2, 1)
	assert.Equal(t, oncolife.KindDead, cell.Kind)

	v.HandleMouse(tcell.NewEventMouse(30, 3, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 0, life.Census().Of(oncolife.KindAlive), "clicks off the grid are ignored")
}

func TestViewRunQuits(t *testing.T) {
	s := simScreen(t)
	v := NewView(s, emptyLife(t), 1)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- v.Run(context.Background(), 1) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("view did not quit")
	}
}

func TestViewRunCanceled(t *testing.T) {
	s := simScreen(t)
	v := NewView(s, emptyLife(t), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, v.Run(ctx, 1), context.Canceled)
}

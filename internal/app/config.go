package app

import (
	"github.com/spf13/pflag"

	"oncolife/pkg/core"
	"oncolife/pkg/sims/oncolife"
)

// Config holds the window parameters for the desktop front-end.
type Config struct {
	Scale int
	TPS   int
	Seed  int64
	Panel int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 8, TPS: 10, Seed: 42, Panel: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Panel, "panel", c.Panel, "width of the control panel in pixels (0 hides it)")
}

const (
	minTPS = 1
	maxTPS = 60
)

// nextTPS moves tps one notch in direction within [minTPS, maxTPS].
func nextTPS(tps, direction int) int {
	step := 1
	if tps >= 10 {
		step = 5
	}
	tps += direction * step
	if tps < minTPS {
		return minTPS
	}
	if tps > maxTPS {
		return maxTPS
	}
	return tps
}

// Brush tracks the kind painted by the left mouse button.
type Brush struct {
	kind oncolife.Kind
}

// NewBrush starts with Alive.
func NewBrush() *Brush { return &Brush{kind: oncolife.KindAlive} }

// Kind returns the selected kind.
func (b *Brush) Kind() oncolife.Kind { return b.kind }

// Next selects the following kind, skipping Dead which the right button paints.
func (b *Brush) Next() oncolife.Kind {
	b.kind = b.kind.NextLive()
	return b.kind
}

// panelMinHeight fits the status block and every rule control.
const panelMinHeight = 420

// WindowSize returns the screen size for a grid of size cells at scale with a
// control panel of the given width to its right.
func WindowSize(size core.Size, scale, panel int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	if panel < 0 {
		panel = 0
	}
	h := size.H * scale
	if panel > 0 && h < panelMinHeight {
		h = panelMinHeight
	}
	return size.W*scale + panel, h
}

// Package console renders grids and population statistics as terminal text.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"oncolife/pkg/sims/oncolife"
)

// Glyphs maps each kind to the string printed for it.
type Glyphs [oncolife.NumKinds]string

var (
	// ASCIIGlyphs prints one byte per cell.
	ASCIIGlyphs = Glyphs{
		oncolife.KindDead:   ".",
		oncolife.KindAlive:  "O",
		oncolife.KindCancer: "X",
		oncolife.KindCure:   "+",
	}
	// BlockGlyphs prints colored squares on terminals with emoji support.
	BlockGlyphs = Glyphs{
		oncolife.KindDead:   "🟥",
		oncolife.KindAlive:  "🟩",
		oncolife.KindCancer: "⬜",
		oncolife.KindCure:   "🟦",
	}
)

// GlyphsByName returns "ascii" or "blocks".
func GlyphsByName(name string) (Glyphs, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ascii":
		return ASCIIGlyphs, nil
	case "blocks", "emoji":
		return BlockGlyphs, nil
	}
	return Glyphs{}, fmt.Errorf("unknown glyph set %q", name)
}

const clearScreen = "\x1b[H\x1b[2J"

// Printer writes one frame per call to Frame.
type Printer struct {
	w      io.Writer
	glyphs Glyphs
	clear  bool
	header bool
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, g Glyphs) *Printer {
	return &Printer{w: w, glyphs: g, header: true}
}

// SetClear toggles the ANSI clear sequence emitted before each frame.
func (p *Printer) SetClear(on bool) { p.clear = on }

// SetHeader toggles the generation/census line above each frame.
func (p *Printer) SetHeader(on bool) { p.header = on }

// Frame prints the grid, optionally preceded by a clear and a header line.
func (p *Printer) Frame(generation int, g *oncolife.Grid) error {
	bw := bufio.NewWriter(p.w)
	if p.clear {
		bw.WriteString(clearScreen)
	}
	if p.header {
		c := g.Census()
		fmt.Fprintf(bw, "gen %d  alive=%d cancer=%d cure=%d  [%v]\n", generation,
			c.Of(oncolife.KindAlive), c.Of(oncolife.KindCancer), c.Of(oncolife.KindCure), g.Boundaries())
	}
	p.writeGrid(bw, g)
	return bw.Flush()
}

func (p *Printer) writeGrid(w *bufio.Writer, g *oncolife.Grid) {
	col := 0
	g.Each(func(c oncolife.Cell) {
		w.WriteString(p.glyph(c.Kind))
		col++
		if col == g.Cols() {
			w.WriteByte('\n')
			col = 0
		}
	})
}

func (p *Printer) glyph(k oncolife.Kind) string {
	if !k.Valid() {
		return "?"
	}
	return p.glyphs[k]
}

// Render returns the grid body as a string without header or clear.
func Render(g *oncolife.Grid, glyphs Glyphs) string {
	var sb strings.Builder
	p := &Printer{glyphs: glyphs}
	bw := bufio.NewWriter(&sb)
	p.writeGrid(bw, g)
	bw.Flush()
	return sb.String()
}

// WriteHistory prints one census row per recorded generation. every > 1
// thins the table to every n-th generation; the last row is always kept.
func WriteHistory(w io.Writer, history []oncolife.Census, every int) error {
	if every < 1 {
		every = 1
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "gen\tdead\talive\tcancer\tcure\t")
	for i, c := range history {
		if i%every != 0 && i != len(history)-1 {
			continue
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t\n", i,
			c.Of(oncolife.KindDead), c.Of(oncolife.KindAlive), c.Of(oncolife.KindCancer), c.Of(oncolife.KindCure))
	}
	return tw.Flush()
}

// Package render draws a solved path on top of a maze grid for console output.
//
// Every path cell that is not the start or a goal is replaced by a marker
// rune ('*' by default); all other cells print unchanged. Colour output,
// when enabled, highlights the marker, the start and the goals with
// github.com/fatih/color regardless of terminal detection.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/mazewalk/gridgraph"
)

// DefaultMarker is drawn on path cells.
const DefaultMarker = '*'

// ErrNilGrid is returned when Overlay is given a nil grid.
var ErrNilGrid = errors.New("render: grid is nil")

// Option configures Overlay.
type Option func(*Options)

// Options holds rendering settings.
type Options struct {
	// Marker replaces path cells other than start and goal.
	Marker rune
	// Color enables ANSI colouring of marker, start and goal cells.
	Color bool
}

// DefaultOptions returns the '*' marker without colour.
func DefaultOptions() Options {
	return Options{Marker: DefaultMarker, Color: false}
}

// WithMarker sets the path marker. The zero rune is ignored.
func WithMarker(r rune) Option {
	return func(o *Options) {
		if r != 0 {
			o.Marker = r
		}
	}
}

// WithColor enables or disables colour output.
func WithColor(enabled bool) Option {
	return func(o *Options) {
		o.Color = enabled
	}
}

// palette maps cell roles to colour printers; nil entries print plain.
type palette struct {
	path, start, goal *color.Color
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{}
	}
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		c.EnableColor()

		return c
	}

	return palette{
		path:  mk(color.FgYellow, color.Bold),
		start: mk(color.FgGreen, color.Bold),
		goal:  mk(color.FgRed, color.Bold),
	}
}

// Overlay writes g to w, one row per line, with the cells of path drawn
// as the marker. path may contain duplicates and cells outside the grid;
// both are harmless.
func Overlay(w io.Writer, g *gridgraph.Grid, path []gridgraph.Coord, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	pal := newPalette(o.Color)

	onPath := make(map[gridgraph.Coord]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}

	bw := bufio.NewWriter(w)
	for y, line := range g.Lines() {
		x := 0
		for _, r := range line {
			c := gridgraph.Coord{X: x, Y: y}
			x++
			_, marked := onPath[c]
			switch {
			case r == gridgraph.Start:
				writeCell(bw, pal.start, r)
			case r == gridgraph.Goal:
				writeCell(bw, pal.goal, r)
			case marked:
				writeCell(bw, pal.path, o.Marker)
			default:
				bw.WriteRune(r)
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}

	return nil
}

// String returns the Overlay output as a string.
func String(g *gridgraph.Grid, path []gridgraph.Coord, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Overlay(&b, g, path, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}

func writeCell(w *bufio.Writer, c *color.Color, r rune) {
	if c == nil {
		w.WriteRune(r)
		return
	}
	w.WriteString(c.Sprint(string(r)))
}

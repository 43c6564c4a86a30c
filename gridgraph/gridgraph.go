package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Cell markers recognised in a maze grid.
const (
	Start rune = 's' // search origin; the first one in row-major order is used
	Goal  rune = 'o' // search terminates on the first goal popped
	Wall  rune = '#' // impassable
)

// MaxRowBytes bounds the length of a single input line accepted by Read.
const MaxRowBytes = 16 << 20

// Coord addresses a cell by column X and row Y.
// It is a comparable value type and is used directly as a map key.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is an immutable view over rows of maze characters.
// Rows are not required to share a length.
type Grid struct {
	rows [][]rune
}

// FromLines builds a Grid with one row per line. The input is copied, so
// later changes to the caller's strings cannot affect the grid.
// An empty argument list yields an empty grid.
func FromLines(lines ...string) *Grid {
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
	}

	return &Grid{rows: rows}
}

// Read parses a grid from r, one row per line. Carriage returns are stripped
// and trailing blank lines are ignored. Returns ErrEmptyGrid if no rows remain.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxRowBytes)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	return FromLines(lines...), nil
}

// Width returns the length of the first row, or 0 for an empty grid.
// Rows below may be shorter or longer.
func (g *Grid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}

	return len(g.rows[0])
}

// MaxWidth returns the length of the longest row, which differs from Width
// only on ragged grids.
func (g *Grid) MaxWidth() int {
	w := 0
	for _, row := range g.rows {
		w = max(w, len(row))
	}

	return w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// InBounds reports whether c addresses an existing cell of its own row.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Y >= 0 && c.Y < len(g.rows) && c.X >= 0 && c.X < len(g.rows[c.Y])
}

// At returns the rune stored at c, and false if c is out of range.
func (g *Grid) At(c Coord) (rune, bool) {
	if !g.InBounds(c) {
		return 0, false
	}

	return g.rows[c.Y][c.X], true
}

// Passable reports whether c is an in-range cell that is not a wall.
func (g *Grid) Passable(c Coord) bool {
	r, ok := g.At(c)

	return ok && r != Wall
}

// Find scans row-major (top to bottom, left to right) for the first cell
// holding marker.
func (g *Grid) Find(marker rune) (Coord, bool) {
	for y, row := range g.rows {
		for x, r := range row {
			if r == marker {
				return Coord{X: x, Y: y}, true
			}
		}
	}

	return Coord{}, false
}

// FindAll returns every cell holding marker, in row-major order.
func (g *Grid) FindAll(marker rune) []Coord {
	var out []Coord
	for y, row := range g.rows {
		for x, r := range row {
			if r == marker {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}

	return out
}

// Lines returns the rows as strings.
func (g *Grid) Lines() []string {
	out := make([]string, len(g.rows))
	for y, row := range g.rows {
		out[y] = string(row)
	}

	return out
}

// CellCount returns the total number of cells across all rows.
func (g *Grid) CellCount() int {
	n := 0
	for _, row := range g.rows {
		n += len(row)
	}

	return n
}

// Package plot renders point sets onto a fixed-size rune grid suitable
// for a terminal.
package plot

import (
	"strings"

	dw "github.com/mattn/go-runewidth"

	"github.com/siiir/points"
)

// spacer occupies the cell shadowed by a double-width marker.
const spacer = rune(0)

// Canvas is a rectangular rune grid. Cell (0, 0) is the top-left of
// the rendered output and y grows downward.
type Canvas struct {
	cols, rows int
	cells      [][]rune
}

// NewCanvas returns an empty cols x rows canvas.
func NewCanvas(cols, rows int) *Canvas {
	cells := make([][]rune, rows)
	for y := range cells {
		row := make([]rune, cols)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &Canvas{cols: cols, rows: rows, cells: cells}
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int { return c.rows }

// Mark plots p with the given marker, truncating the coordinates to
// cell indices. Points outside the canvas are ignored. A double-width
// marker occupies two cells and is dropped when it would cross the
// right edge; zero-width runes are never written.
func (c *Canvas) Mark(p points.Point2D[float64], marker rune) bool {
	// Bounds are checked in float space before converting: int(NaN)
	// and out-of-range conversions are implementation-defined and
	// must never reach the cell index.
	if !(p.X >= 0 && p.X < float64(c.cols) && p.Y >= 0 && p.Y < float64(c.rows)) {
		return false
	}
	x, y := int(p.X), int(p.Y)
	w := dw.RuneWidth(marker)
	if w == 0 || x+w > c.cols {
		return false
	}
	c.cells[y][x] = marker
	if w == 2 {
		c.cells[y][x+1] = spacer
	}
	return true
}

// MarkAll plots every point in ps and returns how many landed on the
// canvas.
func (c *Canvas) MarkAll(ps []points.Point2D[float64], marker rune) int {
	n := 0
	for _, p := range ps {
		if c.Mark(p, marker) {
			n++
		}
	}
	return n
}

// String renders the grid as newline-joined rows. Cells shadowed by a
// double-width marker are omitted so columns stay aligned.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.cols + 1) * c.rows)
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range row {
			if r == spacer {
				continue
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

package tui

import (
	"strings"

	"octahedron-viewer/internal/raster"
)

// Canvas is a grid of terminal cells that wireframe segments are plotted on.
type Canvas struct {
	cols, rows int
	cells      []rune
}

// NewCanvas creates a blank canvas. Non-positive sizes give an empty canvas.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &Canvas{cols: cols, rows: rows, cells: make([]rune, cols*rows)}
	for i := range c.cells {
		c.cells[i] = ' '
	}
	return c
}

func (c *Canvas) Cols() int { return c.cols }
func (c *Canvas) Rows() int { return c.rows }

// At returns the rune at (col, row), or 0 outside the canvas.
func (c *Canvas) At(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0
	}
	return c.cells[row*c.cols+col]
}

// Set writes r at (col, row); writes outside the canvas are clipped.
func (c *Canvas) Set(col, row int, r rune) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = r
}

// Line plots a Bresenham line between two cells using a glyph that follows
// the line's slope.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	glyph := slopeGlyph(x1-x0, y1-y0)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, glyph)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Plot maps viewport-space segments onto the canvas and draws them, then
// marks the segment end points.
func (c *Canvas) Plot(segs []raster.Segment, viewW, viewH int) {
	if viewW <= 0 || viewH <= 0 {
		return
	}
	cell := func(x, y int) (int, int) {
		return x * c.cols / viewW, y * c.rows / viewH
	}
	for _, s := range segs {
		x0, y0 := cell(s.X0, s.Y0)
		x1, y1 := cell(s.X1, s.Y1)
		c.Line(x0, y0, x1, y1)
	}
	for _, s := range segs {
		x0, y0 := cell(s.X0, s.Y0)
		x1, y1 := cell(s.X1, s.Y1)
		c.Set(x0, y0, 'o')
		c.Set(x1, y1, 'o')
	}
}

// String joins the rows with newlines.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.cols + 1) * c.rows)
	for r := 0; r < c.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(c.cells[r*c.cols : (r+1)*c.cols]))
	}
	return b.String()
}

func slopeGlyph(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return 'o'
	case abs(dy)*2 < abs(dx):
		return '-'
	case abs(dx)*2 < abs(dy):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

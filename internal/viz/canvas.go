package viz

import "strings"

// Braille cells pack a 2x4 dot grid per character, so a WxH canvas
// has (W*2)x(H*4) addressable dots. Dot bits relative to U+2800:
//
//	1  8
//	2  10
//	4  20
//	40 80
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a braille dot canvas sized in terminal cells.
type Canvas struct {
	Cols, Rows int
	cells      []rune
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, cells: make([]rune, cols*rows)}
	c.Clear()
	return c
}

// DotWidth and DotHeight are the canvas dimensions in dots.
func (c *Canvas) DotWidth() int  { return c.Cols * 2 }
func (c *Canvas) DotHeight() int { return c.Rows * 4 }

// Set turns on the dot at (x, y) in dot coordinates. Out-of-range
// dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return
	}
	c.cells[row*c.Cols+col] |= dotBits[y%4][x%2]
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = brailleBase
	}
}

// Dot reports whether the dot at (x, y) is set.
func (c *Canvas) Dot(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return false
	}
	return c.cells[row*c.Cols+col]&dotBits[y%4][x%2] != 0
}

// Cell returns the braille rune at a cell position, for export.
func (c *Canvas) Cell(col, row int) rune {
	return c.cells[row*c.Cols+col]
}

// Line draws a line between two dot coordinates with Bresenham's
// algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline joins consecutive dot coordinates with line segments.
func (c *Canvas) Polyline(pts [][2]int) {
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.Cols + 1) * c.Rows)
	for row := 0; row < c.Rows; row++ {
		b.WriteString(string(c.cells[row*c.Cols : (row+1)*c.Cols]))
		b.WriteByte('\n')
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

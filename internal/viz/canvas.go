package viz

import (
	"strings"

	"github.com/san-kum/algoviz/internal/dataset"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille pixel grid. Every cell also carries the role it was
// last drawn with, the highest role winning, and may hold a text label in
// place of its dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Tags          [][]dataset.Color
	labels        [][]bool
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Tags:   make([][]dataset.Color, h),
		labels: make([][]bool, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Tags[i] = make([]dataset.Color, w)
		c.labels[i] = make([]bool, w)
	}
	c.Clear()
	return c
}

// Set sets a pixel at (x, y) in sub-pixel coordinates and tags its cell.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int, tag dataset.Color) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height || c.labels[row][col] {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if tag > c.Tags[row][col] {
		c.Tags[row][col] = tag
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Tags[i][j] = dataset.Default
			c.labels[i][j] = false
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, tag dataset.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, tag)
		if x0 == x1 && y0 == y1 {
			break
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

// Label writes text over whole cells starting at (col, row). Text running
// past the right edge is cut.
func (c *Canvas) Label(col, row int, text string, tag dataset.Color) {
	if row < 0 || row >= c.Height {
		return
	}
	for i, r := range []rune(text) {
		x := col + i
		if x < 0 || x >= c.Width {
			continue
		}
		c.Grid[row][x] = r
		c.Tags[row][x] = tag
		c.labels[row][x] = true
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render is String with every run of equally tagged cells colored by the
// theme. Labels are bold.
func (c *Canvas) Render(t Theme) string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Tags[i][j] == c.Tags[i][start] && c.labels[i][j] == c.labels[i][start] {
				continue
			}
			style := t.Style(c.Tags[i][start]).Bold(c.labels[i][start])
			b.WriteString(style.Render(string(row[start:j])))
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

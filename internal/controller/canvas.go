package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBits maps a dot position inside a 2×4 cell to its bit in U+2800..U+28FF.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// canvas is a braille dot grid: every terminal cell holds 2×4 dots, giving
// square-ish pixels. Text labels overlay whole cells.
type canvas struct {
	cols   int
	rows   int
	dots   []uint8
	colors []lipgloss.Color
	text   []rune
}

func newCanvas(cols, rows int) *canvas {
	n := cols * rows

	return &canvas{
		cols:   cols,
		rows:   rows,
		dots:   make([]uint8, n),
		colors: make([]lipgloss.Color, n),
		text:   make([]rune, n),
	}
}

// pixels returns the dot resolution.
func (c *canvas) pixels() (int, int) {
	return c.cols * 2, c.rows * 4
}

func (c *canvas) set(px, py int, color lipgloss.Color) {
	if px < 0 || py < 0 || px >= c.cols*2 || py >= c.rows*4 {
		return
	}

	idx := (py/4)*c.cols + px/2
	c.dots[idx] |= brailleBits[py%4][px%2]
	c.colors[idx] = color
}

// line draws a segment with Bresenham's algorithm.
func (c *canvas) line(x0, y0, x1, y1 int, color lipgloss.Color) {
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
		c.set(x0, y0, color)

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

// label writes text starting at the cell containing the dot (px, py).
func (c *canvas) label(px, py int, text string, color lipgloss.Color) {
	col, row := px/2, py/4
	if row < 0 || row >= c.rows {
		return
	}

	for _, r := range text {
		if col >= 0 && col < c.cols {
			idx := row*c.cols + col
			c.text[idx] = r
			c.colors[idx] = color
		}

		col++
	}
}

func (c *canvas) cell(idx int) rune {
	if c.text[idx] != 0 {
		return c.text[idx]
	}

	if c.dots[idx] == 0 {
		return ' '
	}

	return rune(0x2800 + int(c.dots[idx]))
}

// String renders the grid, styling runs of equally coloured cells together.
func (c *canvas) String() string {
	var sb strings.Builder

	for row := range c.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}

		var run strings.Builder

		var runColor lipgloss.Color

		flush := func() {
			if run.Len() == 0 {
				return
			}

			if runColor == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
			}

			run.Reset()
		}

		for col := range c.cols {
			idx := row*c.cols + col
			r := c.cell(idx)

			color := c.colors[idx]
			if r == ' ' {
				color = ""
			}

			if color != runColor {
				flush()
				runColor = color
			}

			run.WriteRune(r)
		}

		flush()
	}

	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

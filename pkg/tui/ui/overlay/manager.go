// Package overlay composes panels over a rendered terminal view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement aligns a foreground inside the screen. Width and Height, when
// set, fix the foreground box instead of measuring it.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int
}

// Compose paints foreground over a width x height background, aligned by
// placement. Background cells outside the foreground box are kept.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	c := newCanvas(background, width, height)
	box := c.measure(foreground, placement.Width, placement.Height)
	if box.empty() {
		return c.String()
	}
	box.x = align(placement.Horizontal, width, box.w, placement.MarginX)
	box.y = align(placement.Vertical, height, box.h, placement.MarginY)
	return c.paint(box).String()
}

// ComposeAt paints foreground with its top left cell at x, y, the
// coordinates an anchored placement computes. A foreground running past the
// right edge is shifted left; rows past the bottom are dropped.
func ComposeAt(background string, width, height int, foreground string, x, y int) string {
	c := newCanvas(background, width, height)
	box := c.measure(foreground, 0, 0)
	if box.empty() {
		return c.String()
	}
	box.x = clamp(x, 0, width-box.w)
	box.y = y
	return c.paint(box).String()
}

// canvas is a background cut to an exact number of rows, each padded or
// cut to the screen width.
type canvas struct {
	rows  []string
	width int
}

func newCanvas(view string, width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	rows := strings.Split(view, "\n")
	if len(rows) > height {
		// A view taller than the screen keeps its bottom rows.
		rows = rows[len(rows)-height:]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	for i := range rows {
		rows[i] = fit(rows[i], width)
	}
	return &canvas{rows: rows, width: width}
}

func (c *canvas) String() string { return strings.Join(c.rows, "\n") }

// box is a foreground with its size and position.
type box struct {
	lines      []string
	x, y, w, h int
}

func (b box) empty() bool { return b.w <= 0 || b.h <= 0 }

// measure sizes foreground, honoring fixed sizes, and never larger than the
// canvas.
func (c *canvas) measure(foreground string, w, h int) box {
	if foreground == "" {
		return box{}
	}
	lines := strings.Split(foreground, "\n")
	if w <= 0 {
		for _, l := range lines {
			w = max(w, ansi.StringWidth(l))
		}
	}
	if h <= 0 {
		h = len(lines)
	}
	return box{lines: lines, w: min(w, c.width), h: min(h, len(c.rows))}
}

func (c *canvas) paint(b box) *canvas {
	for i := 0; i < b.h; i++ {
		y := b.y + i
		if y < 0 || y >= len(c.rows) {
			continue
		}
		line := ""
		if i < len(b.lines) {
			line = b.lines[i]
		}
		row := c.rows[y]
		c.rows[y] = ansi.Cut(row, 0, b.x) + fit(line, b.w) + ansi.Cut(row, b.x+b.w, c.width)
	}
	return c
}

// fit pads or cuts s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	n := ansi.StringWidth(s)
	switch {
	case n > width:
		return ansi.Cut(s, 0, width)
	case n < width:
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// align positions size cells inside total. Margins apply at the edges;
// anything between the edges centers.
func align(pos lipgloss.Position, total, size, margin int) int {
	var at int
	switch pos {
	case lipgloss.Left: // also lipgloss.Top
		at = margin
	case lipgloss.Right: // also lipgloss.Bottom
		at = total - size - margin
	default:
		at = (total - size) / 2
	}
	return clamp(at, 0, total-size)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/geom"
	"covalent/internal/render"
)

type cell struct {
	r    rune
	fg   color.Color
	bg   color.Color
	bold bool
}

// termSurface rasterizes draw calls onto a grid of terminal cells. Every
// cell stands for a cellW x cellH block of workspace pixels and is sampled
// at its center.
type termSurface struct {
	cols, rows   int
	cellW, cellH float64
	cells        [][]cell
}

func newTermSurface(cols, rows int, cellW, cellH float64) *termSurface {
	cols, rows = max(cols, 1), max(rows, 1)
	cells := make([][]cell, rows)
	for y := range cells {
		cells[y] = make([]cell, cols)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &termSurface{cols: cols, rows: rows, cellW: cellW, cellH: cellH, cells: cells}
}

func (s *termSurface) toCell(p r2.Vec) (int, int) {
	return int(math.Floor(p.X / s.cellW)), int(math.Floor(p.Y / s.cellH))
}

func (s *termSurface) center(x, y int) r2.Vec {
	return r2.Vec{X: (float64(x) + 0.5) * s.cellW, Y: (float64(y) + 0.5) * s.cellH}
}

func (s *termSurface) isValidPos(x, y int) bool {
	return x >= 0 && y >= 0 && y < s.rows && x < s.cols
}

func (s *termSurface) at(x, y int) *cell {
	if !s.isValidPos(x, y) {
		return nil
	}
	return &s.cells[y][x]
}

// Circle draws discs smaller than a cell as one glyph. Larger discs paint
// the background of every covered cell; their outline is dotted.
func (s *termSurface) Circle(c r2.Vec, radius float64, st render.Style) {
	if radius < s.cellW {
		cx, cy := s.toCell(c)
		target := s.at(cx, cy)
		if target == nil {
			return
		}
		if st.Filled() {
			target.r = '●'
			target.fg = st.Color
		} else if target.r == ' ' {
			target.r = '○'
			target.fg = st.Color
		}
		return
	}

	inside := func(x, y int) bool {
		return geom.Distance(s.center(x, y), c) <= radius
	}
	x0, y0 := s.toCell(r2.Vec{X: c.X - radius, Y: c.Y - radius})
	x1, y1 := s.toCell(r2.Vec{X: c.X + radius, Y: c.Y + radius})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			target := s.at(x, y)
			if target == nil || !inside(x, y) {
				continue
			}
			if st.Filled() {
				target.bg = st.Color
				continue
			}
			rim := !inside(x-1, y) || !inside(x+1, y) || !inside(x, y-1) || !inside(x, y+1)
			if rim && target.r == ' ' {
				target.r = '·'
				target.fg = st.Color
			}
		}
	}
}

// Line steps along the segment in half-cell increments.
func (s *termSurface) Line(a, b r2.Vec, c color.Color, _ float64) {
	d := r2.Sub(b, a)
	glyph := lineGlyph(d.X/s.cellW, d.Y/s.cellH)
	step := math.Min(s.cellW, s.cellH) / 2
	n := int(math.Ceil(r2.Norm(d)/step)) + 1
	for i := 0; i < n; i++ {
		t := float64(i) / float64(max(n-1, 1))
		x, y := s.toCell(r2.Add(a, r2.Scale(t, d)))
		if target := s.at(x, y); target != nil {
			target.r = glyph
			target.fg = c
		}
	}
}

func lineGlyph(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay <= ax*0.4:
		return '─'
	case ax <= ay*0.4:
		return '│'
	case dx*dy > 0:
		return '╲'
	default:
		return '╱'
	}
}

// Rect fills every cell whose center is inside box. Outlines are only drawn
// for boxes at least three cells in each direction.
func (s *termSurface) Rect(box r2.Box, st render.Style) {
	x0, x1 := span(box.Min.X, box.Max.X, s.cellW)
	y0, y1 := span(box.Min.Y, box.Max.Y, s.cellH)
	if x0 > x1 || y0 > y1 {
		return
	}

	if st.Filled() {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if target := s.at(x, y); target != nil {
					target.bg = st.Color
				}
			}
		}
		return
	}

	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	put := func(x, y int, r rune) {
		if target := s.at(x, y); target != nil {
			target.r = r
			target.fg = st.Color
		}
	}
	for x := x0 + 1; x < x1; x++ {
		put(x, y0, '─')
		put(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		put(x0, y, '│')
		put(x1, y, '│')
	}
	put(x0, y0, '┌')
	put(x1, y0, '┐')
	put(x0, y1, '└')
	put(x1, y1, '┘')
}

// span returns the first and last cell index whose center lies in [lo, hi).
func span(lo, hi, size float64) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size-0.5)) - 1
	return first, last
}

// Text writes s centered on anchor, or starting at it for instructions.
func (s *termSurface) Text(text string, anchor r2.Vec, role render.FontRole) {
	runes := []rune(text)
	x, y := s.toCell(anchor)
	if role != render.Instruction {
		x -= len(runes) / 2
	}
	for i, r := range runes {
		target := s.at(x+i, y)
		if target == nil {
			continue
		}
		target.r = r
		target.fg = nil
		if target.bg != nil {
			target.fg = render.Black
		}
		target.bold = role == render.Heading
	}
}

// Plain returns the grid without styling.
func (s *termSurface) Plain() []string {
	lines := make([]string, s.rows)
	for y, row := range s.cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.r)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// Render returns the grid with colors, one styled run per change of style.
func (s *termSurface) Render() []string {
	lines := make([]string, s.rows)
	for y, row := range s.cells {
		var b strings.Builder
		var run strings.Builder
		runStyle := row[0]
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(cellStyle(runStyle).Render(run.String()))
				run.Reset()
			}
		}
		for _, c := range row {
			if !sameStyle(c, runStyle) {
				flush()
				runStyle = c
			}
			run.WriteRune(c.r)
		}
		flush()
		lines[y] = b.String()
	}
	return lines
}

func sameStyle(a, b cell) bool {
	return hexColor(a.fg) == hexColor(b.fg) && hexColor(a.bg) == hexColor(b.bg) && a.bold == b.bold
}

func cellStyle(c cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.fg != nil {
		style = style.Foreground(lipgloss.Color(hexColor(c.fg)))
	}
	if c.bg != nil {
		style = style.Background(lipgloss.Color(hexColor(c.bg)))
	}
	if c.bold {
		style = style.Bold(true)
	}
	return style
}

func hexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

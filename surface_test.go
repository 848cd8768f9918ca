package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/render"
)

func TestSpan(t *testing.T) {
	first, last := span(20, 60, 8)
	assert.Equal(t, 2, first) // center 20
	assert.Equal(t, 6, last)  // center 52
	first, last = span(20, 60, 20)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, last)
}

func TestTermSurfaceSmallCircle(t *testing.T) {
	s := newTermSurface(10, 5, 8, 20)
	s.Circle(r2.Vec{X: 20, Y: 30}, 6, render.Fill(render.Blue))
	s.Circle(r2.Vec{X: 20, Y: 30}, 6, render.Stroke(render.Black, 1))
	assert.Equal(t, '●', s.cells[1][2].r)
	assert.Equal(t, render.Blue, s.cells[1][2].fg)

	s.Circle(r2.Vec{X: 60, Y: 30}, 6, render.Stroke(render.Black, 1))
	assert.Equal(t, '○', s.cells[1][7].r)

	// off-grid draws are dropped
	s.Circle(r2.Vec{X: -50, Y: -50}, 6, render.Fill(render.Red))
}

func TestTermSurfaceDisc(t *testing.T) {
	s := newTermSurface(20, 7, 8, 20)
	c := r2.Vec{X: 80, Y: 70}
	s.Circle(c, 30, render.Fill(render.LightGray))
	s.Circle(c, 30, render.Stroke(render.Black, 2))

	assert.Equal(t, render.LightGray, s.cells[3][10].bg)
	assert.Equal(t, ' ', s.cells[3][10].r, "interior is not outlined")
	assert.Equal(t, render.LightGray, s.cells[2][10].bg)
	assert.Nil(t, s.cells[3][1].bg)
	assert.Nil(t, s.cells[0][10].bg)
	assert.Equal(t, '·', s.cells[3][6].r, "leftmost covered cell is on the rim")
}

func TestTermSurfaceRect(t *testing.T) {
	s := newTermSurface(12, 6, 8, 20)
	box := r2.Box{Min: r2.Vec{X: 8, Y: 20}, Max: r2.Vec{X: 48, Y: 100}}
	s.Rect(box, render.Fill(render.Gray))
	s.Rect(box, render.Stroke(render.Black, 1))

	assert.Equal(t, render.Gray, s.cells[1][1].bg)
	assert.Equal(t, render.Gray, s.cells[4][5].bg)
	assert.Nil(t, s.cells[5][5].bg)
	assert.Nil(t, s.cells[1][6].bg)

	plain := s.Plain()
	assert.Equal(t, " ┌───┐", plain[1])
	assert.Equal(t, " │   │", plain[2])
	assert.Equal(t, " └───┘", plain[4])

	// two rows high: filled but not outlined
	s = newTermSurface(12, 6, 8, 20)
	s.Rect(r2.Box{Min: r2.Vec{X: 8, Y: 20}, Max: r2.Vec{X: 48, Y: 60}}, render.Stroke(render.Black, 1))
	assert.Equal(t, "", s.Plain()[1])
}

func TestTermSurfaceLine(t *testing.T) {
	s := newTermSurface(12, 4, 8, 20)
	s.Line(r2.Vec{X: 4, Y: 30}, r2.Vec{X: 84, Y: 30}, render.Purple, 3)
	assert.Equal(t, "───────────", s.Plain()[1])
	assert.Equal(t, render.Purple, s.cells[1][5].fg)

	assert.Equal(t, '│', lineGlyph(0, 3))
	assert.Equal(t, '─', lineGlyph(-4, 1))
	assert.Equal(t, '╲', lineGlyph(2, 2))
	assert.Equal(t, '╱', lineGlyph(2, -2))
}

func TestTermSurfaceText(t *testing.T) {
	s := newTermSurface(20, 3, 8, 20)
	s.Rect(r2.Box{Min: r2.Vec{X: 0, Y: 0}, Max: r2.Vec{X: 160, Y: 20}}, render.Fill(render.Gray))
	s.Text("Cl", r2.Vec{X: 80, Y: 10}, render.Heading)
	s.Text("drag", r2.Vec{X: 8, Y: 30}, render.Instruction)

	plain := s.Plain()
	assert.Equal(t, "         Cl", plain[0])
	assert.Equal(t, " drag", plain[1])
	assert.True(t, s.cells[0][9].bold)
	assert.Equal(t, render.Black, s.cells[0][9].fg)
	assert.Nil(t, s.cells[1][1].fg)

	lines := s.Render()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "drag")
}

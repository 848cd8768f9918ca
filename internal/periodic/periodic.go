// Package periodic is the picker's lookup table: the first twenty elements
// with their position in the table and a simplified valence count, plus the
// mapping from table position to pixel rectangles.
package periodic

import "gonum.org/v1/gonum/spatial/r2"

// Element is one picker entry.
type Element struct {
	Symbol  string
	Group   int // column, 1-18
	Period  int // row, 1-4
	Valence int
}

// Table lists the elements shown in the picker.
var Table = []Element{
	{"H", 1, 1, 1},
	{"He", 18, 1, 2},
	{"Li", 1, 2, 1},
	{"Be", 2, 2, 2},
	{"B", 13, 2, 3},
	{"C", 14, 2, 4},
	{"N", 15, 2, 5},
	{"O", 16, 2, 6},
	{"F", 17, 2, 7},
	{"Ne", 18, 2, 8},
	{"Na", 1, 3, 1},
	{"Mg", 2, 3, 2},
	{"Al", 13, 3, 3},
	{"Si", 14, 3, 4},
	{"P", 15, 3, 5},
	{"S", 16, 3, 6},
	{"Cl", 17, 3, 7},
	{"Ar", 18, 3, 8},
	{"K", 1, 4, 1},
	{"Ca", 2, 4, 2},
}

const (
	Groups  = 18
	Periods = 4
)

// Lookup finds an element by symbol.
func Lookup(symbol string) (Element, bool) {
	for _, e := range Table {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return Element{}, false
}

// Layout maps table positions to pixels.
type Layout struct {
	Origin   r2.Vec
	CellSize float64
	Padding  float64 // margin of the background panel around the cells
}

// DefaultLayout matches the picker drawn in the top-left of the workspace.
var DefaultLayout = Layout{
	Origin:   r2.Vec{X: 20, Y: 20},
	CellSize: 40,
	Padding:  10,
}

// Fit shrinks the cells so the panel is no wider than width. Cells never
// grow and never get smaller than minCell.
func (l Layout) Fit(width, minCell float64) Layout {
	cell := (width - l.Origin.X - l.Padding) / Groups
	if cell < l.CellSize {
		l.CellSize = max(cell, minCell)
	}
	return l
}

// CellBox returns the pixel rectangle of a table position.
func (l Layout) CellBox(group, period int) r2.Box {
	x := l.Origin.X + float64(group-1)*l.CellSize
	y := l.Origin.Y + float64(period-1)*l.CellSize
	return r2.Box{
		Min: r2.Vec{X: x, Y: y},
		Max: r2.Vec{X: x + l.CellSize, Y: y + l.CellSize},
	}
}

// Bounds is the background panel behind all cells.
func (l Layout) Bounds() r2.Box {
	return r2.Box{
		Min: r2.Vec{X: l.Origin.X - l.Padding, Y: l.Origin.Y - l.Padding},
		Max: r2.Vec{
			X: l.Origin.X + Groups*l.CellSize + l.Padding,
			Y: l.Origin.Y + Periods*l.CellSize + l.Padding,
		},
	}
}

// ElementAt returns the element whose cell contains p. Cells are half-open
// so a point on a shared edge belongs to the right/lower cell.
func (l Layout) ElementAt(p r2.Vec) (Element, bool) {
	for _, e := range Table {
		b := l.CellBox(e.Group, e.Period)
		if p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y {
			return e, true
		}
	}
	return Element{}, false
}

// Package render turns workspace state into primitive draw calls. It knows
// nothing about pixels or terminals; a Surface does the rasterizing.
package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// FontRole picks a text face. Label and Heading text is centered on its
// anchor; Instruction text starts at its anchor.
type FontRole int

const (
	Label FontRole = iota
	Heading
	Instruction
)

func (r FontRole) String() string {
	switch r {
	case Label:
		return "label"
	case Heading:
		return "heading"
	case Instruction:
		return "instruction"
	}
	return "unknown"
}

// Style is a fill, or an outline when StrokeWidth is positive.
type Style struct {
	Color       color.Color
	StrokeWidth float64
}

func Fill(c color.Color) Style { return Style{Color: c} }

func Stroke(c color.Color, width float64) Style {
	return Style{Color: c, StrokeWidth: width}
}

// Filled reports whether the style paints the interior.
func (s Style) Filled() bool { return s.StrokeWidth <= 0 }

// Surface receives draw calls in painter's order.
type Surface interface {
	Circle(center r2.Vec, radius float64, st Style)
	Line(a, b r2.Vec, c color.Color, width float64)
	Rect(box r2.Box, st Style)
	Text(s string, anchor r2.Vec, role FontRole)
}

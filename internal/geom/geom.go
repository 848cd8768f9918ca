// Package geom holds the point math used to place electron slots around an
// element token. It has no knowledge of tokens, input or rendering.
//
// Coordinates are backend pixels with y growing downward. Angles given in
// radians rotate counter-clockwise in the usual maths sense, which appears
// clockwise on screen.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Side is the perimeter position of a slot before any rotation.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides lists the perimeter positions in generation order.
var Sides = [...]Side{Top, Right, Bottom, Left}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "unknown"
}

// RotatePoint rotates p about center by angle radians.
func RotatePoint(center, p r2.Vec, angle float64) r2.Vec {
	return r2.Rotate(p, angle, center)
}

// SideBaseOffset returns the unrotated offset of side from a center at
// distance radius.
func SideBaseOffset(side Side, radius float64) r2.Vec {
	switch side {
	case Top:
		return r2.Vec{X: 0, Y: -radius}
	case Right:
		return r2.Vec{X: radius, Y: 0}
	case Bottom:
		return r2.Vec{X: 0, Y: radius}
	default:
		return r2.Vec{X: -radius, Y: 0}
	}
}

// SideBaseAngleDegrees is the screen angle a side points at with no rotation.
func SideBaseAngleDegrees(side Side) float64 {
	switch side {
	case Top:
		return -90
	case Right:
		return 0
	case Bottom:
		return 90
	default:
		return 180
	}
}

// PerimeterPoint is the rotated position of side on a circle of radius
// around center, with the whole circle turned by rotationDegrees.
func PerimeterPoint(center r2.Vec, side Side, radius, rotationDegrees float64) r2.Vec {
	base := r2.Add(center, SideBaseOffset(side, radius))
	return RotatePoint(center, base, Radians(rotationDegrees))
}

// AngleDegrees is the screen angle of the direction from -> to.
func AngleDegrees(from, to r2.Vec) float64 {
	d := r2.Sub(to, from)
	return Degrees(math.Atan2(d.Y, d.X))
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }

func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Distance is the Euclidean distance between a and b.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

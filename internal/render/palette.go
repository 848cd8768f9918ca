package render

import "image/color"

var (
	White     = color.RGBA{255, 255, 255, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	Gray      = color.RGBA{200, 200, 200, 255}
	LightGray = color.RGBA{230, 230, 230, 255}
	Blue      = color.RGBA{100, 100, 255, 255}
	Red       = color.RGBA{255, 100, 100, 255}
	Green     = color.RGBA{100, 255, 100, 255}
	Yellow    = color.RGBA{255, 255, 100, 255}
	DarkBlue  = color.RGBA{0, 0, 150, 255}
	Purple    = color.RGBA{180, 100, 240, 255}
)

// Background is the workspace clear color.
var Background = White

const (
	pairedDotRadius = 6.0
	singleDotRadius = 8.0
	bondWidth       = 3.0
	bodyStrokeWidth = 2.0
)

package main

import (
	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/interact"
	"covalent/internal/workspace"
)

type model struct {
	width          int
	height         int
	cursorX        int
	cursorY        int
	keyboardActive bool // the pointer was last driven by keys
	keyHeld        bool // space/enter primary press in progress
	graph          *workspace.Graph
	ctl            *interact.Controller
	history        *history
	mode           Mode
	help           bool
	helpScroll     int
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
	config         *Config
}

type Action struct {
	Type ActionType
	Data interface{}
}

type PlaceData struct {
	State workspace.TokenState
}

type RemoveData struct {
	State workspace.TokenState
	Bonds []workspace.Bond
}

type BondData struct {
	Bond       workspace.Bond
	RotA, RotB float64 // rotations before alignment
}

type BreakData struct {
	Bond workspace.Bond
}

type MoveData struct {
	ID       workspace.TokenID
	From, To r2.Vec
	Order    int // draw position before the move
}

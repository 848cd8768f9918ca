package interact

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

type EventType int

const (
	Press EventType = iota
	Release
	Move
	Quit
)

type Button int

const (
	Primary Button = iota
	Secondary
)

// Event is one discrete pointer event in backend pixels.
type Event struct {
	Type   EventType
	Button Button
	Pos    r2.Vec
	// Modifier turns a primary press into the secondary action.
	Modifier bool
}

func (e Event) secondary() bool {
	return e.Button == Secondary || (e.Button == Primary && e.Modifier)
}

func (e Event) String() string {
	names := [...]string{"press", "release", "move", "quit"}
	name := "unknown"
	if int(e.Type) < len(names) && e.Type >= 0 {
		name = names[e.Type]
	}
	return fmt.Sprintf("%s(%d) at %.0f,%.0f", name, e.Button, e.Pos.X, e.Pos.Y)
}

// State is the gesture the controller is in.
type State int

const (
	Idle State = iota
	DraggingBond
	DraggingToken
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DraggingBond:
		return "bond"
	case DraggingToken:
		return "move"
	}
	return "unknown"
}

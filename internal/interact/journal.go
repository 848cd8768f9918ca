package interact

import (
	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/workspace"
)

// Journal is told about every change the controller makes to the graph.
type Journal interface {
	Placed(st workspace.TokenState)
	Removed(st workspace.TokenState, bonds []workspace.Bond)
	// Bonded carries the rotations of b.A's and b.B's tokens before the
	// bond aligned them.
	Bonded(b workspace.Bond, rotA, rotB float64)
	Broken(b workspace.Bond)
	// Moved carries the draw position the token had before the gesture
	// brought it to the front.
	Moved(id workspace.TokenID, from, to r2.Vec, order int)
}

type noJournal struct{}

func (noJournal) Placed(workspace.TokenState) {}
func (noJournal) Removed(workspace.TokenState, []workspace.Bond) {}
func (noJournal) Bonded(workspace.Bond, float64, float64) {}
func (noJournal) Broken(workspace.Bond) {}
func (noJournal) Moved(workspace.TokenID, r2.Vec, r2.Vec, int) {}

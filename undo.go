package main

import (
	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/logutil"
	"covalent/internal/workspace"
)

// history records controller changes as undoable actions.
type history struct {
	undoStack []Action
	redoStack []Action
}

func newHistory() *history {
	return &history{
		undoStack: []Action{},
		redoStack: []Action{},
	}
}

func (h *history) record(actionType ActionType, data interface{}) {
	h.undoStack = append(h.undoStack, Action{Type: actionType, Data: data})
	h.redoStack = h.redoStack[:0]
}

func (h *history) Placed(st workspace.TokenState) {
	h.record(ActionPlace, PlaceData{State: st})
}

func (h *history) Removed(st workspace.TokenState, bonds []workspace.Bond) {
	h.record(ActionRemove, RemoveData{State: st, Bonds: bonds})
}

func (h *history) Bonded(b workspace.Bond, rotA, rotB float64) {
	h.record(ActionBond, BondData{Bond: b, RotA: rotA, RotB: rotB})
}

func (h *history) Broken(b workspace.Bond) {
	h.record(ActionBreak, BreakData{Bond: b})
}

func (h *history) Moved(id workspace.TokenID, from, to r2.Vec, order int) {
	h.record(ActionMove, MoveData{ID: id, From: from, To: to, Order: order})
}

func (h *history) clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}

func setRotation(g *workspace.Graph, id workspace.TokenID, deg float64) {
	if t, ok := g.Token(id); ok {
		t.Rotation = deg
	}
}

func setCenter(g *workspace.Graph, id workspace.TokenID, c r2.Vec) {
	if t, ok := g.Token(id); ok {
		t.Reposition(c)
	}
}

// undo reverts the last action. It reports false when there was nothing
// to undo.
func (h *history) undo(g *workspace.Graph) bool {
	if len(h.undoStack) == 0 {
		return false
	}

	lastIndex := len(h.undoStack) - 1
	action := h.undoStack[lastIndex]
	h.undoStack = h.undoStack[:lastIndex]

	switch action.Type {
	case ActionPlace:
		data := action.Data.(PlaceData)
		g.RemoveElement(data.State.ID)
	case ActionRemove:
		data := action.Data.(RemoveData)
		if _, ok := g.Restore(data.State); !ok {
			logutil.Warnf("undo: cannot restore %s", data.State.Symbol)
			break
		}
		for _, b := range data.Bonds {
			g.LinkBond(b)
		}
	case ActionBond:
		data := action.Data.(BondData)
		g.BreakBond(data.Bond.A)
		setRotation(g, data.Bond.A.Token, data.RotA)
		setRotation(g, data.Bond.B.Token, data.RotB)
	case ActionBreak:
		data := action.Data.(BreakData)
		g.LinkBond(data.Bond)
	case ActionMove:
		data := action.Data.(MoveData)
		setCenter(g, data.ID, data.From)
		g.SetOrder(data.ID, data.Order)
	}

	h.redoStack = append(h.redoStack, action)
	return true
}

func (h *history) redo(g *workspace.Graph) bool {
	if len(h.redoStack) == 0 {
		return false
	}

	lastIndex := len(h.redoStack) - 1
	action := h.redoStack[lastIndex]
	h.redoStack = h.redoStack[:lastIndex]

	switch action.Type {
	case ActionPlace:
		data := action.Data.(PlaceData)
		g.Restore(data.State)
	case ActionRemove:
		data := action.Data.(RemoveData)
		g.RemoveElement(data.State.ID)
	case ActionBond:
		data := action.Data.(BondData)
		g.CreateBond(data.Bond.A, data.Bond.B)
	case ActionBreak:
		data := action.Data.(BreakData)
		g.BreakBond(data.Bond.A)
	case ActionMove:
		data := action.Data.(MoveData)
		setCenter(g, data.ID, data.To)
		g.BringToFront(data.ID)
	}

	h.undoStack = append(h.undoStack, action)
	return true
}

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/interact"
	"covalent/internal/logutil"
	"covalent/internal/periodic"
	"covalent/internal/render"
	"covalent/internal/workspace"
)

func (m *model) cellWidth() float64 {
	if m.config == nil || m.config.CellWidth <= 0 {
		return defaultCellWidth
	}
	return m.config.CellWidth
}

func (m *model) cellHeight() float64 {
	if m.config == nil || m.config.CellHeight <= 0 {
		return defaultCellHeight
	}
	return m.config.CellHeight
}

// cellCenter maps a terminal cell to the workspace pixel at its center.
func (m *model) cellCenter(col, row int) r2.Vec {
	return r2.Vec{
		X: (float64(col) + 0.5) * m.cellWidth(),
		Y: (float64(row) + 0.5) * m.cellHeight(),
	}
}

func (m *model) canvasRows() int {
	return max(m.height-statusLines, 1)
}

func (m *model) canvasCols() int {
	return max(m.width, 1)
}

// workspaceSize is the drawable area in pixels.
func (m *model) workspaceSize() r2.Vec {
	return r2.Vec{
		X: float64(m.canvasCols()) * m.cellWidth(),
		Y: float64(m.canvasRows()) * m.cellHeight(),
	}
}

// mouseEvent translates a terminal mouse report into a controller event.
// Wheel and unknown buttons are dropped.
func (m *model) mouseEvent(msg tea.MouseMsg) (interact.Event, bool) {
	ev := interact.Event{Pos: m.cellCenter(msg.X, msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Type = interact.Press
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Button = interact.Primary
			ev.Modifier = msg.Ctrl
		case tea.MouseButtonRight:
			ev.Button = interact.Secondary
		default:
			return interact.Event{}, false
		}
	case tea.MouseActionRelease:
		// terminals rarely say which button was released
		ev.Type = interact.Release
		ev.Button = interact.Primary
	case tea.MouseActionMotion:
		ev.Type = interact.Move
	default:
		return interact.Event{}, false
	}
	return ev, true
}

// pointerEvent builds an event at the keyboard cursor.
func (m *model) pointerEvent(t interact.EventType, b interact.Button) interact.Event {
	return interact.Event{Type: t, Button: b, Pos: m.cellCenter(m.cursorX, m.cursorY)}
}

func (m *model) dispatch(ev interact.Event) {
	// motion reports arrive for every cell the mouse crosses
	if logutil.Enabled(logutil.LevelDebug) {
		logutil.Debugf("event %s in %s", ev, m.ctl.State())
	}
	m.ctl.Handle(ev)
	if m.ctl.State() == interact.Idle {
		m.keyHeld = false
	}
	if err := m.graph.Check(); err != nil {
		logutil.Errorf("workspace inconsistent after %s: %v", ev, err)
	}
}

func (m *model) hitRadius() float64 {
	if m.config == nil || m.config.SlotHitRadius <= 0 {
		return workspace.DefaultSlotHitRadius
	}
	return m.config.SlotHitRadius
}

// fitToWindow shrinks the picker and pulls the spawn column in so both
// stay inside the drawable area. Tokens already placed are not moved.
func (m *model) fitToWindow() {
	size := m.workspaceSize()
	m.ctl.Layout = periodic.DefaultLayout.Fit(size.X, m.cellHeight())
	m.ctl.Spawn = interact.FitSpawn(m.config.SpawnX, size, m.ctl.Layout)
}

// hoverInfo describes the element under the pointer, placed or in the
// picker.
func (m *model) hoverInfo() string {
	p := m.ctl.Pointer()
	var (
		e     periodic.Element
		found bool
	)
	if t, ok := m.graph.TokenAt(p); ok {
		e, found = periodic.Lookup(t.Symbol)
	} else {
		e, found = m.ctl.Layout.ElementAt(p)
	}
	if !found {
		return ""
	}
	return fmt.Sprintf("%s group %d period %d, %d valence", e.Symbol, e.Group, e.Period, e.Valence)
}

// frame collects the state one draw pass reads.
func (m *model) frame(size r2.Vec) render.Frame {
	f := render.Frame{
		Graph:            m.graph,
		Layout:           m.ctl.Layout,
		Table:            m.ctl.Table,
		Size:             size,
		Pointer:          m.ctl.Pointer(),
		HitRadius:        m.hitRadius(),
		Selected:         m.ctl.Dragged(),
		ShowInstructions: m.config == nil || m.config.ShowInstructions,
	}
	if from, to, ok := m.ctl.Preview(); ok {
		f.Preview = &render.Segment{From: from, To: to}
	}
	return f
}

func formulas(g *workspace.Graph) []string {
	molecules := g.Molecules()
	out := make([]string, 0, len(molecules))
	for _, mol := range molecules {
		out = append(out, mol.Formula)
	}
	return out
}

func (m *model) copyFormulas() error {
	list := formulas(m.graph)
	if len(list) == 0 {
		return fmt.Errorf("workspace is empty")
	}
	if err := clipboard.WriteAll(strings.Join(list, "\n")); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// clearWorkspace drops every token and the undo history.
func (m *model) clearWorkspace() {
	m.ctl.Cancel()
	for m.graph.Len() > 0 {
		m.graph.RemoveElement(m.graph.Tokens()[0].ID)
	}
	m.history.clear()
	m.keyHeld = false
}

// Package interact turns pointer events into workspace mutations.
//
// One primary-button gesture is either a bond drag started on a single
// electron, a token drag started on a body, or a click on the picker. The
// secondary action removes the token under the pointer.
package interact

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/logutil"
	"covalent/internal/periodic"
	"covalent/internal/workspace"
)

const (
	spawnTop  = 50.0
	spawnStep = 100.0
)

// DefaultSpawn places the n-th token in a column on the right.
func DefaultSpawn(x float64) func(n int) r2.Vec {
	return func(n int) r2.Vec {
		return r2.Vec{X: x, Y: spawnTop + float64(n)*spawnStep}
	}
}

// FitSpawn is DefaultSpawn kept inside area. The column moves left until a
// whole body fits, starts below the picker when it would cover it, and
// wraps into further columns to the left when it runs out of height.
func FitSpawn(x float64, area r2.Vec, picker periodic.Layout) func(n int) r2.Vec {
	margin := workspace.BodyRadius + workspace.BodyHitSlack
	panel := picker.Bounds()

	x0 := math.Max(math.Min(x, area.X-margin), margin)
	y0 := spawnTop
	if x0-margin < panel.Max.X {
		y0 = panel.Max.Y + margin
	}
	perColumn := max(int(math.Floor((area.Y-margin-y0)/spawnStep))+1, 1)

	return func(n int) r2.Vec {
		col, row := n/perColumn, n%perColumn
		return r2.Vec{
			X: math.Max(x0-float64(col)*spawnStep, margin),
			Y: y0 + float64(row)*spawnStep,
		}
	}
}

type Controller struct {
	Graph  *workspace.Graph
	Layout periodic.Layout
	Table  []periodic.Element

	// HitRadius is the slot pick distance in pixels.
	HitRadius float64
	// Spawn gives the position of a new token when n are live.
	Spawn   func(n int) r2.Vec
	Journal Journal

	state      State
	pointer    r2.Vec
	dragSlot   workspace.SlotRef
	dragToken  workspace.TokenID
	dragOffset r2.Vec
	dragStart  r2.Vec
	dragOrder  int
	quit       bool
}

func New(g *workspace.Graph) *Controller {
	return &Controller{
		Graph:     g,
		Layout:    periodic.DefaultLayout,
		Table:     periodic.Table,
		HitRadius: workspace.DefaultSlotHitRadius,
		Spawn:     DefaultSpawn(800),
		Journal:   noJournal{},
		dragToken: workspace.NoToken,
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Pointer() r2.Vec { return c.pointer }

// Quitting reports whether a quit event was seen.
func (c *Controller) Quitting() bool { return c.quit }

// Dragged is the token being moved, or NoToken.
func (c *Controller) Dragged() workspace.TokenID {
	if c.state != DraggingToken {
		return workspace.NoToken
	}
	return c.dragToken
}

// Preview is the rubber band from the dragged slot to the pointer.
func (c *Controller) Preview() (from, to r2.Vec, ok bool) {
	if c.state != DraggingBond {
		return r2.Vec{}, r2.Vec{}, false
	}
	from, ok = c.Graph.SlotPosition(c.dragSlot)
	return from, c.pointer, ok
}

// HandleAll drains one frame's events. It returns false once a quit event
// has been handled.
func (c *Controller) HandleAll(events []Event) bool {
	for _, ev := range events {
		c.Handle(ev)
	}
	return !c.quit
}

func (c *Controller) Handle(ev Event) {
	switch ev.Type {
	case Quit:
		c.quit = true
	case Move:
		c.move(ev.Pos)
	case Press:
		c.pointer = ev.Pos
		if ev.secondary() {
			c.remove(ev.Pos)
			return
		}
		if c.state != Idle {
			c.Cancel()
		}
		c.press(ev.Pos)
	case Release:
		c.pointer = ev.Pos
		if ev.Button == Primary {
			c.release(ev.Pos)
		}
	}
}

// Cancel abandons the current gesture. A moved token stays where it is.
func (c *Controller) Cancel() {
	if c.state == DraggingToken {
		c.finishMove()
	}
	c.state = Idle
	c.dragToken = workspace.NoToken
}

func (c *Controller) journal() Journal {
	if c.Journal == nil {
		return noJournal{}
	}
	return c.Journal
}

func (c *Controller) hitRadius() float64 {
	if c.HitRadius <= 0 {
		return workspace.DefaultSlotHitRadius
	}
	return c.HitRadius
}

// draggable accepts single electrons, bonded or not.
func (c *Controller) draggable(ref workspace.SlotRef) bool {
	if c.Graph.CanBond(ref) {
		return true
	}
	_, bonded := c.Graph.Partner(ref)
	return bonded
}

func (c *Controller) press(p r2.Vec) {
	if ref, ok := c.Graph.SlotAt(p, c.hitRadius(), c.draggable); ok {
		if b, broken := c.Graph.BreakBond(ref); broken {
			logutil.Debugf("detached bond %v-%v", b.A, b.B)
			c.journal().Broken(b)
		}
		c.state = DraggingBond
		c.dragSlot = ref
		return
	}

	if t, ok := c.Graph.TokenAt(p); ok {
		st, _ := c.Graph.State(t.ID)
		c.dragOrder = st.Order
		c.Graph.BringToFront(t.ID)
		c.state = DraggingToken
		c.dragToken = t.ID
		c.dragOffset = r2.Sub(t.Center, p)
		c.dragStart = t.Center
		return
	}

	e, ok := c.Layout.ElementAt(p)
	if !ok || !c.inTable(e.Symbol) {
		return
	}
	if _, live := c.Graph.BySymbol(e.Symbol); live {
		logutil.Debugf("%s is already in the workspace", e.Symbol)
		return
	}
	spawn := c.Spawn
	if spawn == nil {
		spawn = DefaultSpawn(800)
	}
	t, placed := c.Graph.PlaceElement(e.Symbol, e.Valence, spawn(c.Graph.Len()))
	if !placed {
		return
	}
	st, _ := c.Graph.State(t.ID)
	c.journal().Placed(st)
}

func (c *Controller) inTable(symbol string) bool {
	for _, e := range c.Table {
		if e.Symbol == symbol {
			return true
		}
	}
	return false
}

func (c *Controller) move(p r2.Vec) {
	c.pointer = p
	if c.state != DraggingToken {
		return
	}
	if t, ok := c.Graph.Token(c.dragToken); ok {
		t.Reposition(r2.Add(p, c.dragOffset))
	}
}

func (c *Controller) release(p r2.Vec) {
	switch c.state {
	case DraggingBond:
		from := c.dragSlot
		target, ok := c.Graph.SlotAt(p, c.hitRadius(), func(ref workspace.SlotRef) bool {
			return ref.Token != from.Token && c.Graph.CanBond(ref)
		})
		if ok {
			c.bond(from, target)
		}
	case DraggingToken:
		c.finishMove()
	}
	c.state = Idle
	c.dragToken = workspace.NoToken
}

func (c *Controller) bond(from, to workspace.SlotRef) {
	a, okA := c.Graph.Token(from.Token)
	b, okB := c.Graph.Token(to.Token)
	if !okA || !okB {
		return
	}
	rotA, rotB := a.Rotation, b.Rotation
	if !c.Graph.CreateBond(from, to) {
		logutil.Debugf("bond %v-%v rejected", from, to)
		return
	}
	c.journal().Bonded(workspace.Bond{A: from, B: to}, rotA, rotB)
}

func (c *Controller) finishMove() {
	t, ok := c.Graph.Token(c.dragToken)
	if !ok || t.Center == c.dragStart {
		return
	}
	c.journal().Moved(t.ID, c.dragStart, t.Center, c.dragOrder)
	c.dragStart = t.Center
	if st, ok := c.Graph.State(t.ID); ok {
		c.dragOrder = st.Order
	}
}

func (c *Controller) remove(p r2.Vec) {
	t, ok := c.Graph.TokenAt(p)
	if !ok {
		return
	}
	dragging := (c.state == DraggingToken && c.dragToken == t.ID) ||
		(c.state == DraggingBond && c.dragSlot.Token == t.ID)
	if dragging {
		c.state = Idle
		c.dragToken = workspace.NoToken
	}
	st, _ := c.Graph.State(t.ID)
	bonds, removed := c.Graph.RemoveElement(t.ID)
	if removed {
		c.journal().Removed(st, bonds)
	}
}

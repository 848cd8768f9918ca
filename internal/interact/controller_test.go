package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/periodic"
	"covalent/internal/workspace"
)

type entry struct {
	kind       string
	st         workspace.TokenState
	bond       workspace.Bond
	bonds      []workspace.Bond
	rotA, rotB float64
	from, to   r2.Vec
	order      int
}

type journal struct{ entries []entry }

func (j *journal) Placed(st workspace.TokenState) {
	j.entries = append(j.entries, entry{kind: "placed", st: st})
}

func (j *journal) Removed(st workspace.TokenState, bonds []workspace.Bond) {
	j.entries = append(j.entries, entry{kind: "removed", st: st, bonds: bonds})
}

func (j *journal) Bonded(b workspace.Bond, rotA, rotB float64) {
	j.entries = append(j.entries, entry{kind: "bonded", bond: b, rotA: rotA, rotB: rotB})
}

func (j *journal) Broken(b workspace.Bond) {
	j.entries = append(j.entries, entry{kind: "broken", bond: b})
}

func (j *journal) Moved(_ workspace.TokenID, from, to r2.Vec, order int) {
	j.entries = append(j.entries, entry{kind: "moved", from: from, to: to, order: order})
}

func (j *journal) kinds() []string {
	var out []string
	for _, e := range j.entries {
		out = append(out, e.kind)
	}
	return out
}

func v(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }

func press(x, y float64) Event   { return Event{Type: Press, Button: Primary, Pos: v(x, y)} }
func release(x, y float64) Event { return Event{Type: Release, Button: Primary, Pos: v(x, y)} }
func moveTo(x, y float64) Event  { return Event{Type: Move, Pos: v(x, y)} }

func setup(t *testing.T) (*Controller, *journal, *workspace.Token, *workspace.Token) {
	t.Helper()
	g := workspace.New()
	c, ok := g.PlaceElement("C", 4, v(100, 300))
	require.True(t, ok)
	h, ok := g.PlaceElement("H", 1, v(200, 300))
	require.True(t, ok)
	ctl := New(g)
	j := &journal{}
	ctl.Journal = j
	return ctl, j, c, h
}

func TestPickerPlacesOnce(t *testing.T) {
	g := workspace.New()
	ctl := New(g)
	j := &journal{}
	ctl.Journal = j

	// the C cell is at group 14, period 2
	require.True(t, ctl.HandleAll([]Event{press(560, 80), release(560, 80)}))
	require.Equal(t, 1, g.Len())
	tok := g.Tokens()[0]
	assert.Equal(t, "C", tok.Symbol)
	assert.Equal(t, 4, tok.Valence)
	assert.Equal(t, v(800, 50), tok.Center)

	ctl.HandleAll([]Event{press(560, 80), release(560, 80)})
	assert.Equal(t, 1, g.Len())

	ctl.HandleAll([]Event{press(40, 40), release(40, 40)})
	require.Equal(t, 2, g.Len())
	assert.Equal(t, v(800, 150), g.Tokens()[1].Center)
	assert.Equal(t, []string{"placed", "placed"}, j.kinds())

	// empty space does nothing
	ctl.HandleAll([]Event{press(5, 500), release(5, 500)})
	assert.Equal(t, 2, g.Len())
}

func TestBondDragCarbonHydrogen(t *testing.T) {
	ctl, j, c, h := setup(t)

	ctl.Handle(press(120, 300))
	assert.Equal(t, DraggingBond, ctl.State())
	ctl.Handle(moveTo(150, 290))
	from, to, ok := ctl.Preview()
	require.True(t, ok)
	assert.Equal(t, v(120, 300), from)
	assert.Equal(t, v(150, 290), to)

	ctl.Handle(release(200, 282))
	assert.Equal(t, Idle, ctl.State())
	_, _, ok = ctl.Preview()
	assert.False(t, ok)

	require.Len(t, ctl.Graph.Bonds(), 1)
	require.NoError(t, ctl.Graph.Check())
	assert.InDelta(t, 0, c.Rotation, 1e-9)
	assert.InDelta(t, 270, h.Rotation, 1e-9)

	require.Equal(t, []string{"bonded"}, j.kinds())
	e := j.entries[0]
	assert.Equal(t, workspace.SlotRef{Token: c.ID, Index: 1}, e.bond.A)
	assert.Equal(t, workspace.SlotRef{Token: h.ID, Index: 0}, e.bond.B)
	assert.Zero(t, e.rotA)
	assert.Zero(t, e.rotB)
}

func TestBondDragMisses(t *testing.T) {
	ctl, j, c, _ := setup(t)

	// released over nothing
	ctl.HandleAll([]Event{press(120, 300), release(500, 500)})
	assert.Equal(t, Idle, ctl.State())

	// released over another slot of the same token
	ctl.HandleAll([]Event{press(120, 300), release(100, 280)})
	assert.Equal(t, Idle, ctl.State())

	assert.Empty(t, ctl.Graph.Bonds())
	assert.Empty(t, j.entries)
	assert.Zero(t, c.Rotation)
}

func TestDraggingBondedSlotDetaches(t *testing.T) {
	ctl, j, c, h := setup(t)
	ctl.HandleAll([]Event{press(120, 300), release(200, 282)})
	require.Len(t, ctl.Graph.Bonds(), 1)

	// H's electron now sits at (180, 300)
	ctl.Handle(press(180, 300))
	assert.Equal(t, DraggingBond, ctl.State())
	assert.Empty(t, ctl.Graph.Bonds())
	assert.True(t, ctl.Graph.CanBond(workspace.SlotRef{Token: c.ID, Index: 1}))
	assert.InDelta(t, 270, h.Rotation, 1e-9, "rotation is kept")

	ctl.Handle(release(600, 600))
	assert.Empty(t, ctl.Graph.Bonds())
	assert.Equal(t, []string{"bonded", "broken"}, j.kinds())
	require.NoError(t, ctl.Graph.Check())
}

func TestLonePairPressDragsBody(t *testing.T) {
	ctl, _, _, _ := setup(t)
	o, ok := ctl.Graph.PlaceElement("O", 6, v(400, 300))
	require.True(t, ok)

	ctl.Handle(press(400, 280))
	assert.Equal(t, DraggingToken, ctl.State())
	assert.Equal(t, o.ID, ctl.Dragged())
}

func TestTokenDrag(t *testing.T) {
	ctl, j, c, _ := setup(t)

	ctl.Handle(press(100, 300))
	assert.Equal(t, DraggingToken, ctl.State())
	assert.Equal(t, c.ID, ctl.Dragged())
	toks := ctl.Graph.Tokens()
	assert.Equal(t, c.ID, toks[len(toks)-1].ID, "brought to front")

	ctl.Handle(moveTo(130, 310))
	assert.Equal(t, v(130, 310), c.Center)
	assert.Equal(t, v(150, 310), c.SlotPosition(1), "slots follow the body")

	ctl.Handle(release(130, 310))
	assert.Equal(t, Idle, ctl.State())
	assert.Equal(t, workspace.NoToken, ctl.Dragged())
	require.Equal(t, []string{"moved"}, j.kinds())
	assert.Equal(t, v(100, 300), j.entries[0].from)
	assert.Equal(t, v(130, 310), j.entries[0].to)
	assert.Zero(t, j.entries[0].order, "C was at the back before the drag")
}

func TestSecondaryRemoves(t *testing.T) {
	ctl, j, c, h := setup(t)
	ctl.HandleAll([]Event{press(120, 300), release(200, 282)})
	require.Len(t, ctl.Graph.Bonds(), 1)

	ctl.Handle(Event{Type: Press, Button: Secondary, Pos: v(900, 900)})
	assert.Equal(t, 2, ctl.Graph.Len())

	ctl.Handle(Event{Type: Press, Button: Secondary, Pos: v(100, 300)})
	assert.Equal(t, 1, ctl.Graph.Len())
	_, live := ctl.Graph.Token(c.ID)
	assert.False(t, live)
	assert.Empty(t, ctl.Graph.Bonds())
	assert.True(t, ctl.Graph.CanBond(workspace.SlotRef{Token: h.ID, Index: 0}))
	require.NoError(t, ctl.Graph.Check())

	require.Equal(t, []string{"bonded", "removed"}, j.kinds())
	assert.Equal(t, "C", j.entries[1].st.Symbol)
	assert.Len(t, j.entries[1].bonds, 1)

	// ctrl + primary is the same action
	ctl.Handle(Event{Type: Press, Button: Primary, Modifier: true, Pos: v(200, 300)})
	assert.Zero(t, ctl.Graph.Len())
	assert.Equal(t, Idle, ctl.State())
}

func TestRemoveWhileDraggingItsBond(t *testing.T) {
	ctl, _, _, _ := setup(t)
	ctl.Handle(press(120, 300))
	require.Equal(t, DraggingBond, ctl.State())

	ctl.Handle(Event{Type: Press, Button: Secondary, Pos: v(100, 300)})
	assert.Equal(t, Idle, ctl.State())
	ctl.Handle(release(200, 282))
	assert.Empty(t, ctl.Graph.Bonds())
}

func TestCancelKeepsMovedToken(t *testing.T) {
	ctl, j, c, _ := setup(t)
	ctl.HandleAll([]Event{press(100, 300), moveTo(110, 300)})
	ctl.Cancel()
	assert.Equal(t, Idle, ctl.State())
	assert.Equal(t, v(110, 300), c.Center)
	assert.Equal(t, []string{"moved"}, j.kinds())
}

func TestQuit(t *testing.T) {
	ctl := New(workspace.New())
	assert.True(t, ctl.HandleAll([]Event{moveTo(1, 1)}))
	assert.Equal(t, v(1, 1), ctl.Pointer())
	assert.False(t, ctl.HandleAll([]Event{{Type: Quit}}))
	assert.True(t, ctl.Quitting())
}

func TestFitSpawnWideArea(t *testing.T) {
	spawn := FitSpawn(800, v(960, 580), periodic.DefaultLayout)
	assert.Equal(t, v(800, 50), spawn(0))
	assert.Equal(t, v(800, 150), spawn(1))
}

func TestFitSpawnStaysInside(t *testing.T) {
	area := v(640, 460)
	layout := periodic.DefaultLayout.Fit(area.X, 20)
	panel := layout.Bounds()
	spawn := FitSpawn(800, area, layout)

	margin := workspace.BodyRadius + workspace.BodyHitSlack
	first := spawn(0)
	assert.InDelta(t, 605, first.X, 1e-9)
	assert.InDelta(t, panel.Max.Y+margin, first.Y, 1e-9, "below the picker")

	for n := 0; n < 12; n++ {
		p := spawn(n)
		assert.GreaterOrEqual(t, p.X, margin, "n=%d", n)
		assert.LessOrEqual(t, p.X, area.X-margin, "n=%d", n)
		assert.LessOrEqual(t, p.Y, area.Y-margin, "n=%d", n)
		assert.GreaterOrEqual(t, p.Y, panel.Max.Y+margin, "n=%d", n)
	}
	assert.Less(t, spawn(3).X, first.X, "wraps into a new column")
}

package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/periodic"
	"covalent/internal/workspace"
)

// Instructions is the help block drawn in the bottom-left corner.
var Instructions = []string{
	"Click on an element to add it to the workspace",
	"Drag from an electron to form a bond with another element",
	"Drag elements to reposition them",
	"Right-click to remove an element",
}

const (
	instructionLeft   = 20.0
	instructionBottom = 120.0
	instructionStep   = 25.0
)

// Segment is a straight line between two points.
type Segment struct {
	From, To r2.Vec
}

// Frame is the settled state read by one draw pass.
type Frame struct {
	Graph  *workspace.Graph
	Layout periodic.Layout
	Table  []periodic.Element

	// Size is the workspace size in pixels.
	Size r2.Vec

	Pointer   r2.Vec
	HitRadius float64

	// Selected is drawn highlighted, NoToken for none.
	Selected workspace.TokenID

	// Preview is the rubber band of a bond drag, nil when idle.
	Preview *Segment

	ShowInstructions bool
}

// DrawScene paints the whole frame back to front.
func DrawScene(s Surface, f Frame) {
	drawTable(s, f.Layout, f.Table)
	if f.ShowInstructions {
		drawInstructions(s, f.Size.Y)
	}
	if f.Graph == nil {
		return
	}

	for _, b := range f.Graph.Bonds() {
		a, okA := f.Graph.SlotPosition(b.A)
		c, okB := f.Graph.SlotPosition(b.B)
		if okA && okB {
			s.Line(a, c, Purple, bondWidth)
		}
	}

	for _, t := range f.Graph.Tokens() {
		drawToken(s, f.Graph, t, t.ID == f.Selected)
	}

	hit := f.HitRadius
	if hit <= 0 {
		hit = workspace.DefaultSlotHitRadius
	}
	for _, t := range f.Graph.Tokens() {
		for _, slot := range t.Slots() {
			if t.SlotHovered(slot.Index, f.Pointer, hit) && f.Graph.CanBond(slot.Ref()) {
				drawDot(s, t.SlotPosition(slot.Index), singleDotRadius, Yellow)
			}
		}
	}

	if f.Preview != nil {
		s.Line(f.Preview.From, f.Preview.To, Red, bondWidth)
	}
}

func drawTable(s Surface, l periodic.Layout, table []periodic.Element) {
	bg := l.Bounds()
	s.Rect(bg, Fill(LightGray))
	s.Rect(bg, Stroke(Black, 2))
	for _, e := range table {
		cell := l.CellBox(e.Group, e.Period)
		s.Rect(cell, Fill(Gray))
		s.Rect(cell, Stroke(Black, 1))
		s.Text(e.Symbol, cell.Center(), Label)
	}
}

func drawInstructions(s Surface, height float64) {
	y := height - instructionBottom
	for _, line := range Instructions {
		s.Text(line, r2.Vec{X: instructionLeft, Y: y}, Instruction)
		y += instructionStep
	}
}

func drawToken(s Surface, g *workspace.Graph, t *workspace.Token, selected bool) {
	body := LightGray
	if selected {
		body = Green
	}
	s.Circle(t.Center, workspace.BodyRadius, Fill(body))
	s.Circle(t.Center, workspace.BodyRadius, Stroke(Black, bodyStrokeWidth))
	s.Text(t.Symbol, t.Center, Heading)

	for _, slot := range t.Slots() {
		pos := t.SlotPosition(slot.Index)
		switch {
		case slot.Paired:
			drawDot(s, pos, pairedDotRadius, DarkBlue)
		default:
			c := Blue
			if _, bonded := g.Partner(slot.Ref()); bonded {
				c = Red
			}
			drawDot(s, pos, singleDotRadius, c)
		}
	}
}

func drawDot(s Surface, at r2.Vec, radius float64, c color.Color) {
	s.Circle(at, radius, Fill(c))
	s.Circle(at, radius, Stroke(Black, 1))
}

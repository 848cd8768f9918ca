// Package workspace keeps the live element tokens and the bonds between
// their electron slots.
//
// Invalid requests are rejected silently: operations report whether they
// changed anything and never return an error.
package workspace

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bond links two slots on different tokens. A is the slot the gesture
// started from.
type Bond struct {
	A, B SlotRef
}

// Has reports whether ref is one of the bond's endpoints.
func (b Bond) Has(ref SlotRef) bool {
	return b.A == ref || b.B == ref
}

// Touches reports whether either endpoint belongs to id.
func (b Bond) Touches(id TokenID) bool {
	return b.A.Token == id || b.B.Token == id
}

// Graph is the workspace: tokens in draw order (front is last) and a
// symmetric partner index over slots.
type Graph struct {
	tokens   []*Token
	nextID   TokenID
	partners map[SlotRef]SlotRef
	bonds    []Bond
}

func New() *Graph {
	return &Graph{
		tokens:   make([]*Token, 0),
		partners: make(map[SlotRef]SlotRef),
		bonds:    make([]Bond, 0),
	}
}

// Tokens returns the live tokens back to front.
func (g *Graph) Tokens() []*Token {
	return slices.Clone(g.tokens)
}

// Len is the number of live tokens.
func (g *Graph) Len() int {
	return len(g.tokens)
}

// Bonds returns the bond registry in creation order.
func (g *Graph) Bonds() []Bond {
	return slices.Clone(g.bonds)
}

func (g *Graph) indexOf(id TokenID) int {
	return slices.IndexFunc(g.tokens, func(t *Token) bool { return t.ID == id })
}

// Token looks up a live token.
func (g *Graph) Token(id TokenID) (*Token, bool) {
	if i := g.indexOf(id); i >= 0 {
		return g.tokens[i], true
	}
	return nil, false
}

// BySymbol finds the live token carrying symbol.
func (g *Graph) BySymbol(symbol string) (*Token, bool) {
	for _, t := range g.tokens {
		if t.Symbol == symbol {
			return t, true
		}
	}
	return nil, false
}

// PlaceElement adds a new token at the front. It is rejected when a token
// with the same symbol is live or the valence is out of range.
func (g *Graph) PlaceElement(symbol string, valence int, at r2.Vec) (*Token, bool) {
	if symbol == "" || valence < MinValence || valence > MaxValence {
		return nil, false
	}
	if _, exists := g.BySymbol(symbol); exists {
		return nil, false
	}
	t := newToken(g.nextID, symbol, valence, at)
	g.nextID++
	g.tokens = append(g.tokens, t)
	return t, true
}

// RemoveElement detaches every bond on the token and drops it. The detached
// bonds are returned so callers can restore them.
func (g *Graph) RemoveElement(id TokenID) ([]Bond, bool) {
	i := g.indexOf(id)
	if i < 0 {
		return nil, false
	}
	var detached []Bond
	for _, b := range g.bonds {
		if b.Touches(id) {
			detached = append(detached, b)
		}
	}
	for _, b := range detached {
		g.BreakBond(b.A)
	}
	g.tokens = slices.Delete(g.tokens, i, i+1)
	return detached, true
}

// SlotPosition resolves ref and returns its current position.
func (g *Graph) SlotPosition(ref SlotRef) (r2.Vec, bool) {
	t, ok := g.Token(ref.Token)
	if !ok || ref.Index < 0 || ref.Index >= len(t.slots) {
		return r2.Vec{}, false
	}
	return t.SlotPosition(ref.Index), true
}

func (g *Graph) slot(ref SlotRef) (ElectronSlot, bool) {
	t, ok := g.Token(ref.Token)
	if !ok {
		return ElectronSlot{}, false
	}
	return t.Slot(ref.Index)
}

// Partner returns the slot bonded to ref.
func (g *Graph) Partner(ref SlotRef) (SlotRef, bool) {
	p, ok := g.partners[ref]
	return p, ok
}

// CanBond reports whether ref is a live single electron without a partner.
func (g *Graph) CanBond(ref SlotRef) bool {
	s, ok := g.slot(ref)
	if !ok || s.Paired {
		return false
	}
	_, bonded := g.partners[ref]
	return !bonded
}

// CreateBond links from and to, then aligns from's token and afterwards
// to's token toward each other.
func (g *Graph) CreateBond(from, to SlotRef) bool {
	if !g.LinkBond(Bond{A: from, B: to}) {
		return false
	}
	g.align(from)
	g.align(to)
	return true
}

// LinkBond registers b without touching either token's rotation.
func (g *Graph) LinkBond(b Bond) bool {
	if b.A.Token == b.B.Token {
		return false
	}
	if !g.CanBond(b.A) || !g.CanBond(b.B) {
		return false
	}
	g.partners[b.A] = b.B
	g.partners[b.B] = b.A
	g.bonds = append(g.bonds, b)
	return true
}

func (g *Graph) align(ref SlotRef) {
	partner, ok := g.partners[ref]
	if !ok {
		return
	}
	self, _ := g.Token(ref.Token)
	other, _ := g.Token(partner.Token)
	self.AlignToward(ref.Index, other.Center)
}

// BreakBond unlinks ref from its partner. Rotations are left as they are.
func (g *Graph) BreakBond(ref SlotRef) (Bond, bool) {
	partner, ok := g.partners[ref]
	if !ok {
		return Bond{}, false
	}
	delete(g.partners, ref)
	delete(g.partners, partner)

	var removed Bond
	g.bonds = slices.DeleteFunc(g.bonds, func(b Bond) bool {
		if b.Has(ref) {
			removed = b
			return true
		}
		return false
	})
	return removed, true
}

// BringToFront moves the token to the end of the draw order.
func (g *Graph) BringToFront(id TokenID) {
	g.SetOrder(id, len(g.tokens)-1)
}

// SetOrder moves the token to draw position i, clamped to the live range.
func (g *Graph) SetOrder(id TokenID, i int) {
	from := g.indexOf(id)
	if from < 0 || from == i {
		return
	}
	t := g.tokens[from]
	rest := slices.Delete(g.tokens, from, from+1)
	i = min(max(i, 0), len(rest))
	g.tokens = slices.Insert(rest, i, t)
}

// TokenAt returns the front-most token whose body contains p.
func (g *Graph) TokenAt(p r2.Vec) (*Token, bool) {
	for i := len(g.tokens) - 1; i >= 0; i-- {
		if g.tokens[i].IsHovered(p) {
			return g.tokens[i], true
		}
	}
	return nil, false
}

// SlotAt returns the first slot, in draw order, within hitRadius of p that
// accept allows. A nil accept allows every slot.
func (g *Graph) SlotAt(p r2.Vec, hitRadius float64, accept func(SlotRef) bool) (SlotRef, bool) {
	for _, t := range g.tokens {
		for i := range t.slots {
			ref := t.slots[i].Ref()
			if !t.SlotHovered(i, p, hitRadius) {
				continue
			}
			if accept == nil || accept(ref) {
				return ref, true
			}
		}
	}
	return SlotRef{}, false
}

// Check verifies the bond invariants. It is cheap enough to run after every
// mutation in tests.
func (g *Graph) Check() error {
	if len(g.partners) != 2*len(g.bonds) {
		return fmt.Errorf("partner index has %d entries for %d bonds", len(g.partners), len(g.bonds))
	}
	seen := make(map[SlotRef]bool, len(g.partners))
	for _, b := range g.bonds {
		if b.A.Token == b.B.Token {
			return fmt.Errorf("bond %v-%v joins a token to itself", b.A, b.B)
		}
		for _, ref := range []SlotRef{b.A, b.B} {
			if seen[ref] {
				return fmt.Errorf("slot %v is in more than one bond", ref)
			}
			seen[ref] = true
			s, ok := g.slot(ref)
			if !ok {
				return fmt.Errorf("bond endpoint %v is not on a live token", ref)
			}
			if s.Paired {
				return fmt.Errorf("bond endpoint %v is a lone pair", ref)
			}
		}
		if g.partners[b.A] != b.B || g.partners[b.B] != b.A {
			return fmt.Errorf("bond %v-%v is not symmetric in the partner index", b.A, b.B)
		}
	}
	return nil
}

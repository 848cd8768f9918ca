package workspace

import (
	"gonum.org/v1/gonum/spatial/r2"

	"covalent/internal/geom"
)

const (
	// BodyRadius is the drawn radius of a token.
	BodyRadius = 30.0
	// SlotRadius is the distance of every slot from its token's center.
	SlotRadius = 20.0
	// BodyHitSlack widens the body hit circle beyond BodyRadius.
	BodyHitSlack = 5.0
	// DefaultSlotHitRadius is how close the pointer must be to a slot.
	DefaultSlotHitRadius = 10.0

	MinValence = 1
	MaxValence = 8
)

// Token is one placed element. Center and Rotation are the only mutable
// geometry; slot positions are always derived from them on read.
type Token struct {
	ID       TokenID
	Symbol   string
	Valence  int
	Center   r2.Vec
	Rotation float64 // degrees, applies to every slot

	slots []ElectronSlot
}

func newToken(id TokenID, symbol string, valence int, center r2.Vec) *Token {
	return &Token{
		ID:      id,
		Symbol:  symbol,
		Valence: valence,
		Center:  center,
		slots:   GenerateSlots(id, valence),
	}
}

// Slots returns a copy of the token's slots in generation order.
func (t *Token) Slots() []ElectronSlot {
	out := make([]ElectronSlot, len(t.slots))
	copy(out, t.slots)
	return out
}

// Slot returns slot i.
func (t *Token) Slot(i int) (ElectronSlot, bool) {
	if i < 0 || i >= len(t.slots) {
		return ElectronSlot{}, false
	}
	return t.slots[i], true
}

// SlotPosition computes where slot i currently sits.
func (t *Token) SlotPosition(i int) r2.Vec {
	return geom.PerimeterPoint(t.Center, t.slots[i].Side, SlotRadius, t.Rotation)
}

// SlotHovered reports whether p lies strictly within hitRadius of slot i.
func (t *Token) SlotHovered(i int, p r2.Vec, hitRadius float64) bool {
	return geom.Distance(p, t.SlotPosition(i)) < hitRadius
}

// IsHovered reports whether p is on the token body.
func (t *Token) IsHovered(p r2.Vec) bool {
	return geom.Distance(p, t.Center) < BodyRadius+BodyHitSlack
}

// Reposition moves the token. Slots follow because their positions are
// derived.
func (t *Token) Reposition(center r2.Vec) {
	t.Center = center
}

// AlignToward turns the whole token so that slot i points at other. Every
// other slot turns with it, so a previous alignment on this token is lost.
func (t *Token) AlignToward(i int, other r2.Vec) {
	angleToOther := geom.AngleDegrees(t.Center, other)
	t.Rotation = angleToOther - geom.SideBaseAngleDegrees(t.slots[i].Side)
}

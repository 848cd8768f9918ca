package workspace

import (
	"fmt"

	"covalent/internal/geom"
)

// TokenID identifies a token for its whole life in a Graph. IDs are not
// reused, so a stale ID simply fails to resolve.
type TokenID int

// NoToken is the zero handle; live tokens never use it.
const NoToken TokenID = -1

// SlotRef is the stable handle of one electron slot: its owner and its
// index in the owner's slot list.
type SlotRef struct {
	Token TokenID
	Index int
}

func (r SlotRef) String() string {
	return fmt.Sprintf("%d/%d", r.Token, r.Index)
}

// ElectronSlot is one valence marker on a token's perimeter. Side and Paired
// never change after generation. The bond partner lives in the Graph.
type ElectronSlot struct {
	Owner  TokenID
	Index  int
	Side   geom.Side
	Paired bool // lone pair, never bondable
}

// Ref returns the slot's handle.
func (s ElectronSlot) Ref() SlotRef {
	return SlotRef{Token: s.Owner, Index: s.Index}
}

// GenerateSlots lays out the valence markers for a token.
//
// Valence 4, 3 and 2 get that many single electrons starting at the top and
// going clockwise. Every other count fills the sides in order with lone
// pairs first and then, for odd counts, one single electron. Left is
// therefore unused for 5 and 6, and 1 gets a single electron on top.
func GenerateSlots(owner TokenID, valence int) []ElectronSlot {
	var slots []ElectronSlot
	add := func(side geom.Side, paired bool) {
		slots = append(slots, ElectronSlot{
			Owner:  owner,
			Index:  len(slots),
			Side:   side,
			Paired: paired,
		})
	}

	switch valence {
	case 4, 3, 2:
		for _, side := range geom.Sides[:valence] {
			add(side, false)
		}
		return slots
	}

	pairsNeeded := valence / 2
	singlesNeeded := valence % 2
	for _, side := range geom.Sides {
		if pairsNeeded > 0 {
			add(side, true)
			pairsNeeded--
		} else if singlesNeeded > 0 {
			add(side, false)
			singlesNeeded--
		}
		if len(slots) >= valence {
			break
		}
	}
	return slots
}

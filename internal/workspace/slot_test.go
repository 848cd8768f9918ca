package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"covalent/internal/geom"
)

type slotShape struct {
	side   geom.Side
	paired bool
}

func TestGenerateSlots(t *testing.T) {
	U := func(s geom.Side) slotShape { return slotShape{s, false} }
	P := func(s geom.Side) slotShape { return slotShape{s, true} }

	tests := []struct {
		valence int
		want    []slotShape
	}{
		{1, []slotShape{U(geom.Top)}},
		{2, []slotShape{U(geom.Top), U(geom.Right)}},
		{3, []slotShape{U(geom.Top), U(geom.Right), U(geom.Bottom)}},
		{4, []slotShape{U(geom.Top), U(geom.Right), U(geom.Bottom), U(geom.Left)}},
		{5, []slotShape{P(geom.Top), P(geom.Right), U(geom.Bottom)}},
		{6, []slotShape{P(geom.Top), P(geom.Right), P(geom.Bottom)}},
		{7, []slotShape{P(geom.Top), P(geom.Right), P(geom.Bottom), U(geom.Left)}},
		{8, []slotShape{P(geom.Top), P(geom.Right), P(geom.Bottom), P(geom.Left)}},
	}
	for _, tt := range tests {
		slots := GenerateSlots(7, tt.valence)
		got := make([]slotShape, len(slots))
		for i, s := range slots {
			got[i] = slotShape{s.Side, s.Paired}
			assert.Equal(t, TokenID(7), s.Owner)
			assert.Equal(t, i, s.Index)
		}
		assert.Equal(t, tt.want, got, "valence %d", tt.valence)
	}
}

func TestGenerateSlotsDistinctSides(t *testing.T) {
	for v := MinValence; v <= MaxValence; v++ {
		seen := map[geom.Side]bool{}
		for _, s := range GenerateSlots(0, v) {
			assert.False(t, seen[s.Side], "valence %d repeats side %v", v, s.Side)
			seen[s.Side] = true
		}
	}
}

package workspace

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// TokenState is everything needed to put a removed token back.
type TokenState struct {
	ID       TokenID
	Symbol   string
	Valence  int
	Center   r2.Vec
	Rotation float64
	Order    int
}

// State captures a live token.
func (g *Graph) State(id TokenID) (TokenState, bool) {
	i := g.indexOf(id)
	if i < 0 {
		return TokenState{}, false
	}
	t := g.tokens[i]
	return TokenState{
		ID:       t.ID,
		Symbol:   t.Symbol,
		Valence:  t.Valence,
		Center:   t.Center,
		Rotation: t.Rotation,
		Order:    i,
	}, true
}

// Restore re-inserts a token captured by State at its old draw position.
// It fails if the ID or the symbol is live again.
func (g *Graph) Restore(st TokenState) (*Token, bool) {
	if _, live := g.Token(st.ID); live {
		return nil, false
	}
	if _, live := g.BySymbol(st.Symbol); live {
		return nil, false
	}
	t := newToken(st.ID, st.Symbol, st.Valence, st.Center)
	t.Rotation = st.Rotation
	order := min(max(st.Order, 0), len(g.tokens))
	g.tokens = slices.Insert(g.tokens, order, t)
	if st.ID >= g.nextID {
		g.nextID = st.ID + 1
	}
	return t, true
}

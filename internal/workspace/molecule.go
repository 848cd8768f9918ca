package workspace

import (
	"sort"
	"strconv"
	"strings"
)

// Molecule is a group of tokens connected through bonds.
type Molecule struct {
	Tokens  []TokenID
	Formula string
}

// Molecules groups the live tokens by bond connectivity. Groups are ordered
// by their back-most token and single unbonded tokens are included.
func (g *Graph) Molecules() []Molecule {
	adj := make(map[TokenID][]TokenID)
	for _, b := range g.bonds {
		adj[b.A.Token] = append(adj[b.A.Token], b.B.Token)
		adj[b.B.Token] = append(adj[b.B.Token], b.A.Token)
	}

	visited := make(map[TokenID]bool)
	var out []Molecule
	for _, start := range g.tokens {
		if visited[start.ID] {
			continue
		}
		var group []TokenID
		queue := []TokenID{start.ID}
		visited[start.ID] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			group = append(group, id)
			for _, next := range adj[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		out = append(out, Molecule{Tokens: group, Formula: g.formula(group)})
	}
	return out
}

// formula writes the group in Hill order: carbon, then hydrogen, then the
// rest alphabetically. Without carbon everything is alphabetical.
func (g *Graph) formula(group []TokenID) string {
	counts := make(map[string]int)
	for _, id := range group {
		if t, ok := g.Token(id); ok {
			counts[t.Symbol]++
		}
	}

	var symbols []string
	for s := range counts {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	if counts["C"] > 0 {
		rest := make([]string, 0, len(symbols))
		for _, s := range symbols {
			if s != "C" && s != "H" {
				rest = append(rest, s)
			}
		}
		symbols = []string{"C"}
		if counts["H"] > 0 {
			symbols = append(symbols, "H")
		}
		symbols = append(symbols, rest...)
	}

	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(s)
		if n := counts[s]; n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

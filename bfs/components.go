// File: components.go
// Role: connectivity queries built on Reach.
// Determinism:
//   - Components are discovered from the smallest unvisited vertex ID;
//     each component lists its members sorted ascending.

package bfs

import (
	"sort"

	"github.com/katalvlaran/recom/core"
)

// Components returns the connected components of the subgraph of g induced
// by the vertices scope admits (all vertices for a nil scope).
//
// Complexity: O(V log V + E).
func Components(g *core.Graph, scope Scope) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, id := range g.Vertices() {
		if seen[id] || (scope != nil && !scope(id)) {
			continue
		}
		comp, err := Reach(g, id, scope)
		if err != nil {
			return nil, err
		}
		for _, v := range comp {
			seen[v] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// SetConnected reports whether the vertices in members induce a connected
// subgraph of g. An empty set is connected.
//
// Complexity: O(|members| + edges incident to members).
func SetConnected(g *core.Graph, members []string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if len(members) == 0 {
		return true, nil
	}
	in := make(map[string]bool, len(members))
	for _, m := range members {
		in[m] = true
	}
	reached, err := Reach(g, members[0], func(id string) bool { return in[id] })
	if err != nil {
		return false, err
	}

	return len(reached) == len(in), nil
}

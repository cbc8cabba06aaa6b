// File: bfs.go
// Role: breadth-first reachability inside a vertex scope.
// Determinism:
//   - Neighbors come from core.NeighborIDs (sorted), so the visit order is
//     reproducible.

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/recom/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Scope restricts a walk to the vertices for which it returns true.
// A nil Scope admits every vertex.
type Scope func(id string) bool

// Reach returns every vertex reachable from start through vertices admitted
// by scope, in breadth-first order. start is always the first element, even
// when scope rejects it.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, or a wrapped neighbor lookup error.
// Complexity: O(V' + E') over the admitted part of g.
func Reach(g *core.Graph, start string, scope Scope) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	order := []string{start}
	seen := map[string]bool{start: true}
	for head := 0; head < len(order); head++ {
		nbrs, err := g.NeighborIDs(order[head])
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", order[head], err)
		}
		for _, nbr := range nbrs {
			if seen[nbr] || (scope != nil && !scope(nbr)) {
				continue
			}
			seen[nbr] = true
			order = append(order, nbr)
		}
	}

	return order, nil
}

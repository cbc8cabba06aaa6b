// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex neighbor slices sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Map adjacencyList[id] edge IDs to *Edge and sort by Edge.ID.
//
// Returns pointers to live catalog edges; treat them as read-only.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(g.adjacencyList[id]))
	for _, eid := range g.adjacencyList[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.adjacencyList[id]))
	for nbr := range g.adjacencyList[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a snapshot map vertex → sorted neighbor IDs.
// Returned slices are independent copies.
//
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.adjacencyList))
	for u, nbrs := range g.adjacencyList {
		ids := make([]string, 0, len(nbrs))
		for v := range nbrs {
			ids = append(ids, v)
		}
		sort.Strings(ids)
		out[u] = ids
	}

	return out
}

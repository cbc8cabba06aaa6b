// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/EdgeBetween/Edges,
//       edge attributes, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// Other returns the endpoint of e that is not id.
// If id is not an endpoint, From is returned.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// AddEdge creates a new undirected edge between from and to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs and loops; reject frozen graphs.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject an already adjacent pair.
//  4. Generate eid atomically, store the edge, mirror adjacency.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrDuplicateEdge, ErrFrozen.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if g.frozen.Load() {
		return "", ErrFrozen
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacencyList[from][to]; exists {
		return "", fmt.Errorf("core: AddEdge(%s,%s): %w", from, to, ErrDuplicateEdge)
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Attrs: make(map[string]float64)}
	g.adjacencyList[from][to] = eid
	g.adjacencyList[to][from] = eid

	return eid, nil
}

// HasEdge reports whether from and to are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacencyList[from][to]

	return ok
}

// GetEdge returns the edge with the given ID. Treat the result as read-only.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns the edge joining u and v, if any.
func (g *Graph) EdgeBetween(u, v string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacencyList[u][v]
	if !ok {
		return nil, false
	}

	return g.edges[eid], true
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// SetEdgeAttr stores a numeric attribute on an existing edge.
//
// Errors: ErrEdgeNotFound, ErrFrozen.
func (g *Graph) SetEdgeAttr(edgeID, name string, value float64) error {
	if g.frozen.Load() {
		return ErrFrozen
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return fmt.Errorf("core: SetEdgeAttr(%q): %w", edgeID, ErrEdgeNotFound)
	}
	e.Attrs[name] = value

	return nil
}

// EdgeAttr returns a numeric edge attribute and whether it was present.
func (g *Graph) EdgeAttr(edgeID, name string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return 0, false
	}
	v, ok := e.Attrs[name]

	return v, ok
}

// nextEdgeID returns a new unique textual edge ID.
// Callers hold muEdgeAdj; the counter itself is atomic so InducedSubgraph can snapshot it.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

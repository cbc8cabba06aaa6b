// File: methods_vertices.go
// Role: Vertex lifecycle, attribute access and queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrFrozen: if the graph is frozen.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if g.frozen.Load() {
		return ErrFrozen
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{
		ID:     id,
		Attrs:  make(map[string]float64),
		Labels: make(map[string]string),
	}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// SetVertexAttr stores a numeric attribute on an existing vertex.
//
// Errors: ErrVertexNotFound, ErrFrozen.
func (g *Graph) SetVertexAttr(id, name string, value float64) error {
	if g.frozen.Load() {
		return ErrFrozen
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("core: SetVertexAttr(%q): %w", id, ErrVertexNotFound)
	}
	v.Attrs[name] = value

	return nil
}

// SetVertexLabel stores a textual attribute on an existing vertex.
//
// Errors: ErrVertexNotFound, ErrFrozen.
func (g *Graph) SetVertexLabel(id, name, value string) error {
	if g.frozen.Load() {
		return ErrFrozen
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("core: SetVertexLabel(%q): %w", id, ErrVertexNotFound)
	}
	v.Labels[name] = value

	return nil
}

// VertexAttr returns a numeric attribute and whether it was present.
// Unknown vertices report (0, false).
// Complexity: O(1).
func (g *Graph) VertexAttr(id, name string) (float64, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, false
	}
	val, ok := v.Attrs[name]

	return val, ok
}

// VertexLabel returns a textual attribute and whether it was present.
func (g *Graph) VertexLabel(id, name string) (string, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return "", false
	}
	val, ok := v.Labels[name]

	return val, ok
}

// Degree returns the number of edges incident to id.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[id]), nil
}

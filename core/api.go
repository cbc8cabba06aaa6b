// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: freezing, attribute requirements and snapshots.
// Policy:
//   - No algorithms here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

import (
	"fmt"
	"sort"
)

// Freeze validates the declared required attributes and makes the graph read-only.
//
// Implementation:
//   - Stage 1: If already frozen, return nil (idempotent).
//   - Stage 2: Run RequireVertexAttrs over the attributes declared by WithRequiredAttrs.
//   - Stage 3: Flip the frozen flag; every mutator returns ErrFrozen afterwards.
//
// Errors:
//   - ErrMissingAttribute (wrapped with vertex and attribute names).
//
// Complexity:
//   - Time O(V·R) for R required attributes, Space O(1).
func (g *Graph) Freeze() error {
	if g.frozen.Load() {
		return nil
	}
	if err := g.RequireVertexAttrs(g.required...); err != nil {
		return err
	}
	// Take both write locks so no in-flight mutation straddles the flip.
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.frozen.Store(true)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()

	return nil
}

// Frozen reports whether Freeze has succeeded.
func (g *Graph) Frozen() bool {
	return g.frozen.Load()
}

// RequireVertexAttrs checks that every vertex carries every named numeric attribute.
// Vertices are scanned in sorted order so the reported vertex is deterministic.
//
// Errors:
//   - ErrMissingAttribute wrapped as "core: vertex <id>: attribute <name>: ...".
//
// Complexity: O(V log V + V·len(names)).
func (g *Graph) RequireVertexAttrs(names ...string) error {
	if len(names) == 0 {
		return nil
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		attrs := g.vertices[id].Attrs
		for _, name := range names {
			if _, ok := attrs[name]; !ok {
				return fmt.Errorf("core: vertex %q: attribute %q: %w", id, name, ErrMissingAttribute)
			}
		}
	}

	return nil
}

// Stats produces a deterministic, read-only snapshot of catalog sizes and flags.
//
// Complexity: O(R) for the copied Required slice.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		VertexCount: len(g.vertices),
		Frozen:      g.frozen.Load(),
		Required:    append([]string(nil), g.required...),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	g.muEdgeAdj.RUnlock()

	return &stats
}

// TotalAttr sums a numeric vertex attribute over the whole graph.
// Summation runs in sorted vertex order, so the result is bit-for-bit reproducible.
// Vertices lacking the attribute contribute zero.
func (g *Graph) TotalAttr(name string) float64 {
	var total float64
	for _, id := range g.Vertices() {
		v, _ := g.VertexAttr(id, name)
		total += v
	}

	return total
}

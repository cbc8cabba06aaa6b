// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex and edge IDs.
// Concurrency:
//   - Read locks on source; result is a fresh, frozen graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set keep of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both kept. Attributes are copied. IDs absent from g are ignored.
//
// The result is frozen: it is a view, consumers (spanning tree samplers,
// contiguity checks) read it and never mutate it.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	for id, ok := range keep {
		if !ok {
			continue
		}
		v, exists := g.vertices[id]
		if !exists {
			continue
		}
		out.vertices[id] = copyVertex(v)
		out.adjacencyList[id] = make(map[string]string)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for id := range out.vertices {
		for nbr, eid := range g.adjacencyList[id] {
			if _, kept := out.vertices[nbr]; !kept {
				continue
			}
			if _, done := out.edges[eid]; done {
				continue
			}
			ne := copyEdge(g.edges[eid])
			out.edges[eid] = ne
			out.adjacencyList[ne.From][ne.To] = eid
			out.adjacencyList[ne.To][ne.From] = eid
		}
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)
	out.frozen.Store(true)

	return out
}

func copyVertex(v *Vertex) *Vertex {
	nv := &Vertex{
		ID:     v.ID,
		Attrs:  make(map[string]float64, len(v.Attrs)),
		Labels: make(map[string]string, len(v.Labels)),
	}
	for k, val := range v.Attrs {
		nv.Attrs[k] = val
	}
	for k, val := range v.Labels {
		nv.Labels[k] = val
	}

	return nv
}

func copyEdge(e *Edge) *Edge {
	ne := &Edge{ID: e.ID, From: e.From, To: e.To, Attrs: make(map[string]float64, len(e.Attrs))}
	for k, val := range e.Attrs {
		ne.Attrs[k] = val
	}

	return ne
}

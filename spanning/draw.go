// File: draw.go
// Role: entry point dispatching to the selected sampler.
// Determinism:
//   - Vertices and neighbor lists are consumed in sorted order, so a fixed
//     rng state yields a fixed tree.

package spanning

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/recom/bfs"
	"github.com/katalvlaran/recom/core"
)

// Draw samples a random spanning tree of g.
//
// Steps:
//  1. Validate: g != nil, rng != nil, method known, |V| > 0.
//  2. Reject disconnected graphs up front (Wilson would never terminate).
//  3. Dispatch to wilson or kruskal.
//
// Errors: ErrGraphNil, ErrNeedRand, ErrUnknownMethod, ErrEmptyGraph, ErrDisconnected.
//
// Complexity: Wilson runs in expected mean hitting time; Kruskal O(E log E).
func Draw(g *core.Graph, rng *rand.Rand, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if rng == nil {
		return nil, ErrNeedRand
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := ParseMethod(o.Method); err != nil {
		return nil, err
	}

	nodes := g.Vertices()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	root := o.Root
	if root == "" {
		root = nodes[0]
	} else if !g.HasVertex(root) {
		return nil, fmt.Errorf("spanning: root %q: %w", root, core.ErrVertexNotFound)
	}
	comps, err := bfs.Components(g, nil)
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		return nil, fmt.Errorf("%w: %d components", ErrDisconnected, len(comps))
	}

	adj := g.AdjacencyList()
	var edges []TreeEdge
	switch o.Method {
	case MethodKruskal:
		edges = kruskal(g, nodes, rng)
	default:
		edges = wilson(nodes, adj, root, rng)
	}

	return newTree(root, nodes, edges), nil
}

// wilson grows a tree from root by loop-erased random walks started at every
// vertex not yet in the tree, taken in sorted order.
//
// The "next" pointer map realises loop erasure implicitly: revisiting a vertex
// overwrites its exit, so only the last exit of every vertex survives.
func wilson(nodes []string, adj map[string][]string, root string, rng *rand.Rand) []TreeEdge {
	inTree := make(map[string]bool, len(nodes))
	next := make(map[string]string, len(nodes))
	inTree[root] = true
	edges := make([]TreeEdge, 0, len(nodes)-1)

	for _, start := range nodes {
		u := start
		for !inTree[u] {
			nbrs := adj[u]
			next[u] = nbrs[rng.Intn(len(nbrs))]
			u = next[u]
		}
		u = start
		for !inTree[u] {
			inTree[u] = true
			edges = append(edges, makeTreeEdge(u, next[u]))
			u = next[u]
		}
	}

	return edges
}

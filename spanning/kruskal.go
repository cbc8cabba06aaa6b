// File: kruskal.go
// Role: random-weight Kruskal sampler.

package spanning

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/recom/core"
)

// kruskal assigns every edge an i.i.d. U[0,1) weight (in Edge.ID order) and
// returns the minimum spanning tree under those weights.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Steps:
//  1. Draw weights for g.Edges() in sorted order.
//  2. Sort edges by ascending weight (stable, ties keep Edge.ID order).
//  3. Initialize DSU maps parent[] and rank[] for each vertex.
//  4. For each edge (u,v), if find(u) != find(v), union and include it.
//  5. Stop at |V|-1 edges. Callers have already checked connectivity.
//
// Complexity: O(E log E + α(V)·E).
func kruskal(g *core.Graph, nodes []string, rng *rand.Rand) []TreeEdge {
	all := g.Edges()
	weights := make(map[string]float64, len(all))
	for _, e := range all {
		weights[e.ID] = rng.Float64()
	}
	sort.SliceStable(all, func(i, j int) bool {
		return weights[all[i].ID] < weights[all[j].ID]
	})

	parent := make(map[string]string, len(nodes))
	rank := make(map[string]int, len(nodes))
	for _, vid := range nodes {
		parent[vid] = vid
	}

	// Iterative find with path compression.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether the sets were disjoint.
	union := func(u, v string) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	edges := make([]TreeEdge, 0, len(nodes)-1)
	for _, e := range all {
		if union(e.From, e.To) {
			edges = append(edges, makeTreeEdge(e.From, e.To))
			if len(edges) == len(nodes)-1 {
				break
			}
		}
	}

	return edges
}

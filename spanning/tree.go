// File: tree.go
// Role: Tree value type and balanced-cut search.
// Determinism:
//   - Edges() is sorted by (U, V); BalancedCuts reports cuts ordered by the
//     child-side vertex ID.

package spanning

import (
	"math"
	"sort"
	"strings"
)

// TreeEdge is an undirected tree edge stored canonically with U < V.
type TreeEdge struct {
	U, V string
}

func makeTreeEdge(a, b string) TreeEdge {
	if b < a {
		a, b = b, a
	}

	return TreeEdge{U: a, V: b}
}

// Tree is an immutable spanning tree over a vertex set.
type Tree struct {
	root  string
	nodes []string
	edges []TreeEdge
	adj   map[string][]string
}

func newTree(root string, nodes []string, edges []TreeEdge) *Tree {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	adj := make(map[string][]string, len(nodes))
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	for _, nbrs := range adj {
		sort.Strings(nbrs)
	}

	return &Tree{root: root, nodes: nodes, edges: edges, adj: adj}
}

// Root returns the vertex the tree is rooted at.
func (t *Tree) Root() string { return t.root }

// Len returns the number of vertices spanned.
func (t *Tree) Len() int { return len(t.nodes) }

// Edges returns the tree edges sorted by (U, V). The slice is a copy.
func (t *Tree) Edges() []TreeEdge {
	return append([]TreeEdge(nil), t.edges...)
}

// Neighbors returns the sorted tree neighbors of id.
func (t *Tree) Neighbors(id string) []string {
	return append([]string(nil), t.adj[id]...)
}

// HasEdge reports whether {a, b} is a tree edge.
func (t *Tree) HasEdge(a, b string) bool {
	for _, n := range t.adj[a] {
		if n == b {
			return true
		}
	}

	return false
}

// Key returns a canonical string naming the tree's edge set.
// Two trees over the same vertices share a Key iff they have the same edges.
func (t *Tree) Key() string {
	var sb strings.Builder
	for i, e := range t.edges {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(e.U)
		sb.WriteByte('-')
		sb.WriteString(e.V)
	}

	return sb.String()
}

// Cut is a tree edge whose removal splits the tree into two balanced halves.
// Side lists (sorted) the vertices on the side away from the root; Weight is their total.
type Cut struct {
	Edge   TreeEdge
	Side   []string
	Weight float64
}

// BalancedCuts returns every tree edge whose removal leaves both components
// with total weight w satisfying |w - target| <= epsilon·target.
// Vertices missing from weights count as zero.
//
// Implementation:
//   - Stage 1: Iterative DFS from the root recording parents and a pre-order.
//   - Stage 2: Reverse pre-order accumulates subtree sums bottom-up.
//   - Stage 3: Test each non-root vertex's parent edge; collect the subtree
//     members only for qualifying edges.
//
// Complexity: O(V) plus O(V) per qualifying cut.
func (t *Tree) BalancedCuts(weights map[string]float64, target, epsilon float64) []Cut {
	order := make([]string, 0, len(t.nodes))
	parent := make(map[string]string, len(t.nodes))
	stack := []string{t.root}
	seen := map[string]bool{t.root: true}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		for _, v := range t.adj[u] {
			if !seen[v] {
				seen[v] = true
				parent[v] = u
				stack = append(stack, v)
			}
		}
	}

	sub := make(map[string]float64, len(order))
	var total float64
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		sub[u] += weights[u]
		total += weights[u]
		if p, ok := parent[u]; ok {
			sub[p] += sub[u]
		}
	}

	tol := epsilon * target
	var cuts []Cut
	for _, v := range t.nodes {
		p, ok := parent[v]
		if !ok {
			continue
		}
		below := sub[v]
		if math.Abs(below-target) > tol || math.Abs(total-below-target) > tol {
			continue
		}
		cuts = append(cuts, Cut{
			Edge:   makeTreeEdge(v, p),
			Side:   t.subtree(v, p),
			Weight: below,
		})
	}

	return cuts
}

// subtree lists (sorted) the vertices reachable from v without crossing to p.
func (t *Tree) subtree(v, p string) []string {
	out := []string{v}
	stack := []string{v}
	from := map[string]string{v: p}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range t.adj[u] {
			if w == from[u] {
				continue
			}
			from[w] = u
			out = append(out, w)
			stack = append(stack, w)
		}
	}
	sort.Strings(out)

	return out
}

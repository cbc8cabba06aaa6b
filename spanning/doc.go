// Package spanning samples random spanning trees of a core.Graph and finds
// the tree edges whose removal splits a weighted vertex set into two
// balanced halves. Together these are the heart of the ReCom proposal.
//
// Samplers
//
//   - MethodWilson (default): Wilson's algorithm. Loop-erased random walks
//     from every vertex into the growing tree yield a spanning tree drawn
//     exactly uniformly from all spanning trees of the graph.
//   - MethodKruskal: i.i.d. uniform edge weights followed by Kruskal's MST
//     (union-find with path compression and union by rank). Faster on dense
//     graphs but biased; provided for comparison runs.
//
// Balanced cuts
//
//	cuts := tree.BalancedCuts(pop, target, epsilon)
//
// returns every edge e such that both components of tree−e have total
// weight within epsilon·target of target. Each Cut carries the sorted vertex
// list of the side away from the root.
//
// Determinism
//
//	Given the same graph and the same *rand.Rand state, Draw returns the same
//	tree: vertices, neighbors and edges are consumed in sorted order.
//
// Errors
//
//	ErrGraphNil, ErrNeedRand, ErrEmptyGraph, ErrDisconnected, ErrUnknownMethod.
package spanning

// Package bfs answers the connectivity questions the ensemble engine asks of
// a core.Graph: which vertices a walk can reach without leaving a vertex set,
// how the graph splits into components, and whether a district is contiguous.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and Reach appends neighbors in that
//	order, so visit sequences and component listings are reproducible.
//
// Scopes
//
//	A Scope admits vertices. Reach and Components never step onto a vertex
//	the scope rejects, which is how a district's contiguity is checked
//	without building a subgraph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	order, err := bfs.Reach(g, "a", nil)
//	comps, err := bfs.Components(g, nil)
//	ok, err := bfs.SetConnected(g, districtMembers)
package bfs

// Package core provides the thread-safe, attributed, undirected Graph that
// serves as the dual graph of a redistricting problem: one vertex per
// geographic unit, one edge per pair of units sharing a boundary.
//
// The Graph G = (V,E) is simple and undirected:
//
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges (ErrDuplicateEdge).
//   - Constant-time edge lookups via mirrored nested maps:
//     adjacencyList[u][v] = edgeID
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Attributes:
//
//	Vertex.Attrs  map[string]float64   // population, votes, area, ...
//	Vertex.Labels map[string]string    // names and codes
//	Edge.Attrs    map[string]float64   // shared_perim, ...
//
// Lifecycle:
//
//	g := core.NewGraph(core.WithRequiredAttrs("population"))
//	_, _ = g.AddEdge("a", "b")
//	_ = g.SetVertexAttr("a", "population", 10)
//	...
//	if err := g.Freeze(); err != nil { ... } // ErrMissingAttribute
//
// After Freeze every mutator returns ErrFrozen and the graph can be shared by
// any number of partitions and goroutines without further coordination.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                 // O(1)
//	HasVertex(id string) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (string, error)   // O(1)
//	HasEdge(from, to string) bool              // O(1)
//	EdgeBetween(u, v string) (*Edge, bool)     // O(1)
//
//	// Queries
//	Vertices() []string                        // sorted
//	Edges() []*Edge                            // sorted by ID
//	NeighborIDs(id string) ([]string, error)   // sorted
//	Neighbors(id string) ([]*Edge, error)      // sorted by edge ID
//
//	// Views
//	InducedSubgraph(g, keep) *Graph            // frozen view
//
// Determinism: every listing method returns sorted results, so algorithms
// that consume them are reproducible for a fixed RNG seed.
package core

// File: types.go
// Role: Vertex, Edge and Graph types, sentinel errors, and the NewGraph constructor.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency). Once Freeze succeeds the graph is
// read-only and may be shared by any number of partitions and goroutines.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrLoopNotAllowed    - self-loop requested.
//	ErrDuplicateEdge     - a second edge between the same endpoints.
//	ErrFrozen            - mutation attempted on a frozen graph.
//	ErrMissingAttribute  - a required node attribute is absent (load error).

package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted. Dual graphs never carry loops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge between an already adjacent pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrFrozen indicates a mutation of a graph that has been frozen.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrMissingAttribute indicates a node lacks an attribute some consumer requires.
	// It is the load-error class: surfaced before any chain step runs.
	ErrMissingAttribute = errors.New("core: missing attribute")
)

// Vertex represents a node of the dual graph (a precinct, block, VTD...).
//
// Attrs holds numeric columns (population, vote counts, area).
// Labels holds textual columns that are not numbers (names, codes).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attrs maps attribute name to its numeric value.
	Attrs map[string]float64

	// Labels maps attribute name to a non-numeric value.
	Labels map[string]string
}

// Edge represents an undirected adjacency between two vertices.
//
// From/To record insertion order only; the edge has no direction.
// Attrs carries per-edge measures such as shared_perim.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Attrs maps attribute name to its numeric value.
	Attrs map[string]float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithRequiredAttrs declares node attributes that Freeze must find on every vertex.
// A missing attribute makes Freeze fail with ErrMissingAttribute.
func WithRequiredAttrs(names ...string) GraphOption {
	return func(g *Graph) { g.required = append(g.required, names...) }
}

// Graph is the core in-memory undirected, simple, attributed graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
// frozen flips once (Freeze) and is never cleared.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	frozen   atomic.Bool
	required []string // node attributes checked by Freeze

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[u][v] = edge ID; mirrored for both endpoints.
	adjacencyList map[string]map[string]string
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot returned by Stats.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	Frozen      bool
	// Required lists the node attributes declared via WithRequiredAttrs.
	Required []string
}

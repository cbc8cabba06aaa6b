// Package partition assigns every node of a frozen dual graph to a district
// and derives per-plan values through named updaters.
//
// A Partition is immutable. Flip produces a successor that shares the graph
// and the updater registry, copies the assignment, and inherits the values its
// predecessor had already computed. Updaters implementing IncrementalUpdater
// (Tally, Election, cut_edges) then recompute only the districts touched by
// the flip; the rest are computed lazily on first Value call and cached.
//
// Built-in updaters:
//
//	cut_edges            mapset.Set[string]        always registered
//	Tally(attr)          map[District]float64
//	Election(name, ...)  *ElectionResults
//	WithGeographic()     area, exterior_boundaries, interior_boundaries,
//	                     perimeter, polsby_popper  (map[District]float64)
//
// Errors:
//
//	ErrInvalidAssignment  unassigned/unknown node, empty district, bad flip
//	ErrUnknownUpdater     Value on an unregistered name
//	ErrUpdaterType        ValueAs with the wrong type
//	ErrDuplicateUpdater   two updaters under one name
//
// Usage:
//
//	p, err := partition.FromAttribute(g, "district",
//		partition.WithUpdater("population", partition.Tally("population")),
//		partition.WithUpdater("SEN12", partition.Election("SEN12",
//			partition.Party{Name: "Democratic", Column: "USS12D"},
//			partition.Party{Name: "Republican", Column: "USS12R"})))
//	pop, err := p.Tally("population")
package partition

// Package builder constructs deterministic synthetic dual graphs for tests,
// examples and benchmarks of the ReCom ensemble engine.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...) creates a core.Graph and applies
//     constructors in order.
//   - Topologies (Constructor):
//     – Cycle(n), Path(n):  vertex IDs from the configured IDFn.
//     – Grid(rows, cols):   vertex IDs "r,c", 4-neighborhood.
//   - Attribute generators (AttrFn), attached with WithVertexAttr:
//     – ConstantAttr, UniformIntAttr (seeded via WithSeed/WithRand).
//     – ColumnBands, RowBands: seed district labels for an initial plan.
//     – Checkerboard: alternating two-party vote columns.
//   - Geometry: WithUnitGeometry stamps area, boundary_perim and shared_perim
//     for the geographic updaters.
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors wrapping ErrTooFewVertices / ErrConstructFailed.
//   - Same options and seed ⇒ identical graphs.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{
//			builder.WithVertexAttr("population", builder.ConstantAttr(1)),
//			builder.WithVertexAttr("district", builder.ColumnBands(6, 3)),
//		},
//		builder.Grid(6, 6))
package builder

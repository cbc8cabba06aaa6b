// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/katalvlaran/recom/builder"
	"github.com/katalvlaran/recom/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("3", "0"))

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("p")}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"p0", "p1", "p2"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasEdge("p0", "p2"))

	_, err = builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())
	// rows*(cols-1) + cols*(rows-1)
	assert.Equal(t, 3*3+4*2, g.EdgeCount())
	assert.True(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(0, 1)))
	assert.True(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 0)))
	assert.False(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 1)))

	_, err = builder.BuildGraph(nil, nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestVertexAttrs(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithRequiredAttrs("population", "district")},
		[]builder.BuilderOption{
			builder.WithVertexAttr("population", builder.ConstantAttr(10)),
			builder.WithVertexAttr("district", builder.ColumnBands(4, 2)),
			builder.WithVertexAttr("row", builder.RowBands(2, 4, 2)),
			builder.WithVertexAttr("votes", builder.Checkerboard(4, 7, 3)),
		},
		builder.Grid(2, 4))
	require.NoError(t, err)
	require.NoError(t, g.Freeze())

	d, _ := g.VertexAttr(builder.GridID(1, 1), "district")
	assert.Equal(t, 0.0, d)
	d, _ = g.VertexAttr(builder.GridID(1, 2), "district")
	assert.Equal(t, 1.0, d)
	row, _ := g.VertexAttr(builder.GridID(1, 0), "row")
	assert.Equal(t, 1.0, row)
	v, _ := g.VertexAttr(builder.GridID(0, 0), "votes")
	assert.Equal(t, 7.0, v)
	v, _ = g.VertexAttr(builder.GridID(0, 1), "votes")
	assert.Equal(t, 3.0, v)
	assert.Equal(t, 80.0, g.TotalAttr("population"))
}

func TestUniformIntAttr_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{
				builder.WithSeed(7),
				builder.WithVertexAttr("population", builder.UniformIntAttr(50, 150)),
			},
			builder.Path(20))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	for _, id := range a.Vertices() {
		va, _ := a.VertexAttr(id, "population")
		vb, _ := b.VertexAttr(id, "population")
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 50.0)
		assert.LessOrEqual(t, va, 150.0)
	}

	// Without an RNG the generator falls back to lo.
	assert.Equal(t, 50.0, builder.UniformIntAttr(50, 150)(0, nil))
}

func TestUnitGeometry(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithUnitGeometry()}, builder.Grid(3, 3))
	require.NoError(t, err)

	corner, _ := g.VertexAttr(builder.GridID(0, 0), builder.AttrBoundaryPerim)
	assert.Equal(t, 2.0, corner)
	side, _ := g.VertexAttr(builder.GridID(0, 1), builder.AttrBoundaryPerim)
	assert.Equal(t, 1.0, side)
	center, _ := g.VertexAttr(builder.GridID(1, 1), builder.AttrBoundaryPerim)
	assert.Equal(t, 0.0, center)
	assert.Equal(t, 9.0, g.TotalAttr(builder.AttrArea))

	e, ok := g.EdgeBetween(builder.GridID(1, 1), builder.GridID(1, 2))
	require.True(t, ok)
	sp, _ := g.EdgeAttr(e.ID, builder.AttrSharedPerim)
	assert.Equal(t, 1.0, sp)
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "v3", builder.SymbolNumberIDFn("v")(3))

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithVertexAttr("", builder.ConstantAttr(1)) })
	assert.Panics(t, func() { builder.WithVertexAttr("x", nil) })
	assert.Panics(t, func() { builder.ColumnBands(3, 4) })
	assert.Panics(t, func() { builder.RowBands(2, 3, 0) })
	assert.Panics(t, func() { builder.UniformIntAttr(5, 1) })
}

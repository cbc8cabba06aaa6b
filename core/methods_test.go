// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for vertex/edge lifecycle and query APIs.
//   - Validate simple-graph enforcement (loops, duplicate edges) and freezing.

package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/recom/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare returns the 4-cycle A-B-C-D-A with population 10 on every vertex.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithRequiredAttrs("population"))
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	for _, id := range g.Vertices() {
		require.NoError(t, g.SetVertexAttr(id, "population", 10))
	}

	return g
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("X"))
	assert.True(t, g.HasVertex("X"))

	// Duplicate AddVertex is a no-op.
	require.NoError(t, g.AddVertex("X"))
	assert.Equal(t, 1, g.VertexCount())

	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("missing"))
}

func TestGraph_AddEdgeRules(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("", "A")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	eid, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	_, err = g.AddEdge("B", "A")
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))

	e, ok := g.EdgeBetween("B", "A")
	require.True(t, ok)
	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))
}

func TestGraph_DeterministicOrdering(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{{"c", "a"}, {"b", "c"}, {"a", "b"}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, "e3", edges[2].ID)

	inc, err := g.Neighbors("c")
	require.NoError(t, err)
	require.Len(t, inc, 2)
	assert.Equal(t, "e1", inc[0].ID)
	assert.Equal(t, "e2", inc[1].ID)

	adj := g.AdjacencyList()
	assert.Equal(t, []string{"a", "b"}, adj["c"])
}

func TestGraph_Attributes(t *testing.T) {
	g := buildSquare(t)

	v, ok := g.VertexAttr("A", "population")
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	_, ok = g.VertexAttr("A", "votes")
	assert.False(t, ok)
	_, ok = g.VertexAttr("missing", "population")
	assert.False(t, ok)

	assert.ErrorIs(t, g.SetVertexAttr("missing", "population", 1), core.ErrVertexNotFound)

	require.NoError(t, g.SetVertexLabel("A", "name", "north"))
	name, ok := g.VertexLabel("A", "name")
	assert.True(t, ok)
	assert.Equal(t, "north", name)

	e, _ := g.EdgeBetween("A", "B")
	require.NoError(t, g.SetEdgeAttr(e.ID, "shared_perim", 2.5))
	sp, ok := g.EdgeAttr(e.ID, "shared_perim")
	assert.True(t, ok)
	assert.Equal(t, 2.5, sp)

	assert.Equal(t, 40.0, g.TotalAttr("population"))

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

func TestGraph_Freeze(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.Freeze())
	require.NoError(t, g.Freeze(), "Freeze is idempotent")
	assert.True(t, g.Frozen())

	assert.ErrorIs(t, g.AddVertex("E"), core.ErrFrozen)
	_, err := g.AddEdge("A", "C")
	assert.ErrorIs(t, err, core.ErrFrozen)
	assert.ErrorIs(t, g.SetVertexAttr("A", "population", 1), core.ErrFrozen)
	assert.ErrorIs(t, g.SetVertexLabel("A", "name", "x"), core.ErrFrozen)
	assert.ErrorIs(t, g.SetEdgeAttr("e1", "shared_perim", 1), core.ErrFrozen)

	stats := g.Stats()
	assert.Equal(t, 4, stats.VertexCount)
	assert.Equal(t, 4, stats.EdgeCount)
	assert.True(t, stats.Frozen)
	assert.Equal(t, []string{"population"}, stats.Required)
}

func TestGraph_FreezeMissingAttribute(t *testing.T) {
	g := core.NewGraph(core.WithRequiredAttrs("population"))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.NoError(t, g.SetVertexAttr("A", "population", 5))

	err = g.Freeze()
	require.ErrorIs(t, err, core.ErrMissingAttribute)
	assert.Contains(t, err.Error(), `"B"`)
	assert.False(t, g.Frozen())
}

func TestInducedSubgraph(t *testing.T) {
	g := buildSquare(t)
	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "C": true, "X": true, "D": false})

	assert.True(t, sub.Frozen())
	assert.Equal(t, []string{"A", "B", "C"}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.HasEdge("A", "B"))
	assert.True(t, sub.HasEdge("B", "C"))
	assert.False(t, sub.HasEdge("C", "D"))

	// Edge IDs and attributes survive.
	orig, _ := g.EdgeBetween("A", "B")
	sube, _ := sub.EdgeBetween("A", "B")
	assert.Equal(t, orig.ID, sube.ID)
	pop, _ := sub.VertexAttr("C", "population")
	assert.Equal(t, 10.0, pop)
}

func TestGraph_ConcurrentReadsOnFrozen(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.Freeze())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = g.Vertices()
				_, _ = g.NeighborIDs("A")
				_ = g.TotalAttr("population")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 40.0, g.TotalAttr("population"))
}

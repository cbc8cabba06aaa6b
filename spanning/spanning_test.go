package spanning_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/recom/bfs"
	"github.com/katalvlaran/recom/builder"
	"github.com/katalvlaran/recom/core"
	"github.com/katalvlaran/recom/spanning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildK4 constructs the complete graph on A..D, which has 4^(4-2) = 16 spanning trees.
func buildK4(t testing.TB) *core.Graph {
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D"}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			_, err := g.AddEdge(ids[i], ids[j])
			require.NoError(t, err)
		}
	}
	require.NoError(t, g.Freeze())

	return g
}

// assertSpanningTree checks |V|-1 edges, all edges from g, and connectivity.
func assertSpanningTree(t *testing.T, g *core.Graph, tr *spanning.Tree) {
	t.Helper()
	edges := tr.Edges()
	require.Len(t, edges, g.VertexCount()-1)

	tg := core.NewGraph()
	for _, id := range g.Vertices() {
		require.NoError(t, tg.AddVertex(id))
	}
	for _, e := range edges {
		assert.True(t, g.HasEdge(e.U, e.V), "tree edge %v not in graph", e)
		_, err := tg.AddEdge(e.U, e.V)
		require.NoError(t, err)
	}
	comps, err := bfs.Components(tg, nil)
	require.NoError(t, err)
	assert.Len(t, comps, 1)
}

func TestDraw_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := spanning.Draw(nil, rng)
	assert.ErrorIs(t, err, spanning.ErrGraphNil)

	_, err = spanning.Draw(core.NewGraph(), nil)
	assert.ErrorIs(t, err, spanning.ErrNeedRand)

	_, err = spanning.Draw(core.NewGraph(), rng)
	assert.ErrorIs(t, err, spanning.ErrEmptyGraph)

	_, err = spanning.Draw(buildK4(t), rng, spanning.WithMethod("prim"))
	assert.ErrorIs(t, err, spanning.ErrUnknownMethod)

	_, err = spanning.Draw(buildK4(t), rng, spanning.WithRoot("Z"))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("c", "d")
	for _, m := range []string{spanning.MethodWilson, spanning.MethodKruskal} {
		_, err = spanning.Draw(g, rng, spanning.WithMethod(m))
		assert.ErrorIs(t, err, spanning.ErrDisconnected, m)
		assert.ErrorContains(t, err, "2 components", m)
	}
}

func TestDraw_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("only"))
	tr, err := spanning.Draw(g, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
	assert.Empty(t, tr.Edges())
	assert.Equal(t, "only", tr.Root())
}

func TestDraw_ProducesSpanningTrees(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(6, 7))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(11))
	for _, m := range []string{spanning.MethodWilson, spanning.MethodKruskal} {
		for i := 0; i < 20; i++ {
			tr, err := spanning.Draw(g, rng, spanning.WithMethod(m))
			require.NoError(t, err)
			assertSpanningTree(t, g, tr)
		}
	}
}

func TestDraw_Deterministic(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(5, 5))
	require.NoError(t, err)
	a, err := spanning.Draw(g, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := spanning.Draw(g, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, a.Key(), b.Key())
}

// TestWilson_UniformOnK4 draws 16,000 trees of K4 and runs a chi-square
// goodness-of-fit test against the uniform distribution over its 16 trees.
// Critical value for df=15 at p=0.001 is 37.697.
func TestWilson_UniformOnK4(t *testing.T) {
	const (
		draws    = 16000
		trees    = 16
		critical = 37.697
	)
	g := buildK4(t)
	rng := rand.New(rand.NewSource(2024))
	counts := make(map[string]int, trees)
	for i := 0; i < draws; i++ {
		tr, err := spanning.Draw(g, rng)
		require.NoError(t, err)
		counts[tr.Key()]++
	}
	require.Len(t, counts, trees, "every spanning tree of K4 must be reachable")

	expected := float64(draws) / trees
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	assert.Less(t, chi2, critical, "chi-square %.2f exceeds critical value", chi2)
}

func TestBalancedCuts_Path(t *testing.T) {
	// Path 0-1-2-3 with weights 1,1,1,1; only the middle edge halves it.
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	tr, err := spanning.Draw(g, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	weights := map[string]float64{"0": 1, "1": 1, "2": 1, "3": 1}
	cuts := tr.BalancedCuts(weights, 2, 0)
	require.Len(t, cuts, 1)
	assert.Equal(t, spanning.TreeEdge{U: "1", V: "2"}, cuts[0].Edge)
	assert.Equal(t, []string{"2", "3"}, cuts[0].Side)
	assert.Equal(t, 2.0, cuts[0].Weight)

	// Loose tolerance admits every edge: sides 1|3, 2|2, 3|1 with target 2 and eps 0.5.
	cuts = tr.BalancedCuts(weights, 2, 0.5)
	assert.Len(t, cuts, 3)

	// Infeasible target.
	assert.Empty(t, tr.BalancedCuts(weights, 10, 0.01))
}

func TestBalancedCuts_SidesWithinTolerance(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(3),
			builder.WithVertexAttr("population", builder.UniformIntAttr(80, 120)),
		},
		builder.Grid(8, 8))
	require.NoError(t, err)
	weights := make(map[string]float64)
	for _, id := range g.Vertices() {
		weights[id], _ = g.VertexAttr(id, "population")
	}
	total := g.TotalAttr("population")
	target, eps := total/2, 0.05

	rng := rand.New(rand.NewSource(5))
	found := 0
	for i := 0; i < 50; i++ {
		tr, err := spanning.Draw(g, rng)
		require.NoError(t, err)
		for _, c := range tr.BalancedCuts(weights, target, eps) {
			found++
			var side float64
			for _, id := range c.Side {
				side += weights[id]
			}
			assert.InDelta(t, c.Weight, side, 1e-9)
			assert.LessOrEqual(t, abs(side-target), eps*target)
			assert.LessOrEqual(t, abs(total-side-target), eps*target)
			assert.True(t, tr.HasEdge(c.Edge.U, c.Edge.V))
		}
	}
	assert.Positive(t, found)
}

func TestParseMethod(t *testing.T) {
	m, err := spanning.ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, spanning.MethodWilson, m)
	m, err = spanning.ParseMethod("kruskal")
	require.NoError(t, err)
	assert.Equal(t, spanning.MethodKruskal, m)
	_, err = spanning.ParseMethod("prim")
	assert.ErrorIs(t, err, spanning.ErrUnknownMethod)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func BenchmarkWilson_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(20, 20))
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spanning.Draw(g, rng)
	}
}

func BenchmarkKruskal_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(20, 20))
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = spanning.Draw(g, rng, spanning.WithMethod(spanning.MethodKruskal))
	}
}

package ensemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recom/ensemble"
)

func row(vals ...float64) map[string]map[string][]float64 {
	return map[string]map[string][]float64{"E": {"D": vals}}
}

func TestSummarizer(t *testing.T) {
	z := ensemble.NewSummarizer()
	z.Add(ensemble.Sample{Step: 0, Percents: row(0.3, 0.5)})
	for i, v := range []float64{0.1, 0.2, 0.4, 0.5} {
		z.Add(ensemble.Sample{Step: i + 1, Percents: row(v, 0.5+v)})
	}

	sum := z.Summary()
	assert.Equal(t, 5, sum.Samples)
	assert.Equal(t, []float64{0.3, 0.5}, sum.Initial["E"]["D"])

	ranks := sum.Ranks["E"]["D"]
	require.Len(t, ranks, 2)
	// Rank 0 saw 0.1 0.2 0.3 0.4 0.5.
	assert.InDelta(t, 0.1, ranks[0].Min, 1e-12)
	assert.InDelta(t, 0.2, ranks[0].Q1, 1e-12)
	assert.InDelta(t, 0.3, ranks[0].Median, 1e-12)
	assert.InDelta(t, 0.4, ranks[0].Q3, 1e-12)
	assert.InDelta(t, 0.5, ranks[0].Max, 1e-12)
	// Rank 1 saw 0.5 0.6 0.7 0.9 1.0: Q1 at position 1, median 2, Q3 3.
	assert.InDelta(t, 0.6, ranks[1].Q1, 1e-12)
	assert.InDelta(t, 0.7, ranks[1].Median, 1e-12)
	assert.InDelta(t, 0.9, ranks[1].Q3, 1e-12)
}

func TestSummarizer_InitialCountedOnce(t *testing.T) {
	z := ensemble.NewSummarizer()
	for rep := 0; rep < 3; rep++ {
		z.Add(ensemble.Sample{Replicate: rep, Step: 0, Percents: row(0.3)})
		z.Add(ensemble.Sample{Replicate: rep, Step: 1, Percents: row(0.1 * float64(rep+1))})
	}

	sum := z.Summary()
	assert.Equal(t, 4, sum.Samples)
	assert.Equal(t, []float64{0.3}, sum.Initial["E"]["D"])
	// Rank 0 saw 0.1 0.2 0.3 plus the initial 0.3 once.
	q := sum.Ranks["E"]["D"][0]
	assert.InDelta(t, 0.1, q.Min, 1e-12)
	assert.InDelta(t, 0.25, q.Median, 1e-12)
	assert.InDelta(t, 0.3, q.Max, 1e-12)
}

func TestSummarizer_Interpolates(t *testing.T) {
	z := ensemble.NewSummarizer()
	for _, v := range []float64{4, 1, 3, 2} {
		z.Add(ensemble.Sample{Step: 1, Percents: row(v)})
	}
	q := z.Summary().Ranks["E"]["D"][0]
	assert.Equal(t, ensemble.Quartiles{Min: 1, Q1: 1.75, Median: 2.5, Q3: 3.25, Max: 4}, q)
	assert.Empty(t, z.Summary().Initial)
}

func TestReplicateSeed(t *testing.T) {
	assert.Equal(t, ensemble.ReplicateSeed(5, 2), ensemble.ReplicateSeed(5, 2))
	assert.Equal(t, ensemble.ReplicateSeed(0, 0), ensemble.ReplicateSeed(1, 0))
	assert.NotEqual(t, ensemble.ReplicateSeed(5, 0), ensemble.ReplicateSeed(5, 1))
	assert.NotEqual(t, ensemble.ReplicateSeed(5, 0), ensemble.ReplicateSeed(6, 0))
}

func TestTracker(t *testing.T) {
	tr, err := ensemble.NewTracker(100, 0.01, 2)
	require.NoError(t, err)

	assert.True(t, tr.Observe(1))
	assert.True(t, tr.Observe(2))
	assert.False(t, tr.Observe(1))
	assert.Equal(t, 2, tr.Visits(1))
	assert.Equal(t, 1, tr.Visits(2))

	assert.True(t, tr.Observe(3)) // evicts 2 from the recent window
	assert.Equal(t, 0, tr.Visits(2))
	assert.False(t, tr.Observe(2))
	assert.Equal(t, 3, tr.Distinct())
	assert.Equal(t, 5, tr.Total())

	_, err = ensemble.NewTracker(0, 0.01, 2)
	assert.Error(t, err)
	_, err = ensemble.NewTracker(10, 1, 2)
	assert.Error(t, err)
	_, err = ensemble.NewTracker(10, 0.01, 0)
	assert.Error(t, err)
}

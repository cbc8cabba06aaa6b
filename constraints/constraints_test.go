package constraints_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/recom/builder"
	"github.com/katalvlaran/recom/constraints"
	"github.com/katalvlaran/recom/partition"
)

const pop = "population"

// path4 is 0-1-2-3 with populations 10, 20, 30, 40.
func path4(t *testing.T, a partition.Assignment) *partition.Partition {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithVertexAttr(pop, func(idx int, _ *rand.Rand) float64 { return float64(10 * (idx + 1)) }),
	}, builder.Path(4))
	require.NoError(t, err)
	p, err := partition.New(g, a, partition.WithUpdater(pop, partition.Tally(pop)))
	require.NoError(t, err)

	return p
}

func TestValidator_ShortCircuit(t *testing.T) {
	p := path4(t, partition.Assignment{"0": 0, "1": 0, "2": 1, "3": 1})
	calls := 0
	v := constraints.NewValidator(
		constraints.New("yes", func(*partition.Partition) (bool, error) { return true, nil }),
		constraints.New("no", func(*partition.Partition) (bool, error) { return false, nil }),
		constraints.New("never", func(*partition.Partition) (bool, error) { calls++; return true, nil }),
	)
	assert.Equal(t, []string{"yes", "no", "never"}, v.Names())

	res, err := v.Validate(p)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "no", res.Failed)
	assert.Zero(t, calls)

	res, err = constraints.NewValidator().Validate(p)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Empty(t, res.Failed)
}

func TestValidator_Error(t *testing.T) {
	p := path4(t, partition.Assignment{"0": 0, "1": 0, "2": 1, "3": 1})
	boom := errors.New("boom")
	v := constraints.NewValidator(constraints.New("broken", func(*partition.Partition) (bool, error) { return false, boom }))

	res, err := v.Validate(p)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, "broken", res.Failed)
}

func TestPopulation(t *testing.T) {
	p := path4(t, partition.Assignment{"0": 0, "1": 1, "2": 1, "3": 0})
	ideal, err := constraints.IdealPopulation(p, pop)
	require.NoError(t, err)
	assert.Equal(t, 50.0, ideal)

	c, err := constraints.WithinPercentOfIdealPopulation(p, pop, 0.1)
	require.NoError(t, err)
	ok, err := c.Check(p)
	require.NoError(t, err)
	assert.True(t, ok)

	q, err := p.Flip(map[string]partition.District{"3": 1})
	require.NoError(t, err)
	ok, err = c.Check(q)
	require.NoError(t, err)
	assert.False(t, ok)

	// 10 vs 90 fits a target of 50 only with ε ≥ 0.8.
	loose, err := constraints.WithinPercentOfPopulation(pop, 50, 0.85)
	require.NoError(t, err)
	ok, err = loose.Check(q)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = constraints.WithinPercentOfPopulation(pop, 50, 0)
	assert.ErrorIs(t, err, constraints.ErrInvalidBound)
	_, err = constraints.WithinPercentOfPopulation(pop, 0, 0.5)
	assert.ErrorIs(t, err, constraints.ErrInvalidBound)
	_, err = constraints.WithinPercentOfIdealPopulation(nil, pop, 0.1)
	assert.ErrorIs(t, err, constraints.ErrNilPartition)
	_, err = constraints.WithinPercentOfIdealPopulation(p, "missing", 0.1)
	assert.ErrorIs(t, err, partition.ErrUnknownUpdater)
}

func TestContiguous(t *testing.T) {
	c := constraints.Contiguous()

	ok, err := c.Check(path4(t, partition.Assignment{"0": 0, "1": 0, "2": 1, "3": 1}))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Check(path4(t, partition.Assignment{"0": 0, "1": 1, "2": 1, "3": 0}))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompactnessBound(t *testing.T) {
	initial := path4(t, partition.Assignment{"0": 0, "1": 0, "2": 1, "3": 1})
	n, err := constraints.CutEdgeCount(initial)
	require.NoError(t, err)
	assert.Equal(t, 1.0, n)

	c, err := constraints.CompactnessBound(initial, 2)
	require.NoError(t, err)
	assert.Equal(t, "compactness_bound", c.Name())

	cases := []struct {
		name string
		a    partition.Assignment
		want bool
	}{
		{"initial", partition.Assignment{"0": 0, "1": 0, "2": 1, "3": 1}, true},
		{"two cuts", partition.Assignment{"0": 0, "1": 1, "2": 1, "3": 0}, true},
		{"three cuts", partition.Assignment{"0": 0, "1": 1, "2": 0, "3": 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := c.Check(path4(t, tc.a))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}

	_, err = constraints.CompactnessBound(initial, 0)
	assert.ErrorIs(t, err, constraints.ErrInvalidBound)
	_, err = constraints.CompactnessBound(nil, 2)
	assert.ErrorIs(t, err, constraints.ErrNilPartition)
}

func TestBounds(t *testing.T) {
	p := path4(t, partition.Assignment{"0": 0, "1": 0, "2": 1, "3": 1})
	three := func(*partition.Partition) (float64, error) { return 3, nil }

	ok, _ := constraints.UpperBound("ub", three, 3).Check(p)
	assert.True(t, ok)
	ok, _ = constraints.UpperBound("ub", three, 2.9).Check(p)
	assert.False(t, ok)
	ok, _ = constraints.LowerBound("lb", three, 3).Check(p)
	assert.True(t, ok)
	ok, _ = constraints.LowerBound("lb", three, 3.1).Check(p)
	assert.False(t, ok)

	assert.Panics(t, func() { constraints.New("", three2bool) })
	assert.Panics(t, func() { constraints.New("x", nil) })
}

func three2bool(*partition.Partition) (bool, error) { return true, nil }

// attr_fn.go - attribute generators for synthetic dual graphs:
// populations, vote counts and seed district labels.

package builder

import (
	"fmt"
	"math/rand"
)

// AttrFn produces a vertex attribute from the vertex's construction index
// and an optional *rand.Rand. It must be deterministic for a given index and RNG state.
type AttrFn func(idx int, rng *rand.Rand) float64

// ConstantAttr returns an AttrFn that always yields value.
// Complexity: O(1). Never panics.
func ConstantAttr(value float64) AttrFn {
	return func(int, *rand.Rand) float64 {
		return value
	}
}

// UniformIntAttr samples integers uniformly in [lo, hi] inclusive.
// If rng is nil, yields lo to maintain deterministic fallback.
// Panics if hi < lo.
func UniformIntAttr(lo, hi int) AttrFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformIntAttr: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(_ int, rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// ColumnBands labels index idx of a row-major layout with `cols` columns by
// vertical band: band = (idx mod cols)·bands / cols. Path and Cycle use cols=n.
// Panics if cols < 1 or bands < 1 or bands > cols.
func ColumnBands(cols, bands int) AttrFn {
	if cols < 1 || bands < 1 || bands > cols {
		panic(fmt.Sprintf("ColumnBands: require 1 ≤ bands ≤ cols, got cols=%d, bands=%d", cols, bands))
	}
	return func(idx int, _ *rand.Rand) float64 {
		return float64((idx % cols) * bands / cols)
	}
}

// RowBands labels index idx of a row-major rows×cols layout by horizontal band.
// Panics if rows < 1, cols < 1, bands < 1 or bands > rows.
func RowBands(rows, cols, bands int) AttrFn {
	if rows < 1 || cols < 1 || bands < 1 || bands > rows {
		panic(fmt.Sprintf("RowBands: require 1 ≤ bands ≤ rows, got rows=%d, cols=%d, bands=%d", rows, cols, bands))
	}
	return func(idx int, _ *rand.Rand) float64 {
		return float64((idx / cols) * bands / rows)
	}
}

// Checkerboard alternates 0/1 over a row-major layout with `cols` columns.
// Handy as a two-party vote split.
func Checkerboard(cols int, hi, lo float64) AttrFn {
	if cols < 1 {
		panic(fmt.Sprintf("Checkerboard: cols must be ≥ 1, got %d", cols))
	}
	return func(idx int, _ *rand.Rand) float64 {
		if (idx/cols+idx%cols)%2 == 0 {
			return hi
		}

		return lo
	}
}

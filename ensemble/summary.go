// File: summary.go
// Role: boxplot statistics per sorted-district rank across an ensemble.
// Determinism:
//   - Values are sorted before quantiles are taken, so the summary does not
//     depend on the order in which replicates report samples.
// Concurrency:
//   - Summarizer is safe for concurrent Add.

package ensemble

import (
	"sort"
	"sync"
)

// Quartiles is a five-number summary.
type Quartiles struct {
	Min, Q1, Median, Q3, Max float64
}

// Summary aggregates the Percents of every recorded sample.
type Summary struct {
	// Samples counts the samples folded in; repeated step-0 samples are not.
	Samples int

	// Initial is the step-0 row per election and party.
	Initial map[string]map[string][]float64

	// Ranks holds one Quartiles per sorted-district rank, per election and party.
	Ranks map[string]map[string][]Quartiles
}

// Summarizer accumulates samples into a Summary.
type Summarizer struct {
	mu      sync.Mutex
	n       int
	started bool // a step-0 sample has been folded in
	initial map[string]map[string][]float64
	values  map[string]map[string][][]float64 // election → party → rank → values
}

// NewSummarizer returns an empty Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{
		initial: make(map[string]map[string][]float64),
		values:  make(map[string]map[string][][]float64),
	}
}

// Add folds s into the summary. Replicates share the initial plan, so only
// the first step-0 sample counts; later ones are ignored.
func (z *Summarizer) Add(s Sample) {
	z.mu.Lock()
	defer z.mu.Unlock()

	if s.Step == 0 {
		if z.started {
			return
		}
		z.started = true
	}
	z.n++
	for election, parties := range s.Percents {
		if z.values[election] == nil {
			z.values[election] = make(map[string][][]float64)
		}
		for party, row := range parties {
			ranks := z.values[election][party]
			for len(ranks) < len(row) {
				ranks = append(ranks, nil)
			}
			for i, v := range row {
				ranks[i] = append(ranks[i], v)
			}
			z.values[election][party] = ranks

			if s.Step == 0 {
				if z.initial[election] == nil {
					z.initial[election] = make(map[string][]float64)
				}
				z.initial[election][party] = append([]float64(nil), row...)
			}
		}
	}
}

// Summary computes the quartiles of everything added so far.
func (z *Summarizer) Summary() Summary {
	z.mu.Lock()
	defer z.mu.Unlock()

	out := Summary{
		Samples: z.n,
		Initial: make(map[string]map[string][]float64, len(z.initial)),
		Ranks:   make(map[string]map[string][]Quartiles, len(z.values)),
	}
	for election, parties := range z.initial {
		out.Initial[election] = make(map[string][]float64, len(parties))
		for party, row := range parties {
			out.Initial[election][party] = append([]float64(nil), row...)
		}
	}
	for election, parties := range z.values {
		out.Ranks[election] = make(map[string][]Quartiles, len(parties))
		for party, ranks := range parties {
			qs := make([]Quartiles, len(ranks))
			for i, vals := range ranks {
				qs[i] = quartiles(vals)
			}
			out.Ranks[election][party] = qs
		}
	}

	return out
}

// quartiles sorts a copy of vals and interpolates linearly between order
// statistics.
func quartiles(vals []float64) Quartiles {
	if len(vals) == 0 {
		return Quartiles{}
	}
	s := append([]float64(nil), vals...)
	sort.Float64s(s)

	return Quartiles{
		Min:    s[0],
		Q1:     quantile(s, 0.25),
		Median: quantile(s, 0.5),
		Q3:     quantile(s, 0.75),
		Max:    s[len(s)-1],
	}
}

func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

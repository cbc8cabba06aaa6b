// File: population.go
// Role: population balance constraints over a Tally updater.

package constraints

import (
	"fmt"

	"github.com/katalvlaran/recom/partition"
)

// IdealPopulation returns the total of the popUpdater tally divided by the
// number of districts of p.
func IdealPopulation(p *partition.Partition, popUpdater string) (float64, error) {
	if p == nil {
		return 0, ErrNilPartition
	}
	tally, err := p.Tally(popUpdater)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, d := range p.Districts() {
		total += tally[d]
	}

	return total / float64(p.Len()), nil
}

// WithinPercentOfIdealPopulation fixes the ideal from ref and accepts
// partitions whose every district lies in [ideal·(1−ε), ideal·(1+ε)].
func WithinPercentOfIdealPopulation(ref *partition.Partition, popUpdater string, epsilon float64) (Constraint, error) {
	ideal, err := IdealPopulation(ref, popUpdater)
	if err != nil {
		return nil, fmt.Errorf("constraints: population: %w", err)
	}

	return WithinPercentOfPopulation(popUpdater, ideal, epsilon)
}

// WithinPercentOfPopulation is WithinPercentOfIdealPopulation with an explicit target.
// Errors: ErrInvalidBound unless target > 0 and 0 < epsilon < 1.
func WithinPercentOfPopulation(popUpdater string, target, epsilon float64) (Constraint, error) {
	if target <= 0 || epsilon <= 0 || epsilon >= 1 {
		return nil, fmt.Errorf("constraints: population target=%g epsilon=%g: %w", target, epsilon, ErrInvalidBound)
	}
	lo, hi := target*(1-epsilon), target*(1+epsilon)

	return New("population_balance", func(p *partition.Partition) (bool, error) {
		tally, err := p.Tally(popUpdater)
		if err != nil {
			return false, err
		}
		for _, d := range p.Districts() {
			if v := tally[d]; v < lo || v > hi {
				return false, nil
			}
		}

		return true, nil
	}), nil
}

// Package accept holds acceptance rules: given the current state and a valid
// candidate, decide whether the chain moves.
package accept

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/recom/partition"
)

// Rule names understood by ByName.
const (
	NameAlways     = "always"
	NameMetropolis = "metropolis"
)

// Sentinel errors.
var (
	// ErrUnknownRule is returned by ByName for an unrecognized name.
	ErrUnknownRule = errors.New("accept: unknown rule")

	// ErrNeedScore is returned by ByName when metropolis is selected without a score.
	ErrNeedScore = errors.New("accept: metropolis needs a score function")
)

// Rule decides whether the chain moves from current to candidate. Any
// randomness must come from rng.
type Rule interface {
	Accept(current, candidate *partition.Partition, rng *rand.Rand) (bool, error)
}

// Func adapts a plain function to Rule.
type Func func(current, candidate *partition.Partition, rng *rand.Rand) (bool, error)

// Accept calls f.
func (f Func) Accept(current, candidate *partition.Partition, rng *rand.Rand) (bool, error) {
	return f(current, candidate, rng)
}

// Score is a positive weight of a partition.
type Score func(p *partition.Partition) (float64, error)

// AlwaysAccept accepts every candidate and consumes no randomness.
func AlwaysAccept() Rule {
	return Func(func(_, _ *partition.Partition, _ *rand.Rand) (bool, error) { return true, nil })
}

// MetropolisHastings accepts with probability min(1, score(candidate)/score(current)).
// A non-positive current score always accepts. One rng.Float64 draw is
// consumed per call.
// Panics if score is nil.
func MetropolisHastings(score Score) Rule {
	if score == nil {
		panic("accept: MetropolisHastings(nil)")
	}

	return Func(func(current, candidate *partition.Partition, rng *rand.Rand) (bool, error) {
		u := rng.Float64()
		sc, err := score(current)
		if err != nil {
			return false, fmt.Errorf("accept: score current: %w", err)
		}
		if sc <= 0 {
			return true, nil
		}
		sn, err := score(candidate)
		if err != nil {
			return false, fmt.Errorf("accept: score candidate: %w", err)
		}
		ratio := sn / sc
		if ratio >= 1 {
			return true, nil
		}

		return u < ratio, nil
	})
}

// ByName returns the rule called name ("always" or "metropolis").
// score is only used by metropolis.
//
// Errors: ErrUnknownRule, ErrNeedScore.
func ByName(name string, score Score) (Rule, error) {
	switch name {
	case NameAlways, "":
		return AlwaysAccept(), nil
	case NameMetropolis:
		if score == nil {
			return nil, ErrNeedScore
		}
		return MetropolisHastings(score), nil
	default:
		return nil, fmt.Errorf("accept: %q: %w", name, ErrUnknownRule)
	}
}

// Package proposals defines the Proposal contract used by the chain driver and
// its sentinel errors.
package proposals

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/recom/partition"
)

var (
	// ErrProposalFailed means no valid candidate was found this time; the
	// chain retries within the same step.
	ErrProposalFailed = errors.New("proposals: proposal failed")

	// ErrGraphDisconnected means the merged districts do not induce a
	// connected subgraph, so no spanning tree exists. Retried like ErrProposalFailed.
	ErrGraphDisconnected = errors.New("proposals: merged districts are disconnected")
)

// Proposal produces a candidate successor of p using only rng for randomness.
type Proposal interface {
	Propose(p *partition.Partition, rng *rand.Rand) (*partition.Partition, error)
}

// Func adapts a plain function to Proposal.
type Func func(p *partition.Partition, rng *rand.Rand) (*partition.Partition, error)

// Propose calls f(p, rng).
func (f Func) Propose(p *partition.Partition, rng *rand.Rand) (*partition.Partition, error) {
	return f(p, rng)
}

// Retryable reports whether err is a failure the chain should retry.
func Retryable(err error) bool {
	return errors.Is(err, ErrProposalFailed) || errors.Is(err, ErrGraphDisconnected)
}

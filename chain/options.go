// File: options.go
// Role: functional options for New. Constructors panic on nonsense input.

package chain

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
)

// DefaultMaxProposalRetries bounds consecutive failed attempts within one step.
const DefaultMaxProposalRetries = 100

const defaultSeed int64 = 1

type options struct {
	rng          *rand.Rand
	maxRetries   int
	logger       *slog.Logger
	retryInvalid bool
}

func defaultOptions() options {
	return options{
		maxRetries: DefaultMaxProposalRetries,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Chain.
type Option func(*options)

// WithRand sets the chain's random source. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("chain: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed seeds a private random source. Seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = defaultSeed
	}
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxProposalRetries sets how many consecutive failures one step tolerates
// before the chain stalls. Panics if n < 0.
func WithMaxProposalRetries(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("chain: WithMaxProposalRetries(%d)", n))
	}
	return func(o *options) {
		o.maxRetries = n
	}
}

// WithLogger sets the structured logger. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("chain: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithRetryInvalid makes candidates that fail validation count as failed
// attempts of the same step, instead of consuming the step by re-emitting the
// current state.
func WithRetryInvalid() Option {
	return func(o *options) {
		o.retryInvalid = true
	}
}

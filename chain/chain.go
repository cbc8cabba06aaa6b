// File: chain.go
// Role: the Markov chain driver.
// Determinism:
//   - All randomness (proposal and acceptance) is drawn from one *rand.Rand in
//     a fixed order, so a seed fixes the emitted sequence.

package chain

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/recom/accept"
	"github.com/katalvlaran/recom/constraints"
	"github.com/katalvlaran/recom/partition"
	"github.com/katalvlaran/recom/proposals"
)

// Chain is a pull iterator over the states of a Markov chain.
type Chain struct {
	proposal  proposals.Proposal
	validator *constraints.Validator
	rule      accept.Rule
	opts      options
	log       *slog.Logger

	totalSteps int
	current    *partition.Partition

	state    State
	step     int // index of the last emitted element, -1 before the first
	accepted bool
	err      error
	stats    Stats
}

// New validates initial and returns a chain that will emit totalSteps states.
// A nil validator accepts everything and a nil rule is AlwaysAccept.
//
// Errors:
//   - ErrNilComponent for a nil proposal or initial partition.
//   - ErrInvalidSteps for totalSteps < 0.
//   - ErrInvalidInitialState naming the failing constraint.
func New(
	proposal proposals.Proposal,
	validator *constraints.Validator,
	rule accept.Rule,
	initial *partition.Partition,
	totalSteps int,
	opts ...Option,
) (*Chain, error) {
	if proposal == nil || initial == nil {
		return nil, ErrNilComponent
	}
	if totalSteps < 0 {
		return nil, fmt.Errorf("chain: total steps %d: %w", totalSteps, ErrInvalidSteps)
	}
	if validator == nil {
		validator = constraints.NewValidator()
	}
	if rule == nil {
		rule = accept.AlwaysAccept()
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(defaultSeed))
	}

	res, err := validator.Validate(initial)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInitialState, err)
	}
	if !res.OK {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInitialState, res.Failed)
	}

	return &Chain{
		proposal:   proposal,
		validator:  validator,
		rule:       rule,
		opts:       o,
		log:        o.logger.With(slog.String("component", "chain")),
		totalSteps: totalSteps,
		current:    initial,
		state:      Ready,
		step:       -1,
	}, nil
}

// Next advances to the next element. It returns false when the chain has
// emitted totalSteps elements or failed; check Err afterwards.
func (c *Chain) Next() bool {
	if c.state == Done {
		return false
	}
	next := c.step + 1
	if next >= c.totalSteps {
		c.finish(nil)
		return false
	}
	if next == 0 {
		c.emit(0, false)
		return true
	}

	accepted, err := c.advance(next)
	if err != nil {
		c.finish(err)
		return false
	}
	c.emit(next, accepted)

	return true
}

// advance runs one step: propose until a candidate is obtained, validate it
// and apply the acceptance rule. It reports whether current changed.
func (c *Chain) advance(step int) (bool, error) {
	attempts := 0
	for {
		c.state = Proposing
		cand, err := c.proposal.Propose(c.current, c.opts.rng)
		if err != nil {
			if !proposals.Retryable(err) {
				return false, fmt.Errorf("chain: step %d: %w", step, err)
			}
			c.stats.ProposalFailures++
			attempts++
			c.log.Debug("proposal failed",
				slog.Int("step", step), slog.Int("attempt", attempts), slog.Any("error", err))
			if attempts > c.opts.maxRetries {
				return false, &StalledError{Step: step, Attempts: attempts, Cause: err}
			}
			continue
		}

		c.state = Checking
		res, err := c.validator.Validate(cand)
		if err != nil {
			return false, fmt.Errorf("chain: step %d: %w", step, err)
		}
		if !res.OK {
			c.stats.RejectedByConstraint++
			if !c.opts.retryInvalid {
				return false, nil
			}
			attempts++
			cause := fmt.Errorf("chain: candidate violates %s", res.Failed)
			c.log.Debug("candidate invalid",
				slog.Int("step", step), slog.Int("attempt", attempts), slog.String("constraint", res.Failed))
			if attempts > c.opts.maxRetries {
				return false, &StalledError{Step: step, Attempts: attempts, Cause: cause}
			}
			continue
		}

		ok, err := c.rule.Accept(c.current, cand, c.opts.rng)
		if err != nil {
			return false, fmt.Errorf("chain: step %d: %w", step, err)
		}
		if !ok {
			c.stats.RejectedByRule++
			return false, nil
		}
		c.stats.Accepted++
		c.current = cand

		return true, nil
	}
}

func (c *Chain) emit(step int, accepted bool) {
	c.state = Emitting
	c.step = step
	c.accepted = accepted
	c.stats.Emitted++
}

func (c *Chain) finish(err error) {
	c.state = Done
	c.err = err
	if err == nil {
		return
	}
	var stalled *StalledError
	if errors.As(err, &stalled) {
		c.log.Warn("chain stalled",
			slog.Int("step", stalled.Step), slog.Int("attempt", stalled.Attempts), slog.Any("error", stalled.Cause))
		return
	}
	c.log.Error("chain failed", slog.Int("step", c.step+1), slog.Any("error", err))
}

// Partition returns the element produced by the last successful Next.
// Before the first Next it is the initial partition.
func (c *Chain) Partition() *partition.Partition { return c.current }

// Step returns the index of the last emitted element (-1 before the first).
func (c *Chain) Step() int { return c.step }

// Accepted reports whether the last emitted element came from an accepted
// candidate. It is false for step 0 and for re-emitted states.
func (c *Chain) Accepted() bool { return c.accepted }

// Err returns the error that ended the chain, or nil.
func (c *Chain) Err() error { return c.err }

// State returns the driver state.
func (c *Chain) State() State { return c.state }

// TotalSteps returns the number of elements the chain emits when it completes.
func (c *Chain) TotalSteps() int { return c.totalSteps }

// Stats returns a snapshot of the counters.
func (c *Chain) Stats() Stats { return c.stats }

// All returns an iterator over (step, partition) pairs. It drives the same
// Chain, so it can be consumed only once; check Err after the loop.
func (c *Chain) All() iter.Seq2[int, *partition.Partition] {
	return func(yield func(int, *partition.Partition) bool) {
		for c.Next() {
			if !yield(c.step, c.current) {
				return
			}
		}
	}
}

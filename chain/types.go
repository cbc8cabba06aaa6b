// File: types.go
// Role: driver states, sentinel errors, StalledError and Stats.

package chain

import (
	"errors"
	"fmt"
)

// State is the driver's position in its step cycle.
type State int

// Driver states. A chain moves Ready → (Proposing → Checking)* → Emitting and
// back to Proposing for each step, ending in Done.
const (
	Ready State = iota
	Proposing
	Checking
	Emitting
	Done
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Proposing:
		return "proposing"
	case Checking:
		return "checking"
	case Emitting:
		return "emitting"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sentinel errors.
var (
	// ErrInvalidInitialState is returned by New when the initial partition
	// fails a constraint.
	ErrInvalidInitialState = errors.New("chain: initial state violates constraints")

	// ErrInvalidSteps is returned by New for a negative step count.
	ErrInvalidSteps = errors.New("chain: total steps must be >= 0")

	// ErrNilComponent is returned by New for a nil proposal or initial partition.
	ErrNilComponent = errors.New("chain: nil component")

	// ErrChainStalled matches every *StalledError.
	ErrChainStalled = errors.New("chain: stalled")
)

// StalledError reports a step whose proposal failed more often in a row than
// the retry limit allows.
type StalledError struct {
	Step     int   // step that could not be completed
	Attempts int   // consecutive failed attempts
	Cause    error // last failure
}

func (e *StalledError) Error() string {
	return fmt.Sprintf("chain: stalled at step %d after %d attempts: %v", e.Step, e.Attempts, e.Cause)
}

// Is makes errors.Is(err, ErrChainStalled) true.
func (e *StalledError) Is(target error) bool { return target == ErrChainStalled }

// Unwrap returns the last failure.
func (e *StalledError) Unwrap() error { return e.Cause }

// Stats counts what happened so far.
type Stats struct {
	Emitted              int // partitions emitted, the initial one included
	Accepted             int // candidates that became the current state
	RejectedByConstraint int // candidates that failed validation
	RejectedByRule       int // valid candidates refused by the acceptance rule
	ProposalFailures     int // retryable proposal errors
}

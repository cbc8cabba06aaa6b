// File: types.go
// Role: District/Assignment types, sentinel errors and the updater contracts.

package partition

import (
	"errors"
)

// District identifies a part of a plan.
type District int

// Assignment maps every node ID to its district.
type Assignment map[string]District

// Sentinel errors for partition construction and updater access.
var (
	// ErrNilGraph is returned when New receives a nil graph.
	ErrNilGraph = errors.New("partition: graph is nil")

	// ErrInvalidAssignment covers unassigned nodes, unknown nodes, empty
	// districts, and flips into districts that do not exist.
	ErrInvalidAssignment = errors.New("partition: invalid assignment")

	// ErrUnknownUpdater is returned by Value for a name nobody registered.
	ErrUnknownUpdater = errors.New("partition: unknown updater")

	// ErrUpdaterType is returned by ValueAs when the cached value has another type.
	ErrUpdaterType = errors.New("partition: updater value has unexpected type")

	// ErrDuplicateUpdater is returned when a name is registered twice.
	ErrDuplicateUpdater = errors.New("partition: duplicate updater")

	// ErrInvalidUpdater is returned for an empty name or a nil updater.
	ErrInvalidUpdater = errors.New("partition: invalid updater")

	// ErrNotTwoParty is returned by two-party election metrics on other elections.
	ErrNotTwoParty = errors.New("partition: metric requires exactly two parties")
)

// Updater derives a value from a partition. Implementations must be pure:
// the same partition yields the same value.
type Updater interface {
	Compute(p *Partition) (any, error)
}

// IncrementalUpdater can derive its value for a flipped partition from the
// predecessor's value. ComputeFrom must return exactly what Compute would.
// prev must be treated as read-only: other partitions may still share it.
type IncrementalUpdater interface {
	Updater
	ComputeFrom(p *Partition, prev any) (any, error)
}

// AttributeRequirer declares node attributes an updater reads. New checks
// them up front so a missing column is a load error, not a mid-chain failure.
type AttributeRequirer interface {
	RequiredAttrs() []string
}

// UpdaterFunc adapts a plain function to Updater.
type UpdaterFunc func(p *Partition) (any, error)

// Compute calls f(p).
func (f UpdaterFunc) Compute(p *Partition) (any, error) { return f(p) }

// File: constraints.go
// Role: Constraint contract, Validator and scalar bounds.

package constraints

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/recom/partition"
)

// Sentinel errors.
var (
	// ErrInvalidBound is returned by constructors given a non-positive epsilon,
	// multiplier or target.
	ErrInvalidBound = errors.New("constraints: invalid bound")

	// ErrNilPartition is returned when a reference partition is nil.
	ErrNilPartition = errors.New("constraints: partition is nil")
)

// Constraint is a named predicate over partitions.
type Constraint interface {
	Name() string
	Check(p *partition.Partition) (bool, error)
}

type funcConstraint struct {
	name string
	fn   func(p *partition.Partition) (bool, error)
}

func (c funcConstraint) Name() string { return c.name }

func (c funcConstraint) Check(p *partition.Partition) (bool, error) { return c.fn(p) }

// New wraps fn as a Constraint called name. Panics on an empty name or nil fn.
func New(name string, fn func(p *partition.Partition) (bool, error)) Constraint {
	if name == "" || fn == nil {
		panic("constraints: New requires a name and a function")
	}

	return funcConstraint{name: name, fn: fn}
}

// Result is the outcome of a Validate call. Failed names the first
// constraint that rejected the partition; it is empty when OK.
type Result struct {
	OK     bool
	Failed string
}

// Validator checks constraints in order, short-circuiting on the first failure.
type Validator struct {
	constraints []Constraint
}

// NewValidator returns a validator over cs (nil entries are skipped).
// An empty validator accepts every partition.
func NewValidator(cs ...Constraint) *Validator {
	v := &Validator{}
	for _, c := range cs {
		if c != nil {
			v.constraints = append(v.constraints, c)
		}
	}

	return v
}

// Names returns the constraint names in evaluation order.
func (v *Validator) Names() []string {
	out := make([]string, len(v.constraints))
	for i, c := range v.constraints {
		out[i] = c.Name()
	}

	return out
}

// Validate runs every constraint until one fails or errors.
// A constraint error is returned wrapped with that constraint's name.
func (v *Validator) Validate(p *partition.Partition) (Result, error) {
	for _, c := range v.constraints {
		ok, err := c.Check(p)
		if err != nil {
			return Result{Failed: c.Name()}, fmt.Errorf("constraints: %s: %w", c.Name(), err)
		}
		if !ok {
			return Result{Failed: c.Name()}, nil
		}
	}

	return Result{OK: true}, nil
}

// Metric maps a partition to a scalar.
type Metric func(p *partition.Partition) (float64, error)

// UpperBound accepts partitions whose metric is at most bound.
func UpperBound(name string, metric Metric, bound float64) Constraint {
	return New(name, func(p *partition.Partition) (bool, error) {
		v, err := metric(p)
		if err != nil {
			return false, err
		}

		return v <= bound, nil
	})
}

// LowerBound accepts partitions whose metric is at least bound.
func LowerBound(name string, metric Metric, bound float64) Constraint {
	return New(name, func(p *partition.Partition) (bool, error) {
		v, err := metric(p)
		if err != nil {
			return false, err
		}

		return v >= bound, nil
	})
}

// CutEdgeCount is the number of cut edges of p.
func CutEdgeCount(p *partition.Partition) (float64, error) {
	s, err := p.CutEdges()
	if err != nil {
		return 0, err
	}

	return float64(s.Cardinality()), nil
}

// CompactnessBound bounds the cut-edge count at multiplier times the count of
// initial. Errors: ErrNilPartition, ErrInvalidBound for multiplier <= 0.
func CompactnessBound(initial *partition.Partition, multiplier float64) (Constraint, error) {
	if initial == nil {
		return nil, ErrNilPartition
	}
	if multiplier <= 0 {
		return nil, fmt.Errorf("constraints: compactness multiplier %g: %w", multiplier, ErrInvalidBound)
	}
	n, err := CutEdgeCount(initial)
	if err != nil {
		return nil, fmt.Errorf("constraints: compactness: %w", err)
	}

	return UpperBound("compactness_bound", CutEdgeCount, multiplier*n), nil
}

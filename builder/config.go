// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn     = decimalID   ("0","1","2",...)
//   • rng      = nil          (pure/deterministic unless seeded)
//   • attrs    = none
//   • geometry = false

package builder

import (
	"math/rand"
	"strconv"
)

// attrSpec binds a vertex attribute name to its generator.
type attrSpec struct {
	name string
	fn   AttrFn
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic attribute generators; nil means “no randomness”.
	rng *rand.Rand
	// Vertex attributes, generated in declaration order for every vertex.
	attrs []attrSpec
	// geometry stamps unit-square area/perimeter attributes after construction.
	geometry bool
}

// Unit-square geometry attribute names, shared with the partition geographic updaters.
const (
	AttrArea          = "area"
	AttrBoundaryPerim = "boundary_perim"
	AttrSharedPerim   = "shared_perim"

	unitSides = 4
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: decimalID,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil. Grid ignores it and always uses "r,c".
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic attribute generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithVertexAttr generates the numeric attribute name on every vertex.
// Generators run in option order, vertex by vertex, so a seeded RNG yields a fixed result.
// Panics on an empty name or nil generator.
func WithVertexAttr(name string, fn AttrFn) BuilderOption {
	if name == "" {
		panic("builder: WithVertexAttr(empty name)")
	}
	if fn == nil {
		panic("builder: WithVertexAttr(nil)")
	}
	return func(c *builderConfig) {
		c.attrs = append(c.attrs, attrSpec{name: name, fn: fn})
	}
}

// WithUnitGeometry treats every vertex as a unit square:
// area=1, shared_perim=1 on every edge, boundary_perim=4-degree.
// For Grid this is the exact geometry of the lattice of cells.
func WithUnitGeometry() BuilderOption {
	return func(c *builderConfig) {
		c.geometry = true
	}
}

// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// The returned graph is NOT frozen: callers may add attributes before handing it
// to partition.New, which freezes it.

package builder

import (
	"fmt"

	"github.com/katalvlaran/recom/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices through addVertex so attribute generators run.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, applies all constructors in order, then
// stamps unit geometry when WithUnitGeometry is set.
// Any constructor error is wrapped with the context "BuildGraph: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if cfg.geometry {
		if err := stampUnitGeometry(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertex inserts id and runs every configured attribute generator for index idx.
func addVertex(g *core.Graph, cfg builderConfig, method, id string, idx int) error {
	if err := g.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}
	for _, a := range cfg.attrs {
		if err := g.SetVertexAttr(id, a.name, a.fn(idx, cfg.rng)); err != nil {
			return fmt.Errorf("%s: attr %s on %s: %w", method, a.name, id, err)
		}
	}

	return nil
}

// stampUnitGeometry writes area, boundary_perim and shared_perim as if every
// vertex were a unit square glued to its neighbors along one side each.
func stampUnitGeometry(g *core.Graph) error {
	for _, id := range g.Vertices() {
		deg, err := g.Degree(id)
		if err != nil {
			return err
		}
		boundary := unitSides - deg
		if boundary < 0 {
			boundary = 0
		}
		if err = g.SetVertexAttr(id, AttrArea, 1); err != nil {
			return err
		}
		if err = g.SetVertexAttr(id, AttrBoundaryPerim, float64(boundary)); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if err := g.SetEdgeAttr(e.ID, AttrSharedPerim, 1); err != nil {
			return fmt.Errorf("geometry: %w: %w", ErrConstructFailed, err)
		}
	}

	return nil
}

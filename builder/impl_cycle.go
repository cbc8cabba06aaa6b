// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/recom/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := addVertex(g, cfg, methodCycle, cfg.idFn(i), i); err != nil {
				return err
			}
		}
		// for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			uID := cfg.idFn(i)
			vID := cfg.idFn((i + 1) % n)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCycle, uID, vID, err)
			}
		}

		return nil
	}
}

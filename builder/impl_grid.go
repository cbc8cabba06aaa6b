// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell),
//     the textbook synthetic dual graph for redistricting experiments.
//   • Vertex IDs use a fixed, documented scheme "r,c" (row-major order).
//     This is a deliberate exception to cfg.idFn to keep coordinates explicit.
//   • Attribute generators receive idx = r*cols + c.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds edges to right (r,c+1) and bottom (r+1,c) neighbors where they exist.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(1) extra.
//
// Determinism:
//   • Stable vertex order: row-major (r asc, then c asc).
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/recom/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c" - fixed, documented coordinate ID scheme
)

// GridID returns the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addVertex(g, cfg, methodGrid, GridID(r, c), r*cols+c); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					v := GridID(r, c+1)
					if _, err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodGrid, u, v, err)
					}
				}
				if r+1 < rows {
					v := GridID(r+1, c)
					if _, err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodGrid, u, v, err)
					}
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: recom/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that construction could not complete
// (nil constructor, attribute or geometry stamping failure).
var ErrConstructFailed = errors.New("builder: construction failed")

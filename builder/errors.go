// SPDX-License-Identifier: MIT
// Package: primmst/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w: "Cycle: n=2 < min=3: <sentinel>".
//   • Option constructors (WithX) panic on meaningless values; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates the graph has fewer vertices than the
// constructor needs (e.g. Cycle on n < 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not complete, e.g. a nil
// constructor or no room left for another simple edge.
var ErrConstructFailed = errors.New("builder: construction failed")

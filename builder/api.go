// SPDX-License-Identifier: MIT
// Package: primmst/builder
//
// api.go — public entry point for graph construction.
//
// Contract:
//   • BuildGraph creates an n-vertex core.Graph and applies constructors in order.
//   • Constructors never panic; they return sentinel-wrapped errors.
//   • Equal inputs (including RNG seed) yield identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primmst/core"
)

// Constructor adds edges to g according to cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a Graph with n vertices using gopts, resolves bopts
// once, and applies each constructor sequentially.
//
// Errors:
//   - core.ErrBadVertexCount if n < 0.
//   - ErrConstructFailed     for a nil constructor.
//   - any constructor error, wrapped with "BuildGraph:".
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// RandomConnected builds an n-vertex graph that is guaranteed connected: a
// Path spine plus extra random edges. Requires WithSeed or WithRand.
func RandomConnected(n, extra int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(n, nil, opts, Path(), RandomEdges(extra))
}

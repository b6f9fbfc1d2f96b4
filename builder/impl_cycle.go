// SPDX-License-Identifier: MIT
// Package: primmst/builder
//
// impl_cycle.go — Cycle constructor: edges i–(i+1)%n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primmst/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that closes all vertices into one ring.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			u, v := i, (i+1)%n
			w := cfg.weight()
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: primmst/builder
//
// impl_random.go — RandomEdges constructor: k extra non-loop edges between
// uniformly drawn endpoints.
//
// Contract:
//   • Requires cfg.rng (else ErrNeedRandSource).
//   • Loops are never drawn.
//   • Without core.WithMultiEdges a drawn pair that already exists is
//     redrawn; once the graph is complete, ErrConstructFailed.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/primmst/core"
)

const methodRandomEdges = "RandomEdges"

// RandomEdges returns a Constructor that adds k random edges.
func RandomEdges(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k <= 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomEdges, ErrNeedRandSource)
		}
		n := g.VertexCount()
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodRandomEdges, n, ErrTooFewVertices)
		}
		if !g.AllowsMultiEdges() && g.EdgeCount()+k > n*(n-1)/2 {
			return fmt.Errorf("%s: %d edges do not fit in K_%d: %w", methodRandomEdges, g.EdgeCount()+k, n, ErrConstructFailed)
		}

		for added := 0; added < k; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			w := cfg.weight()
			err := g.AddEdge(u, v, w)
			if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				// Pair taken; draw again.
				continue
			}
			if err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodRandomEdges, u, v, w, err)
			}
			added++
		}

		return nil
	}
}

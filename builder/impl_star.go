// SPDX-License-Identifier: MIT
// Package: primmst/builder
//
// impl_star.go — Star constructor: the center joined to every other vertex.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primmst/core"
)

const methodStar = "Star"

// Star returns a Constructor that joins center to every other vertex in
// ascending order. center must be a vertex of the graph.
func Star(center int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if center < 0 || center >= n {
			return fmt.Errorf("%s: center=%d with n=%d: %w", methodStar, center, n, core.ErrVertexOutOfRange)
		}
		for v := 0; v < n; v++ {
			if v == center {
				continue
			}
			w := cfg.weight()
			if err := g.AddEdge(center, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodStar, center, v, w, err)
			}
		}

		return nil
	}
}

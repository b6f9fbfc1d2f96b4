// SPDX-License-Identifier: MIT
// Package: primmst/builder
//
// impl_complete.go — Complete constructor K_n: every pair u<v once,
// emitted in lexicographic (u, v) order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primmst/core"
)

const methodComplete = "Complete"

// Complete returns a Constructor that joins every pair of distinct vertices.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				w := cfg.weight()
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodComplete, u, v, w, err)
				}
			}
		}

		return nil
	}
}

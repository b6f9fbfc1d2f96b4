// SPDX-License-Identifier: MIT
// Package: primmst/builder
//
// impl_path.go — Path constructor: edges i–(i+1) for i = 0..n-2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primmst/core"
)

const methodPath = "Path"

// Path returns a Constructor that joins consecutive vertices into a simple path.
// A graph with fewer than two vertices gets no edges.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i := 1; i < g.VertexCount(); i++ {
			w := cfg.weight()
			if err := g.AddEdge(i-1, i, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodPath, i-1, i, w, err)
			}
		}

		return nil
	}
}

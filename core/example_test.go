package core_test

import (
	"fmt"

	"github.com/katalvlaran/primmst/core"
)

// ExampleGraph_Neighbors builds a triangle and lists the neighbours of vertex 0.
func ExampleGraph_Neighbors() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 4)

	nbs, _ := g.Neighbors(0)
	for _, nb := range nbs {
		fmt.Printf("0-%d(%d) ", nb.Vertex, nb.Weight)
	}
	fmt.Println()
	// Output: 0-1(1) 0-2(4)
}

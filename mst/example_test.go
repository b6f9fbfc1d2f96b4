package mst_test

import (
	"fmt"

	"github.com/katalvlaran/primmst/core"
	"github.com/katalvlaran/primmst/mst"
)

// ExamplePrim_pentagon demonstrates Prim's algorithm on a 5-vertex ring.
// Edges: 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12).
// The MST drops the heaviest edge 0–4; total weight = 11.
func ExamplePrim_pentagon() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 4, 12)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 3)
	_ = g.AddEdge(3, 4, 5)

	res, err := mst.Prim(g, mst.WithStart(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", res.Total)
	for _, e := range res.Edges() {
		fmt.Printf(" %d-%d", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}

// ExampleResult_Tree shows how a disconnected graph is reported: Prim
// succeeds, Tree refuses.
func ExampleResult_Tree() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(2, 3, 5)

	res, _ := mst.Prim(g)
	fmt.Println("total:", res.Total, "connected:", res.Connected())
	if _, err := res.Tree(); err != nil {
		fmt.Println(err)
	}
	// Output:
	// total: 4 connected: false
	// 2 vertices unreached from 0: mst: graph is disconnected
}

// ExampleKruskal_triangle demonstrates Kruskal's algorithm on a triangle.
func ExampleKruskal_triangle() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 4)

	f, _ := mst.Kruskal(g)
	fmt.Printf("Total: %d, Components: %d\n", f.Total, f.Components)
	// Output: Total: 3, Components: 1
}

// Package primmst computes minimum spanning trees of undirected weighted
// graphs with Prim's algorithm over an indexed binary min-heap.
//
// Subpackages:
//
//	indexheap/ — min-heap with a vertex → slot reverse index (Insert, ExtractMin, DeleteAt, DecreaseKey)
//	core/      — dense-id undirected weighted Graph with adjacency lists
//	mst/       — Prim (heap driven), Kruskal (union-find cross-check), Compute
//	builder/   — deterministic and seeded random graph constructors
//	loader/    — the "n m" + "u v w" text format, 1-based ids on disk
//	cmd/primmst — command-line front end
//
// Quick example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(0, 2, 4)
//	res, _ := mst.Prim(g)   // res.Total == 3
//
//	go install github.com/katalvlaran/primmst/cmd/primmst@latest
package primmst

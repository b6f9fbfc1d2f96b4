package mst_test

import (
	"testing"

	"github.com/katalvlaran/primmst/builder"
	"github.com/katalvlaran/primmst/mst"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g, _ := builder.RandomConnected(500, 1501, builder.WithSeed(42), builder.WithUniformWeight(1, 100))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Kruskal(g)
	}
}

// BenchmarkPrim measures both relaxation strategies on the same graph,
// always starting from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g, _ := builder.RandomConnected(500, 1501, builder.WithSeed(42), builder.WithUniformWeight(1, 100))
	for _, s := range []mst.Strategy{mst.StrategyReinsert, mst.StrategyDecreaseKey} {
		b.Run(s.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = mst.Prim(g, mst.WithStrategy(s))
			}
		})
	}
}

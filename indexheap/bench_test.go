package indexheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/primmst/indexheap"
)

// BenchmarkInsertExtract fills a 10k heap with random weights and drains it.
func BenchmarkInsertExtract(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(1))
	weights := make([]int64, n)
	for i := range weights {
		weights[i] = r.Int63n(1 << 20)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := indexheap.New(n)
		for v, w := range weights {
			_ = h.Insert(indexheap.Element{Vertex: v, Tail: indexheap.NoTail, Weight: indexheap.Reached(w)})
		}
		for !h.Empty() {
			_, _ = h.ExtractMin()
		}
	}
}

// BenchmarkRelax compares the two relaxation paths on a full heap of
// Unreached elements, lowering every vertex once.
func BenchmarkRelax(b *testing.B) {
	const n = 10000
	build := func() *indexheap.Heap {
		h, _ := indexheap.New(n)
		for v := 0; v < n; v++ {
			_ = h.Insert(indexheap.Element{Vertex: v, Tail: indexheap.NoTail})
		}
		return h
	}

	b.Run("reinsert", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			h := build()
			b.StartTimer()
			for v := 0; v < n; v++ {
				e, _ := h.DeleteAt(h.Position(v))
				e.Weight = indexheap.Reached(int64(n - v))
				_ = h.Insert(e)
			}
		}
	})
	b.Run("decrease-key", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			h := build()
			b.StartTimer()
			for v := 0; v < n; v++ {
				_ = h.DecreaseKey(v, indexheap.Reached(int64(n-v)), 0)
			}
		}
	})
}

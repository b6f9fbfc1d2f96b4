// Package indexheap provides the indexed binary min-heap that drives Prim's
// algorithm in package mst.
//
// What & Why
//
//   - A textbook binary heap can find its minimum in O(1) but needs a linear
//     scan to locate an arbitrary element. Prim's algorithm has to find the
//     entry of a specific vertex each time a cheaper edge to it is
//     discovered, so the heap keeps a reverse index vertex → slot next to its
//     slot array and updates it on every swap.
//
//   - With the index, removing the entry of any vertex costs O(log n):
//     look up its slot, then DeleteAt(slot).
//
// Element and Weight
//
//   - Element carries Vertex (dense id in [0, Cap())), Tail (the vertex it is
//     currently best reached through, or NoTail) and Weight.
//   - Weight is either Reached(cost) or Unreached (the zero value). Unreached
//     orders after every finite cost and is never summed, which removes the
//     overflow hazard of a numeric "infinity".
//
// Operations
//
//   - Insert(e)          append + bubble up.         ErrHeapFull when full.
//   - ExtractMin()       pop root + bubble down.      ErrHeapEmpty when empty.
//   - DeleteAt(i)        remove slot i + one-way fix. ErrInvalidPosition when i ∉ [0, Len()).
//   - DecreaseKey(v,w,t) in-place lowering + bubble up.
//   - Position(v), Contains(v), At(i), Peek(), Len(), Cap(), Validate().
//
// Invariants
//
//	Order: slots[(i-1)/2].Weight ≤ slots[i].Weight for every i > 0.
//	Index: position[slots[i].Vertex] == i for every slot; Absent otherwise.
//
// Both hold after every public call; a call that returns an error leaves the
// heap unchanged. Ties are broken by structural position only.
//
// Example:
//
//	h, _ := indexheap.New(3)
//	_ = h.Insert(indexheap.Element{Vertex: 0, Tail: indexheap.NoTail, Weight: indexheap.Reached(6)})
//	_ = h.Insert(indexheap.Element{Vertex: 1, Tail: indexheap.NoTail, Weight: indexheap.Reached(2)})
//	top, _ := h.ExtractMin() // vertex 1
package indexheap

// SPDX-License-Identifier: MIT
// Package: primmst/indexheap
//
// types.go — Weight sum type, heap Element, sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Operations attach context with %w (vertex, slot, size) at the call site.
//   • A failed operation never mutates the heap.

package indexheap

import (
	"errors"
	"strconv"
)

// Absent is the position reported for a vertex that is not in the heap.
const Absent = -1

// NoTail marks an Element that has not been reached through any vertex yet.
const NoTail = -1

// Sentinel errors for heap operations.
var (
	// ErrHeapFull indicates Insert on a heap whose size already equals its capacity.
	ErrHeapFull = errors.New("indexheap: heap is full")

	// ErrHeapEmpty indicates ExtractMin or Peek on a heap of size zero.
	ErrHeapEmpty = errors.New("indexheap: heap is empty")

	// ErrInvalidPosition indicates a slot index outside [0, Len()).
	ErrInvalidPosition = errors.New("indexheap: invalid position")

	// ErrBadCapacity indicates a negative capacity passed to New.
	ErrBadCapacity = errors.New("indexheap: capacity must be non-negative")

	// ErrVertexOutOfRange indicates a vertex identifier outside [0, Cap()).
	ErrVertexOutOfRange = errors.New("indexheap: vertex out of range")

	// ErrDuplicateVertex indicates Insert of a vertex that is already present.
	ErrDuplicateVertex = errors.New("indexheap: vertex already in heap")

	// ErrVertexNotFound indicates DecreaseKey on a vertex that is not present.
	ErrVertexNotFound = errors.New("indexheap: vertex not in heap")

	// ErrWeightIncrease indicates DecreaseKey with a weight larger than the current one.
	ErrWeightIncrease = errors.New("indexheap: new weight is larger than current")

	// ErrCorrupt indicates Validate found a broken heap-order or index invariant.
	ErrCorrupt = errors.New("indexheap: invariant violated")
)

// Weight is the ordering key of an Element: either a finite cost (Reached)
// or infinity (Unreached). The zero value is Unreached.
//
// Modelling infinity as a state instead of math.MaxInt64 keeps comparisons
// total and keeps it out of any sum.
type Weight struct {
	cost    int64
	reached bool
}

// Reached returns a finite weight with the given cost.
func Reached(cost int64) Weight {
	return Weight{cost: cost, reached: true}
}

// Unreached returns the infinite weight.
func Unreached() Weight {
	return Weight{}
}

// IsReached reports whether w is finite.
func (w Weight) IsReached() bool { return w.reached }

// Cost returns the finite cost and true, or 0 and false for Unreached.
func (w Weight) Cost() (int64, bool) {
	if !w.reached {
		return 0, false
	}

	return w.cost, true
}

// Less reports whether w orders strictly before o.
// Any finite weight is less than Unreached; two Unreached weights are equal.
func (w Weight) Less(o Weight) bool {
	if !w.reached {
		return false
	}
	if !o.reached {
		return true
	}

	return w.cost < o.cost
}

// String renders the cost, or "inf" for Unreached.
func (w Weight) String() string {
	if !w.reached {
		return "inf"
	}

	return strconv.FormatInt(w.cost, 10)
}

// Element is one heap entry: a vertex, the vertex it is currently best
// reached through, and the cost of that connection.
type Element struct {
	// Vertex identifies the entry; dense in [0, Cap()).
	Vertex int

	// Tail is the vertex through which Vertex is best reached, or NoTail.
	Tail int

	// Weight is the ordering key; smaller is better.
	Weight Weight
}

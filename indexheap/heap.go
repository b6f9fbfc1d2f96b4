// SPDX-License-Identifier: MIT
// Package: primmst/indexheap
//
// heap.go — binary min-heap with a vertex → slot reverse index.
//
// Contract:
//   • heap order: slots[(i-1)/2].Weight ≤ slots[i].Weight for every i > 0.
//   • index consistency: position[slots[i].Vertex] == i for every slot,
//     position[v] == Absent for every vertex not in a slot.
//   • Both hold whenever a public method returns.
//   • Every swap updates position for both vertices it moves.
//
// Complexity:
//   • Insert, ExtractMin, DeleteAt, DecreaseKey: O(log n).
//   • Position, Contains, At, Peek: O(1).

package indexheap

import "fmt"

// Heap is a fixed-capacity min-heap of Elements keyed by Weight, indexed by
// Element.Vertex. It is not safe for concurrent use.
type Heap struct {
	slots    []Element // len == size, cap == capacity
	position []int     // vertex → slot index or Absent; len == capacity
}

// New returns an empty Heap that holds at most capacity elements with
// vertices in [0, capacity).
// Returns ErrBadCapacity if capacity < 0.
func New(capacity int) (*Heap, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrBadCapacity)
	}
	h := &Heap{
		slots:    make([]Element, 0, capacity),
		position: make([]int, capacity),
	}
	for v := range h.position {
		h.position[v] = Absent
	}

	return h, nil
}

// Len returns the number of elements currently in the heap.
func (h *Heap) Len() int { return len(h.slots) }

// Cap returns the fixed capacity set at construction.
func (h *Heap) Cap() int { return len(h.position) }

// Empty reports whether the heap holds no elements.
func (h *Heap) Empty() bool { return len(h.slots) == 0 }

// Position returns the slot index of vertex, or Absent if the vertex is not
// in the heap (including vertices outside [0, Cap())).
func (h *Heap) Position(vertex int) int {
	if vertex < 0 || vertex >= len(h.position) {
		return Absent
	}

	return h.position[vertex]
}

// Contains reports whether vertex currently occupies a slot.
func (h *Heap) Contains(vertex int) bool {
	return h.Position(vertex) != Absent
}

// At returns the element stored in slot i.
// Returns ErrInvalidPosition if i is outside [0, Len()).
func (h *Heap) At(i int) (Element, error) {
	if i < 0 || i >= len(h.slots) {
		return Element{}, fmt.Errorf("At(%d) with size %d: %w", i, len(h.slots), ErrInvalidPosition)
	}

	return h.slots[i], nil
}

// Peek returns the minimum element without removing it.
// Returns ErrHeapEmpty on an empty heap.
func (h *Heap) Peek() (Element, error) {
	if len(h.slots) == 0 {
		return Element{}, ErrHeapEmpty
	}

	return h.slots[0], nil
}

// Snapshot returns a copy of the slots in heap order.
func (h *Heap) Snapshot() []Element {
	out := make([]Element, len(h.slots))
	copy(out, h.slots)

	return out
}

// Insert adds e for a vertex not currently in the heap, then bubbles it up
// while its weight is strictly less than its parent's.
//
// Errors (checked in this order, heap left untouched):
//   - ErrHeapFull         if Len() == Cap().
//   - ErrVertexOutOfRange if e.Vertex is outside [0, Cap()).
//   - ErrDuplicateVertex  if e.Vertex is already present.
func (h *Heap) Insert(e Element) error {
	if len(h.slots) == len(h.position) {
		return fmt.Errorf("Insert(vertex=%d) at capacity %d: %w", e.Vertex, len(h.position), ErrHeapFull)
	}
	if e.Vertex < 0 || e.Vertex >= len(h.position) {
		return fmt.Errorf("Insert(vertex=%d) with capacity %d: %w", e.Vertex, len(h.position), ErrVertexOutOfRange)
	}
	if h.position[e.Vertex] != Absent {
		return fmt.Errorf("Insert(vertex=%d): %w", e.Vertex, ErrDuplicateVertex)
	}

	// Place at the next free slot and register it before any swap.
	i := len(h.slots)
	h.slots = append(h.slots, e)
	h.position[e.Vertex] = i
	h.up(i)

	return nil
}

// ExtractMin removes and returns the root element, which has minimum weight.
// The last element is moved to the root and bubbled down.
// Returns ErrHeapEmpty on an empty heap.
func (h *Heap) ExtractMin() (Element, error) {
	if len(h.slots) == 0 {
		return Element{}, fmt.Errorf("ExtractMin: %w", ErrHeapEmpty)
	}
	root := h.removeAt(0)
	if len(h.slots) > 0 {
		h.down(0)
	}

	return root, nil
}

// DeleteAt removes and returns the element in slot i. The last element is
// moved into i and then bubbled in exactly one direction: up if its new
// parent is heavier, down otherwise.
// Returns ErrInvalidPosition if i is outside [0, Len()).
func (h *Heap) DeleteAt(i int) (Element, error) {
	if i < 0 || i >= len(h.slots) {
		return Element{}, fmt.Errorf("DeleteAt(%d) with size %d: %w", i, len(h.slots), ErrInvalidPosition)
	}
	removed := h.removeAt(i)
	if i < len(h.slots) {
		if i > 0 && h.slots[i].Weight.Less(h.slots[parent(i)].Weight) {
			h.up(i)
		} else {
			h.down(i)
		}
	}

	return removed, nil
}

// DecreaseKey lowers the weight of vertex in place, sets its tail, and
// bubbles it up. Equal weights are accepted and only replace the tail.
//
// Errors:
//   - ErrVertexNotFound if vertex is not in the heap.
//   - ErrWeightIncrease if w orders after the current weight.
func (h *Heap) DecreaseKey(vertex int, w Weight, tail int) error {
	i := h.Position(vertex)
	if i == Absent {
		return fmt.Errorf("DecreaseKey(vertex=%d): %w", vertex, ErrVertexNotFound)
	}
	if h.slots[i].Weight.Less(w) {
		return fmt.Errorf("DecreaseKey(vertex=%d, %s > %s): %w", vertex, w, h.slots[i].Weight, ErrWeightIncrease)
	}
	h.slots[i].Weight = w
	h.slots[i].Tail = tail
	h.up(i)

	return nil
}

// removeAt moves the last element into slot i, clears the vacated slot,
// marks the removed vertex Absent and shrinks the heap. Order at i is left
// for the caller to restore. i must be a valid slot.
func (h *Heap) removeAt(i int) Element {
	removed := h.slots[i]
	last := len(h.slots) - 1

	h.slots[i] = h.slots[last]
	h.position[h.slots[i].Vertex] = i
	h.slots[last] = Element{}
	h.slots = h.slots[:last]
	// Set after the move: when i == last the moved and removed vertex coincide.
	h.position[removed.Vertex] = Absent

	return removed
}

// up bubbles slot i toward the root while it is strictly lighter than its parent.
func (h *Heap) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.slots[i].Weight.Less(h.slots[p].Weight) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// down bubbles slot i toward the leaves while its lighter child is strictly
// lighter than it.
func (h *Heap) down(i int) {
	n := len(h.slots)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		m := l
		if r := l + 1; r < n && h.slots[r].Weight.Less(h.slots[l].Weight) {
			m = r
		}
		if !h.slots[m].Weight.Less(h.slots[i].Weight) {
			return
		}
		h.swap(i, m)
		i = m
	}
}

// swap exchanges slots i and j and re-registers both vertices.
func (h *Heap) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.position[h.slots[i].Vertex] = i
	h.position[h.slots[j].Vertex] = j
}

func parent(i int) int { return (i - 1) / 2 }

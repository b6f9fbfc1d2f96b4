// SPDX-License-Identifier: MIT
// Package: primmst/indexheap
//
// validate.go — full invariant check, O(Cap()).

package indexheap

import "fmt"

// Validate checks heap order and index consistency over the whole heap.
// It returns nil, or an error wrapping ErrCorrupt that names the first
// offending slot or vertex.
func (h *Heap) Validate() error {
	for i, e := range h.slots {
		// Index, slot side: every occupant is registered at its own slot.
		if e.Vertex < 0 || e.Vertex >= len(h.position) {
			return fmt.Errorf("slot %d holds vertex %d outside capacity %d: %w", i, e.Vertex, len(h.position), ErrCorrupt)
		}
		if h.position[e.Vertex] != i {
			return fmt.Errorf("slot %d holds vertex %d indexed at %d: %w", i, e.Vertex, h.position[e.Vertex], ErrCorrupt)
		}
		// Order: no child is lighter than its parent.
		if i > 0 && e.Weight.Less(h.slots[parent(i)].Weight) {
			return fmt.Errorf("slot %d weight %s below parent weight %s: %w", i, e.Weight, h.slots[parent(i)].Weight, ErrCorrupt)
		}
	}

	// Index, vertex side: every registered position points back at its vertex.
	for v, p := range h.position {
		if p == Absent {
			continue
		}
		if p < 0 || p >= len(h.slots) || h.slots[p].Vertex != v {
			return fmt.Errorf("vertex %d indexed at stale slot %d: %w", v, p, ErrCorrupt)
		}
	}

	return nil
}

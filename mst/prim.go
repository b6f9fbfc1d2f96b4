package mst

import (
	"fmt"

	"github.com/katalvlaran/primmst/core"
	"github.com/katalvlaran/primmst/indexheap"
)

// Prim computes a minimum spanning tree (or, for a disconnected graph, the
// tree of the start vertex's component plus the unreached vertices) by
// growing outward from a start vertex.
//
// Error Conditions:
//   - ErrNilGraph        : graph is nil.
//   - ErrStartOutOfRange : the start vertex is outside [0, n).
//   - ErrInvariant       : the heap failed inside the algorithm (a defect).
//
// Steps:
//  1. Initializing: size the heap to n; insert (start, start, 0) and
//     (v, NoTail, Unreached) for every other vertex.
//  2. Relaxing, exactly n times:
//     a. ExtractMin → m; mark m.Vertex visited; add its finite weight to Total.
//     b. For each neighbour w of m.Vertex with cost c: if w is unvisited and
//     Reached(c) is strictly less than w's weight in the heap, move w to
//     (c, tail m.Vertex) by the configured Strategy. Skipped when m is
//     Unreached: it is outside the start's component.
//  3. Done: the heap is empty.
//
// A disconnected graph is not an error: unreached vertices are extracted
// with an Unreached weight, which is never added to Total. Check
// Result.Connected or call Result.Tree for a strict spanning tree.
//
// Complexity: O(E log V) time, O(V) memory.
func Prim(graph *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input and resolve options.
	if graph == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := graph.VertexCount()
	res := &Result{
		Start:  -1,
		Parent: make([]int, n),
		Weight: make([]indexheap.Weight, n),
		Order:  make([]int, 0, n),
	}
	// Nothing to span.
	if n == 0 {
		return res, nil
	}

	// 2. Pick the start vertex.
	start := cfg.Start
	if cfg.Rand != nil {
		start = cfg.Rand.Intn(n)
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("start=%d with n=%d: %w", start, n, ErrStartOutOfRange)
	}
	res.Start = start

	// 3. Build the runner and execute both phases.
	r := &primRunner{
		g:       graph,
		options: cfg,
		visited: make([]bool, n),
		res:     res,
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return res, nil
}

// primRunner holds the mutable state for a single Prim execution.
// The heap and the visited set are owned exclusively by the runner.
type primRunner struct {
	g       *core.Graph     // input graph; read-only
	options Options         // resolved configuration
	heap    *indexheap.Heap // one element per unvisited vertex
	visited []bool          // monotonic: never reset once true
	res     *Result         // output under construction
}

// init sizes the heap to exactly n and inserts one element per vertex.
// Any failure here is a capacity-sizing defect and is reported as ErrInvariant.
func (r *primRunner) init() error {
	n := r.g.VertexCount()
	h, err := indexheap.New(n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	r.heap = h

	start := r.res.Start
	for v := 0; v < n; v++ {
		e := indexheap.Element{Vertex: v, Tail: indexheap.NoTail, Weight: indexheap.Unreached()}
		if v == start {
			e.Tail, e.Weight = start, indexheap.Reached(0)
		}
		if err := r.heap.Insert(e); err != nil {
			return fmt.Errorf("%w: init: %w", ErrInvariant, err)
		}
	}

	return r.check("init")
}

// process performs exactly n extractions, relaxing the neighbours of each
// extracted vertex.
func (r *primRunner) process() error {
	n := r.g.VertexCount()
	for i := 0; i < n; i++ {
		// a. Take the lightest frontier element.
		m, err := r.heap.ExtractMin()
		if err != nil {
			return fmt.Errorf("%w: extraction %d of %d: %w", ErrInvariant, i+1, n, err)
		}
		if err = r.check("extract"); err != nil {
			return err
		}

		// b. Record it; an Unreached weight contributes nothing to Total.
		u := m.Vertex
		r.visited[u] = true
		r.res.Parent[u] = m.Tail
		r.res.Weight[u] = m.Weight
		r.res.Order = append(r.res.Order, u)
		if cost, ok := m.Weight.Cost(); ok {
			r.res.Total += cost
		}
		if r.options.OnVisit != nil {
			r.options.OnVisit(m)
		}

		// c. Relax its unvisited neighbours. An Unreached vertex is not part
		// of the tree, so nothing may be reached through it; every element
		// still in the heap is Unreached as well.
		if !m.Weight.IsReached() {
			continue
		}
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax lowers the heap weight of every unvisited neighbour of u reachable
// more cheaply through u.
func (r *primRunner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("mst: neighbors of %d: %w", u, err)
	}

	for _, nb := range neighbors {
		w := nb.Vertex
		if r.visited[w] {
			continue
		}
		// Every unvisited vertex is still in the heap.
		pos := r.heap.Position(w)
		if pos == indexheap.Absent {
			return fmt.Errorf("%w: unvisited vertex %d missing from heap", ErrInvariant, w)
		}
		cur, err := r.heap.At(pos)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvariant, err)
		}
		candidate := indexheap.Reached(int64(nb.Weight))
		if !candidate.Less(cur.Weight) {
			continue
		}
		if err = r.lower(pos, cur, candidate, u); err != nil {
			return err
		}
	}

	return nil
}

// lower moves the element cur, found at slot pos, to weight w with tail u.
func (r *primRunner) lower(pos int, cur indexheap.Element, w indexheap.Weight, u int) error {
	switch r.options.Strategy {
	case StrategyDecreaseKey:
		if err := r.heap.DecreaseKey(cur.Vertex, w, u); err != nil {
			return fmt.Errorf("%w: %w", ErrInvariant, err)
		}
	default:
		e, err := r.heap.DeleteAt(pos)
		if err != nil {
			return fmt.Errorf("%w: delete vertex %d: %w", ErrInvariant, cur.Vertex, err)
		}
		if err = r.check("delete"); err != nil {
			return err
		}
		e.Weight, e.Tail = w, u
		if err = r.heap.Insert(e); err != nil {
			return fmt.Errorf("%w: reinsert vertex %d: %w", ErrInvariant, cur.Vertex, err)
		}
	}

	return r.check("relax")
}

// check runs the full heap validation when WithValidate is set.
func (r *primRunner) check(stage string) error {
	if !r.options.Validate {
		return nil
	}
	if err := r.heap.Validate(); err != nil {
		return fmt.Errorf("%w: after %s: %w", ErrInvariant, stage, err)
	}

	return nil
}

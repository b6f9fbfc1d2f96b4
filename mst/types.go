package mst

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/primmst/core"
	"github.com/katalvlaran/primmst/indexheap"
)

// Sentinel errors returned by the mst package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrStartOutOfRange indicates a start vertex outside [0, n).
	ErrStartOutOfRange = errors.New("mst: start vertex out of range")

	// ErrDisconnected indicates that no spanning tree covers every vertex.
	// Prim and Kruskal still return their spanning forest; only Tree and
	// strict callers report this error.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates Compute was given an unsupported method name.
	ErrUnknownMethod = errors.New("mst: unknown method")

	// ErrUnknownStrategy indicates ParseStrategy was given an unsupported name.
	ErrUnknownStrategy = errors.New("mst: unknown relaxation strategy")

	// ErrInvariant indicates the heap reported a failure inside the main loop.
	// This is a defect in invariant maintenance, never an input condition.
	ErrInvariant = errors.New("mst: heap invariant violated")
)

// MethodPrim selects Prim's algorithm (grow from a start vertex using the indexed heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Strategy selects how Prim lowers the weight of a vertex still in the heap.
type Strategy int

const (
	// StrategyReinsert deletes the vertex's element by position and inserts
	// it again with the new weight and tail.
	StrategyReinsert Strategy = iota

	// StrategyDecreaseKey lowers the weight in place and bubbles it up.
	StrategyDecreaseKey
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyReinsert:
		return "reinsert"
	case StrategyDecreaseKey:
		return "decrease-key"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "reinsert" or "decrease-key" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "reinsert", "":
		return StrategyReinsert, nil
	case "decrease-key":
		return StrategyDecreaseKey, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

// Options configures Prim.
//
// Fields:
//
//	Start    int          — start vertex; ignored when Rand is set.
//	Rand     *rand.Rand   — if non-nil, the start vertex is Rand.Intn(n).
//	Strategy Strategy     — relaxation path, StrategyReinsert by default.
//	Validate bool         — run indexheap.Heap.Validate after every heap mutation.
//	OnVisit  func(indexheap.Element) — called with each extracted element.
type Options struct {
	Start    int
	Rand     *rand.Rand
	Strategy Strategy
	Validate bool
	OnVisit  func(indexheap.Element)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options starting at vertex 0 with StrategyReinsert.
func DefaultOptions() Options {
	return Options{Start: 0, Strategy: StrategyReinsert}
}

// WithStart sets a fixed start vertex.
func WithStart(v int) Option {
	return func(o *Options) {
		o.Start = v
		o.Rand = nil
	}
}

// WithRandomStart picks the start vertex uniformly from r.
// Panics on nil.
func WithRandomStart(r *rand.Rand) Option {
	if r == nil {
		panic("mst: WithRandomStart(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithStrategy selects the relaxation path.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithValidate makes Prim check both heap invariants after every mutation.
// Complexity: adds O(V) per heap operation.
func WithValidate() Option {
	return func(o *Options) {
		o.Validate = true
	}
}

// WithVisitHook registers fn to observe each extracted element in order.
// Panics on nil.
func WithVisitHook(fn func(indexheap.Element)) Option {
	if fn == nil {
		panic("mst: WithVisitHook(nil)")
	}
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result is the outcome of Prim over an n-vertex graph.
//
// Fields:
//
//	Start  — the start vertex (-1 for an empty graph).
//	Total  — sum of the finite weights of all extracted elements.
//	Parent — Parent[v] is the tail captured when v was extracted:
//	         Parent[Start] == Start, unreached vertices hold indexheap.NoTail.
//	Weight — Weight[v] is the weight v carried at extraction.
//	Order  — vertices in extraction order; len == n.
type Result struct {
	Start  int
	Total  int64
	Parent []int
	Weight []indexheap.Weight
	Order  []int
}

// Connected reports whether every vertex was reached from Start.
func (r *Result) Connected() bool {
	for _, w := range r.Weight {
		if !w.IsReached() {
			return false
		}
	}

	return true
}

// Unreached returns the vertices extracted with an Unreached weight, in
// extraction order.
func (r *Result) Unreached() []int {
	var out []int
	for _, v := range r.Order {
		if !r.Weight[v].IsReached() {
			out = append(out, v)
		}
	}

	return out
}

// Edges returns one tree edge per reached non-start vertex, in extraction
// order, as Parent–vertex with From ≤ To.
func (r *Result) Edges() []core.Edge {
	out := make([]core.Edge, 0, len(r.Order))
	for _, v := range r.Order {
		if v == r.Start {
			continue
		}
		cost, ok := r.Weight[v].Cost()
		if !ok {
			continue
		}
		from, to := r.Parent[v], v
		if from > to {
			from, to = to, from
		}
		// Costs originate from int32 edge weights.
		out = append(out, core.Edge{From: from, To: to, Weight: int32(cost)})
	}

	return out
}

// Tree returns Edges, or ErrDisconnected if some vertex was never reached.
func (r *Result) Tree() ([]core.Edge, error) {
	if missing := r.Unreached(); len(missing) > 0 {
		return nil, fmt.Errorf("%d vertices unreached from %d: %w", len(missing), r.Start, ErrDisconnected)
	}

	return r.Edges(), nil
}

// Forest is the outcome of Kruskal: a minimum spanning forest.
type Forest struct {
	Edges      []core.Edge
	Total      int64
	Components int
}

// Summary is the method-independent outcome returned by Compute.
//
// Start and Unreached are set by Prim only: Start is -1 and Unreached 0
// for Kruskal. Components is set by Kruskal only and is 0 for Prim, which
// spans the start's component and does not partition the rest.
type Summary struct {
	Method     string
	Total      int64
	Edges      []core.Edge
	Connected  bool
	Start      int
	Unreached  int
	Components int
}

// Compute selects and runs the MST algorithm named by method.
//
//	– MethodPrim:    Prim(graph, opts...).
//	– MethodKruskal: Kruskal(graph); opts are ignored.
//	– Otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, method string, opts ...Option) (*Summary, error) {
	switch method {
	case MethodPrim:
		res, err := Prim(graph, opts...)
		if err != nil {
			return nil, err
		}
		return &Summary{
			Method:    method,
			Total:     res.Total,
			Edges:     res.Edges(),
			Connected: res.Connected(),
			Start:     res.Start,
			Unreached: len(res.Unreached()),
		}, nil
	case MethodKruskal:
		f, err := Kruskal(graph)
		if err != nil {
			return nil, err
		}
		return &Summary{
			Method:     method,
			Total:      f.Total,
			Edges:      f.Edges,
			Connected:  f.Components <= 1,
			Start:      -1,
			Components: f.Components,
		}, nil
	default:
		return nil, fmt.Errorf("%q: %w", method, ErrUnknownMethod)
	}
}

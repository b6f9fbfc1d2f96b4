// Package core defines the dense-integer undirected weighted Graph consumed by
// package mst, together with its Edge and Neighbor value types.
//
// Vertices are identified 0..n-1 and fixed at construction. Edges are added
// once by a loader or builder and the Graph is read-only afterwards; it does
// no internal locking.
//
// Errors:
//
//	ErrBadVertexCount      - negative vertex count passed to NewGraph.
//	ErrVertexOutOfRange    - vertex id outside [0, n).
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one undirected connection between From and To.
type Edge struct {
	// From is the smaller endpoint as returned by Graph.Edges.
	From int

	// To is the other endpoint.
	To int

	// Weight is the cost of the edge. Sums of weights are taken in int64,
	// so any int32 weights can be totalled without overflow.
	Weight int32
}

// Neighbor is one adjacency entry: the vertex at the other end and the edge cost.
type Neighbor struct {
	Vertex int
	Weight int32
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected weighted graph over vertices 0..n-1.
//
// adjacency[v] lists every edge incident to v in insertion order; an edge
// u–v appears in both adjacency[u] and adjacency[v], a loop v–v once.
type Graph struct {
	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	adjacency [][]Neighbor
	edges     []Edge // each undirected edge once, insertion order
}

// NewGraph creates a Graph with n isolated vertices.
// By default loops and multi-edges are rejected.
// Returns ErrBadVertexCount if n < 0.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{adjacency: make([][]Neighbor, n)}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

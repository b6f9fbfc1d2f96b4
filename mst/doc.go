// Package mst computes minimum spanning trees of an undirected, weighted
// *core.Graph.
//
// What & Why
//
//   - Given a connected, undirected, weighted graph G = (V, E), a minimum
//     spanning tree T ⊆ E connects every vertex with minimum total weight and
//     no cycles. Network design, clustering and approximation algorithms
//     (e.g. metric TSP) are built on it.
//
// Algorithms Provided
//
//   - Prim(g, opts...) (*Result, error)
//
//   - Strategy: one heap element per vertex (start at weight 0, all others
//     Unreached). Extract the minimum n times; after each extraction lower
//     the weight of every unvisited neighbour reachable more cheaply.
//
//   - The heap is indexheap.Heap, so finding a neighbour's element is a
//     position lookup rather than a scan. Lowering is delete-then-insert by
//     default (StrategyReinsert) or in place (StrategyDecreaseKey); both
//     give identical totals.
//
//   - Complexity: O(E log V) time, O(V) memory.
//
//   - Kruskal(g) (*Forest, error)
//
//   - Strategy: stable-sort all edges by weight and keep those that join two
//     union-find components.
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Compute(g, method, opts...) dispatches by MethodPrim / MethodKruskal.
//
// Disconnected Graphs
//
// Neither algorithm fails on a disconnected graph. Prim still performs n
// extractions; vertices outside the start's component come out with an
// Unreached weight and indexheap.NoTail as parent, and nothing is relaxed
// through them. Their weight is not part of Result.Total. Result.Connected,
// Result.Unreached and Result.Tree (which returns ErrDisconnected) let
// callers enforce a strict spanning tree. Kruskal reports Forest.Components.
//
// Edge weights are int32 and totals int64, so no sum of weights overflows.
//
// Error Conditions
//
//   - ErrNilGraph: graph is nil.
//   - ErrStartOutOfRange: start vertex outside [0, n) (Prim only).
//   - ErrUnknownMethod: Compute with an unsupported method.
//   - ErrInvariant: the heap failed inside Prim; wraps the indexheap error.
//     Never expected; indicates a defect.
//
// Start Vertex
//
// WithStart(v) fixes the root (default 0); WithRandomStart(r) draws it from
// r. The total weight does not depend on the choice, only the tree shape may.
package mst

// File: methods.go
// Role: edge insertion and read-side queries.

package core

import "fmt"

// AllowsLoops reports whether self-loops are accepted.
func (g *Graph) AllowsLoops() bool { return g.allowLoops }

// AllowsMultiEdges reports whether parallel edges are accepted.
func (g *Graph) AllowsMultiEdges() bool { return g.allowMulti }

// VertexCount returns n.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of undirected edges added so far.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddEdge connects u and v with weight w, registering the edge on both
// endpoints.
//
// Errors:
//   - ErrVertexOutOfRange    if u or v is outside [0, n).
//   - ErrLoopNotAllowed      if u == v without WithLoops.
//   - ErrMultiEdgeNotAllowed if u–v already exists without WithMultiEdges.
//
// Complexity: O(1), or O(deg(u)) when multi-edges are disabled.
func (g *Graph) AddEdge(u, v int, w int32) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if !g.allowMulti && g.HasEdge(u, v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	g.adjacency[u] = append(g.adjacency[u], Neighbor{Vertex: v, Weight: w})
	if u != v {
		// Mirror for undirected semantics; a loop is listed once.
		g.adjacency[v] = append(g.adjacency[v], Neighbor{Vertex: u, Weight: w})
	}
	from, to := u, v
	if from > to {
		from, to = to, from
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: w})

	return nil
}

// HasEdge reports whether at least one edge joins u and v.
// Out-of-range vertices yield false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adjacency) || v < 0 || v >= len(g.adjacency) {
		return false
	}
	for _, nb := range g.adjacency[u] {
		if nb.Vertex == v {
			return true
		}
	}

	return false
}

// Neighbors returns the adjacency entries of v in insertion order.
// The returned slice is shared with the Graph and must not be modified.
// Returns ErrVertexOutOfRange for an unknown vertex.
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return g.adjacency[v], nil
}

// Degree returns the number of adjacency entries of v (a loop counts once).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return len(g.adjacency[v]), nil
}

// Edges returns a copy of every undirected edge once, with From ≤ To, in
// insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adjacency) {
		return fmt.Errorf("vertex %d with n=%d: %w", v, len(g.adjacency), ErrVertexOutOfRange)
	}

	return nil
}

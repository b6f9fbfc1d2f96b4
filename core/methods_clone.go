// File: methods_clone.go
// Role: cloning graph instances.

package core

// Clone returns a deep copy of the Graph: configuration, adjacency and edges.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		adjacency:  make([][]Neighbor, len(g.adjacency)),
		edges:      make([]Edge, len(g.edges)),
	}
	for v, nbs := range g.adjacency {
		clone.adjacency[v] = append([]Neighbor(nil), nbs...)
	}
	copy(clone.edges, g.edges)

	return clone
}

package mst

import (
	"sort"

	"github.com/katalvlaran/primmst/core"
)

// Kruskal computes a minimum spanning forest of an undirected, weighted graph.
// It uses a disjoint-set (union-find) with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph : graph is nil.
//
// Steps:
//  1. Collect all edges via graph.Edges(), skip self-loops.
//  2. Sort edges by ascending Weight (stable, so insertion order breaks ties).
//  3. For each edge (u,v), if find(u) != find(v), union(u,v) and keep the edge.
//  4. Stop at n-1 edges. Components = n - len(edges).
//
// A disconnected graph is not an error; Forest.Components > 1 reports it.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) (*Forest, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrNilGraph
	}
	n := graph.VertexCount()

	// 2. Collect and sort non-loop edges.
	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From == e.To {
			// A loop can never join two components.
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint-set over dense vertex ids.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of u and v, reporting whether they were disjoint.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		// Attach smaller-rank tree under larger-rank root.
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}

		return true
	}

	// 4. Build the forest.
	f := &Forest{Edges: make([]core.Edge, 0, max(n-1, 0))}
	for _, e := range edges {
		if len(f.Edges) == n-1 {
			break
		}
		if union(e.From, e.To) {
			f.Edges = append(f.Edges, e)
			f.Total += int64(e.Weight)
		}
	}
	f.Components = n - len(f.Edges)

	return f, nil
}

package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primmst/core"
	"github.com/katalvlaran/primmst/mst"
)

func TestKruskal_Triangle(t *testing.T) {
	g := buildGraph(t, 3, [][3]int64{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}})

	f, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.Total)
	assert.Equal(t, 1, f.Components)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}, f.Edges)
}

func TestKruskal_Forest(t *testing.T) {
	g := buildGraph(t, 5, [][3]int64{{0, 1, 4}, {2, 3, 5}, {3, 3, 0}}, core.WithLoops())

	f, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(9), f.Total)
	assert.Equal(t, 3, f.Components) // {0,1}, {2,3}, {4}
	assert.Len(t, f.Edges, 2)

	_, err = mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	empty := buildGraph(t, 0, nil)
	f, err = mst.Kruskal(empty)
	require.NoError(t, err)
	assert.Zero(t, f.Components)
	assert.Empty(t, f.Edges)
}

func TestCompute(t *testing.T) {
	g := buildGraph(t, 4, [][3]int64{{0, 1, 1}, {1, 2, 2}, {2, 3, 3}, {0, 3, 10}})

	for _, method := range []string{mst.MethodPrim, mst.MethodKruskal} {
		s, err := mst.Compute(g, method)
		require.NoError(t, err, method)
		assert.Equal(t, method, s.Method)
		assert.Equal(t, int64(6), s.Total)
		assert.True(t, s.Connected)
		assert.Len(t, s.Edges, 3)
	}

	_, err := mst.Compute(g, "boruvka")
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)

	split := buildGraph(t, 4, [][3]int64{{0, 1, 4}, {2, 3, 5}})
	prim, err := mst.Compute(split, mst.MethodPrim, mst.WithStart(2))
	require.NoError(t, err)
	assert.False(t, prim.Connected)
	assert.Equal(t, 2, prim.Start)
	assert.Equal(t, 2, prim.Unreached)
	assert.Equal(t, int64(5), prim.Total)

	kruskal, err := mst.Compute(split, mst.MethodKruskal)
	require.NoError(t, err)
	assert.False(t, kruskal.Connected)
	assert.Equal(t, -1, kruskal.Start)
	assert.Equal(t, 2, kruskal.Components)
	assert.Equal(t, int64(9), kruskal.Total)
}

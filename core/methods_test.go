package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primmst/core"
)

func TestNewGraph(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.AllowsLoops())
	assert.False(t, g.AllowsMultiEdges())

	_, err = core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)

	g, err = core.NewGraph(0, core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, err)
	assert.True(t, g.AllowsLoops())
	assert.True(t, g.AllowsMultiEdges())
}

func TestAddEdge_Undirected(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 0, 7))

	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 1))

	nb0, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{Vertex: 2, Weight: 7}}, nb0)
	nb2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{Vertex: 0, Weight: 7}}, nb2)

	// Edges are normalised to From ≤ To.
	assert.Equal(t, []core.Edge{{From: 0, To: 2, Weight: 7}}, g.Edges())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Errors(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 2, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(1, 1, 1), core.ErrLoopNotAllowed)
	require.NoError(t, g.AddEdge(0, 1, 1))
	assert.ErrorIs(t, g.AddEdge(1, 0, 2), core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())

	_, err = g.Neighbors(5)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Degree(-3)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.False(t, g.HasEdge(0, 9))
}

func TestAddEdge_LoopsAndMulti(t *testing.T) {
	g, err := core.NewGraph(2, core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, 3))
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 0, 1))

	d0, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, d0) // loop once + two parallel edges
	d1, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d1)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 0, Weight: 3},
		{From: 0, To: 1, Weight: 5},
		{From: 0, To: 1, Weight: 1},
	}, g.Edges())
}

func TestClone(t *testing.T) {
	g, err := core.NewGraph(3, core.WithMultiEdges())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))

	c := g.Clone()
	assert.Equal(t, g.Edges(), c.Edges())
	assert.True(t, c.AllowsMultiEdges())

	// Mutating the clone leaves the source untouched.
	require.NoError(t, c.AddEdge(0, 2, 9))
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())

	// Edges returns a copy.
	es := g.Edges()
	es[0].Weight = 100
	assert.Equal(t, int32(1), g.Edges()[0].Weight)
}

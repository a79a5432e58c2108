package graph_test

import (
	"testing"

	"github.com/katalvlaran/labelrank/graph"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_MirrorsBothEndpoints(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1.0))

	n0 := g.Neighbors(0)
	n1 := g.Neighbors(1)
	require.Len(t, n0, 1)
	require.Len(t, n1, 1)
	require.Equal(t, 1, n0[0].To)
	require.Equal(t, 0, n1[0].To)
}

func TestAddEdge_NegativeWeight(t *testing.T) {
	g := graph.NewGraph()
	err := g.AddEdge(0, 1, -1)
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestAddEdge_MergesParallelByDefault(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.AddEdge(0, 1, 2.0))

	n0 := g.Neighbors(0)
	require.Len(t, n0, 1, "parallel edge should merge into the existing entry")
	require.Equal(t, 3.0, n0[0].Weight)
}

func TestAddEdge_AllowsMultiWhenEnabled(t *testing.T) {
	g := graph.NewGraph(graph.WithMultiEdges())
	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.AddEdge(0, 1, 2.0))

	require.Len(t, g.Neighbors(0), 2)
}

func TestEdgeCount_IgnoresDoubleCounting(t *testing.T) {
	g := graph.NewGraph(graph.WithLoops())
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 0, 1))

	require.Equal(t, 3, g.EdgeCount())
}

func TestHasEdge(t *testing.T) {
	g := graph.NewGraph()
	require.False(t, g.HasEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
}

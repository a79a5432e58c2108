package graph_test

import (
	"testing"

	"github.com/katalvlaran/labelrank/graph"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	g, err := graph.Complete(4, 1)
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	for i := 0; i < 4; i++ {
		// degree 3 peers + 1 self-loop
		require.Equal(t, 4, g.Degree(i))
	}

	_, err = graph.Complete(0, 1)
	require.ErrorIs(t, err, graph.ErrTooFewVertices)
}

func TestPath(t *testing.T) {
	g, err := graph.Path(5, 1)
	require.NoError(t, err)
	require.Equal(t, 2, g.Degree(0))  // one neighbor + self-loop
	require.Equal(t, 3, g.Degree(2))  // two neighbors + self-loop
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(3, 4))
	require.False(t, g.HasEdge(0, 4))
}

func TestStar(t *testing.T) {
	g, err := graph.Star(5, 1)
	require.NoError(t, err)
	require.Equal(t, 4+1, g.Degree(0)) // 4 leaves + self-loop
	require.Equal(t, 1+1, g.Degree(1)) // hub + self-loop
}

func TestDisjointCliques(t *testing.T) {
	g, err := graph.DisjointCliques([]int{3, 3}, 1)
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(3, 4))
	require.False(t, g.HasEdge(2, 3), "cliques must be vertex-disjoint")

	_, err = graph.DisjointCliques(nil, 1)
	require.ErrorIs(t, err, graph.ErrTooFewVertices)
}

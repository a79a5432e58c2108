package graph_test

import (
	"testing"

	"github.com/katalvlaran/labelrank/graph"
	"github.com/stretchr/testify/require"
)

func TestSymmetrize_PreservesEdges(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1.5))
	require.NoError(t, g.AddEdge(1, 2, 2.5))

	out := graph.Symmetrize(g)
	require.True(t, out.HasEdge(0, 1))
	require.True(t, out.HasEdge(2, 1))
	require.Equal(t, g.EdgeCount(), out.EdgeCount())
}

func TestAddSelfLoops_FillsMissingOnly(t *testing.T) {
	g := graph.NewGraph(graph.WithLoops())
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 0, 9)) // pre-existing self-loop, must survive untouched

	out := graph.AddSelfLoops(g, 1)
	for _, e := range out.Neighbors(0) {
		if e.To == 0 {
			require.Equal(t, 9.0, e.Weight, "pre-existing self-loop weight must not be overwritten")
		}
	}
	require.True(t, out.HasEdge(1, 1))
}

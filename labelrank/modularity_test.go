package labelrank_test

import (
	"testing"

	"github.com/katalvlaran/labelrank/graph"
	"github.com/katalvlaran/labelrank/labelrank"
	"github.com/stretchr/testify/require"
)

func TestModularity_SingleCommunityAtUnitResolutionIsNearZero(t *testing.T) {
	g, err := graph.Complete(5, 1)
	require.NoError(t, err)

	membership := make([]int, 5)
	q := labelrank.Modularity(g, membership, 1.0)
	require.InDelta(t, 0.0, q, 1e-9, "one community spanning the whole graph has Q=1-resolution at resolution=1")
}

func TestModularity_TwoTrueCommunitiesIsPositive(t *testing.T) {
	g, err := graph.DisjointCliques([]int{4, 4}, 1)
	require.NoError(t, err)

	membership := make([]int, 8)
	for u := 4; u < 8; u++ {
		membership[u] = 1
	}

	q := labelrank.Modularity(g, membership, 1.0)
	require.Greater(t, q, 0.0)
}

func TestModularity_EmptyGraphIsZero(t *testing.T) {
	g := graph.NewGraph()
	require.Equal(t, 0.0, labelrank.Modularity(g, nil, 1.0))
}

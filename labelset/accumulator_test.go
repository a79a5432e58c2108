package labelset_test

import (
	"testing"

	"github.com/katalvlaran/labelrank/labelset"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_SetAndForEach(t *testing.T) {
	a := labelset.NewAccumulator()
	a.Set(2, 4)
	a.Set(5, 9)

	got := map[int]float64{}
	a.ForEach(func(label int, value float64) { got[label] = value })
	require.Equal(t, map[int]float64{2: 4, 5: 9}, got)
	require.Equal(t, 2, a.Len())
}

func TestAccumulator_ClearIsCheap(t *testing.T) {
	a := labelset.NewAccumulator()
	for i := 0; i < 100; i++ {
		a.Set(i, float64(i+1))
	}
	a.Clear()
	require.Equal(t, 0, a.Len())

	// Re-populate a disjoint, smaller key set and confirm no stale data leaks.
	a.Set(50, 1)
	got := map[int]float64{}
	a.ForEach(func(label int, value float64) { got[label] = value })
	require.Equal(t, map[int]float64{50: 1}, got)
}

func TestAccumulator_AccumulateSums(t *testing.T) {
	a := labelset.NewAccumulator()
	a.Accumulate(3, 1)
	a.Accumulate(3, 2)
	a.Accumulate(3, 4)

	_, v := a.GetAt(0)
	require.InDelta(t, 7.0, v, 1e-9)
	require.Equal(t, 1, a.Len())
}

func TestAccumulator_CombineWeightsNeighborLabelset(t *testing.T) {
	a := labelset.NewAccumulator()
	a.Set(0, 3) // seed one neighbor's labelset
	a.Set(1, 1)
	a.Reorder()
	var neighbor labelset.Bounded
	a.CopyTo(&neighbor)

	acc := labelset.NewAccumulator()
	acc.Combine(&neighbor, 2.0)

	got := map[int]float64{}
	acc.ForEach(func(label int, value float64) { got[label] = value })
	require.Equal(t, map[int]float64{0: 6, 1: 2}, got)
}

func TestAccumulator_ReorderDescending(t *testing.T) {
	a := labelset.NewAccumulator()
	a.Set(1, 3)
	a.Set(2, 9)
	a.Set(3, 1)
	a.Reorder()

	require.Equal(t, 2, a.KeyAt(0))
	require.Equal(t, 1, a.KeyAt(1))
	require.Equal(t, 3, a.KeyAt(2))
}

func TestAccumulator_CopyToZeroFillsRemainder(t *testing.T) {
	a := labelset.NewAccumulator()
	a.Set(7, 1)
	a.Reorder()
	var b labelset.Bounded
	a.CopyTo(&b)

	require.Equal(t, 1, b.Size())
	for i := 1; i < labelset.Capacity; i++ {
		_, _, ok := b.Get(i)
		require.False(t, ok)
	}
}

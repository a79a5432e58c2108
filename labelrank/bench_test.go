package labelrank_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/labelrank/graph"
	"github.com/katalvlaran/labelrank/labelrank"
)

// BenchmarkRun_Sequential measures the sequential driver on a moderate
// fan of disjoint cliques, excluding graph construction from the timed
// region.
func BenchmarkRun_Sequential(b *testing.B) {
	sizes := make([]int, 20)
	for i := range sizes {
		sizes[i] = 8
	}
	g, err := graph.DisjointCliques(sizes, 1)
	if err != nil {
		b.Fatal(err)
	}

	opts := labelrank.DefaultOptions()
	opts.Repeat = 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := labelrank.Run(context.Background(), g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Parallel measures the same workload under the static
// parallel schedule.
func BenchmarkRun_Parallel(b *testing.B) {
	sizes := make([]int, 20)
	for i := range sizes {
		sizes[i] = 8
	}
	g, err := graph.DisjointCliques(sizes, 1)
	if err != nil {
		b.Fatal(err)
	}

	opts := labelrank.DefaultOptions()
	opts.Repeat = 1
	opts.Schedule = labelrank.ScheduleStatic
	opts.ChunkSize = 16
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := labelrank.Run(context.Background(), g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

package labelrank

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/labelrank/graph"
	"github.com/katalvlaran/labelrank/labelset"
)

var tracer = otel.Tracer("github.com/katalvlaran/labelrank/labelrank")

// Run executes the LabelRank kernel against g with the given options and
// returns the final membership vector, the iteration count, and the mean
// wall-clock time of the measured loop across opts.Repeat runs.
//
// Run itself never mutates g; it only calls the read-only graph.Capability
// surface. Callers are responsible for handing it an undirected,
// self-looped graph (see package graph's Symmetrize / AddSelfLoops, or
// package mtx for file-based ingestion) — LabelRank cannot normalize a
// vertex with zero incident weight and falls back to membership[u] = u for
// any vertex it finds in that state.
func Run(ctx context.Context, g graph.Capability, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	n := g.Span()
	if n == 0 {
		return Result{Membership: []int{}, Iterations: opts.MaxIterations}, nil
	}

	ctx, span := tracer.Start(ctx, "labelrank.Run", trace.WithAttributes(
		attribute.Int("labelrank.span", n),
		attribute.Int("labelrank.max_iterations", opts.MaxIterations),
		attribute.Float64("labelrank.inflation", opts.Inflation),
		attribute.String("labelrank.schedule", opts.Schedule.String()),
	))
	defer span.End()

	runOnce := runSequential
	if opts.Schedule != ScheduleSequential {
		runOnce = runParallel
	}

	var membership []int
	var elapsed time.Duration
	for i := 0; i < opts.Repeat; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		ls := make([]labelset.Bounded, n)
		ms := make([]labelset.Bounded, n)
		start := time.Now()
		m, err := runOnce(ctx, g, opts, ls, ms)
		elapsed += time.Since(start)
		if err != nil {
			return Result{}, err
		}
		membership = m
	}

	return Result{
		Membership: membership,
		Iterations: opts.MaxIterations,
		TimeMS:     elapsed.Seconds() * 1000 / float64(opts.Repeat),
	}, nil
}

// runSequential is the single-goroutine execution of one full measured
// pass: initialize every vertex, then run MaxIterations mixing iterations
// with a double-buffer swap after each. ls and ms are caller-allocated
// scratch buffers, sized to g.Span(), so the measured region covers only
// the init+iterate compute, not their allocation.
func runSequential(ctx context.Context, g graph.Capability, opts Options, ls, ms []labelset.Bounded) ([]int, error) {
	acc := labelset.NewAccumulator()

	g.ForEachVertexKey(func(u int) {
		initializeVertex(g, acc, u, opts.Inflation, &ls[u])
	})

	for i := 0; i < opts.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.ForEachVertexKey(func(u int) {
			if isStable(g, ls, u, opts.ConditionalUpdate) {
				ms[u] = ls[u]
			} else {
				updateVertex(g, acc, ls, u, opts.Inflation, &ms[u])
			}
		})
		ls, ms = ms, ls
	}

	return extractMembership(ls), nil
}

// extractMembership reads the slot-0 label of every vertex's final
// labelset; a vertex whose labelset ended up empty (only possible for a
// zero-weight vertex the caller failed to self-loop) is assigned its own id.
func extractMembership(ls []labelset.Bounded) []int {
	membership := make([]int, len(ls))
	for u := range ls {
		if label, ok := ls[u].Label0(); ok {
			membership[u] = label
		} else {
			membership[u] = u
		}
	}

	return membership
}

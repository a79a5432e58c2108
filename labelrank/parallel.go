package labelrank

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/labelrank/graph"
	"github.com/katalvlaran/labelrank/labelset"
)

// runParallel mirrors runSequential's two phases — initialize, then
// MaxIterations mixing passes with a double-buffer swap after each — but
// dispatches each vertex pass across opts.Workers goroutines instead of
// walking vertices on one. The swap itself stays single-threaded: it is
// the one synchronization point the concurrency model calls for. ls and ms
// are caller-allocated scratch buffers, sized to g.Span().
func runParallel(ctx context.Context, g graph.Capability, opts Options, ls, ms []labelset.Bounded) ([]int, error) {
	n := g.Span()

	if err := dispatch(ctx, n, opts, func(acc *labelset.Accumulator, u int) {
		initializeVertex(g, acc, u, opts.Inflation, &ls[u])
	}); err != nil {
		return nil, err
	}

	for i := 0; i < opts.MaxIterations; i++ {
		if err := dispatch(ctx, n, opts, func(acc *labelset.Accumulator, u int) {
			if isStable(g, ls, u, opts.ConditionalUpdate) {
				ms[u] = ls[u]
			} else {
				updateVertex(g, acc, ls, u, opts.Inflation, &ms[u])
			}
		}); err != nil {
			return nil, err
		}
		ls, ms = ms, ls
	}

	return extractMembership(ls), nil
}

// dispatch runs work(u) for every vertex u in [0, n), fanned out across
// opts.Workers goroutines per opts.Schedule. Every goroutine carries its
// own Accumulator, never shared and reused across every vertex it is
// assigned — reallocating one per vertex would defeat the amortized dense
// buffer the whole algorithm relies on.
func dispatch(ctx context.Context, n int, opts Options, work func(acc *labelset.Accumulator, u int)) error {
	if n == 0 {
		return nil
	}
	workers := opts.Workers
	if workers > n {
		workers = n
	}

	grp, gctx := errgroup.WithContext(ctx)

	switch opts.Schedule {
	case ScheduleStatic:
		// Chunks are assigned round-robin up front: worker w takes chunks
		// w, w+workers, w+2*workers, ... with no further coordination.
		for w := 0; w < workers; w++ {
			w := w
			grp.Go(func() error {
				acc := labelset.NewAccumulator()
				for start := w * opts.ChunkSize; start < n; start += workers * opts.ChunkSize {
					if err := gctx.Err(); err != nil {
						return err
					}
					runChunk(acc, start, chunkEnd(start, opts.ChunkSize, n), work)
				}

				return nil
			})
		}

	case ScheduleDynamic:
		// Workers pull the next fixed-size chunk on demand from a shared
		// cursor, which smooths out load when per-vertex cost varies.
		var next int64
		for w := 0; w < workers; w++ {
			grp.Go(func() error {
				acc := labelset.NewAccumulator()
				for {
					if err := gctx.Err(); err != nil {
						return err
					}
					start := int(atomic.AddInt64(&next, int64(opts.ChunkSize))) - opts.ChunkSize
					if start >= n {
						return nil
					}
					runChunk(acc, start, chunkEnd(start, opts.ChunkSize, n), work)
				}
			})
		}

	case ScheduleGuided:
		// Like dynamic, but the chunk size shrinks toward 1 as the
		// remaining range shrinks, trading coordination overhead for finer
		// load balancing near the end of the pass.
		var next int64
		for w := 0; w < workers; w++ {
			grp.Go(func() error {
				acc := labelset.NewAccumulator()
				for {
					if err := gctx.Err(); err != nil {
						return err
					}
					start := int(atomic.LoadInt64(&next))
					if start >= n {
						return nil
					}
					size := guidedChunkSize(n-start, workers, opts.ChunkSize)
					claimed := int(atomic.AddInt64(&next, int64(size))) - size
					if claimed >= n {
						return nil
					}
					runChunk(acc, claimed, chunkEnd(claimed, size, n), work)
				}
			})
		}

	default:
		// Sequential never reaches dispatch (Run routes it to
		// runSequential); fall back to a single worker rather than panic.
		grp.Go(func() error {
			acc := labelset.NewAccumulator()
			for u := 0; u < n; u++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				work(acc, u)
			}

			return nil
		})
	}

	return grp.Wait()
}

func chunkEnd(start, size, n int) int {
	end := start + size
	if end > n {
		end = n
	}

	return end
}

// guidedChunkSize halves toward 1 as remaining work shrinks, capped at the
// caller's requested chunk size, classic OpenMP guided-scheduling shape.
func guidedChunkSize(remaining, workers, maxSize int) int {
	size := remaining / (2 * workers)
	if size < 1 {
		size = 1
	}
	if size > maxSize {
		size = maxSize
	}

	return size
}

func runChunk(acc *labelset.Accumulator, start, end int, work func(acc *labelset.Accumulator, u int)) {
	for u := start; u < end; u++ {
		work(acc, u)
	}
}

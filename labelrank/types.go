package labelrank

import "runtime"

// Schedule selects how the per-vertex work of one iteration is distributed.
type Schedule int

const (
	// ScheduleSequential walks every vertex on a single goroutine, in graph
	// iteration order. This is the deterministic execution mode.
	ScheduleSequential Schedule = iota

	// ScheduleStatic partitions the vertex range into fixed, round-robin
	// chunks assigned up front — one pass, no further coordination.
	ScheduleStatic

	// ScheduleDynamic has each worker pull the next unclaimed chunk on
	// demand, which smooths out load when per-vertex cost varies (e.g. with
	// skewed degree distributions).
	ScheduleDynamic

	// ScheduleGuided behaves like ScheduleDynamic but shrinks the chunk size
	// as the remaining work shrinks, trading a little more coordination
	// overhead for finer-grained load balancing near the end of a pass.
	ScheduleGuided
)

// String renders the schedule name, mostly for CLI flags and log lines.
func (s Schedule) String() string {
	switch s {
	case ScheduleSequential:
		return "sequential"
	case ScheduleStatic:
		return "static"
	case ScheduleDynamic:
		return "dynamic"
	case ScheduleGuided:
		return "guided"
	default:
		return "unknown"
	}
}

// Options configures one Run of the LabelRank kernel.
type Options struct {
	// Repeat is the number of timed runs; the returned membership is from
	// the last run, TimeMS is averaged across all of them.
	Repeat int

	// MaxIterations is the number of outer mixing iterations performed
	// after initialization. There is no convergence-based early exit.
	MaxIterations int

	// Inflation is the exponent e applied in the fused normalize-then-
	// inflate step; e > 1 sharpens the distribution toward its heaviest
	// label.
	Inflation float64

	// ConditionalUpdate is the threshold q in the stability predicate: a
	// vertex skips its update when more than a q fraction of its neighbors
	// already contain its current top labels.
	ConditionalUpdate float64

	// Schedule selects sequential or one of the parallel vertex-partition
	// strategies.
	Schedule Schedule

	// Workers bounds the number of goroutines used under a parallel
	// Schedule. Ignored under ScheduleSequential.
	Workers int

	// ChunkSize is the number of vertices assigned to a worker at a time
	// under ScheduleStatic or handed out per pull under ScheduleDynamic;
	// under ScheduleGuided it is the upper bound on a chunk, whose size
	// otherwise shrinks with the remaining work. Ignored under
	// ScheduleSequential.
	ChunkSize int
}

// DefaultOptions returns the field defaults named by the kernel's external
// interface: Repeat=5, MaxIterations=10, Inflation=1.5, ConditionalUpdate=0.5,
// ScheduleSequential, Workers=runtime.GOMAXPROCS(0), ChunkSize=64.
func DefaultOptions() Options {
	return Options{
		Repeat:            5,
		MaxIterations:     10,
		Inflation:         1.5,
		ConditionalUpdate: 0.5,
		Schedule:          ScheduleSequential,
		Workers:           runtime.GOMAXPROCS(0),
		ChunkSize:         64,
	}
}

// Result is the outcome of one Run: the flat community membership, the
// iteration count it ran for, and the averaged wall-clock time of the
// measured loop in milliseconds.
type Result struct {
	// Membership maps vertex id to community label; Membership[u] is the
	// slot-0 label of the final ls[u], or u itself if ls[u] ended up empty.
	Membership []int

	// Iterations is the number of outer mixing iterations run.
	Iterations int

	// TimeMS is the mean wall-clock duration of the measured loop across
	// Repeat runs, in milliseconds.
	TimeMS float64
}

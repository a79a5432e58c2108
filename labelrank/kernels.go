package labelrank

import (
	"github.com/katalvlaran/labelrank/graph"
	"github.com/katalvlaran/labelrank/labelset"
)

// initializeVertex fills out with u's initial labelset: the edge-weight
// distribution over u's out-neighbors (self-loops included), truncated to
// the L heaviest and sharpened by inflation.
//
// If u carries no weight at all (degree 0, or every incident edge weighs
// zero), out is left empty — the caller is expected to have augmented the
// graph with self-loops; an unweighted isolated vertex is the one case the
// kernel cannot normalize and falls back on (spec's isolated-vertex rule).
func initializeVertex(g graph.Capability, acc *labelset.Accumulator, u int, inflation float64, out *labelset.Bounded) {
	acc.Clear()
	var sumw float64
	g.ForEachEdge(u, func(v int, w float64) {
		acc.Set(v, w)
		sumw += w
	})
	acc.Reorder()
	acc.CopyTo(out)
	if sumw > 0 {
		out.MultiplyPow(1/sumw, inflation)
	} else {
		out.Reset()
	}
}

// updateVertex fills out with u's next labelset by mixing every neighbor's
// current labelset, weighted by the connecting edge, then truncating and
// inflating exactly as initializeVertex does. Normalization divides by the
// sum of incident edge weights, not the sum of mixed probabilities — a
// neighbor's labelset may carry mass < 1 from earlier truncation, and that
// lost mass is not recovered here by design.
func updateVertex(g graph.Capability, acc *labelset.Accumulator, ls []labelset.Bounded, u int, inflation float64, out *labelset.Bounded) {
	acc.Clear()
	var sumw float64
	g.ForEachEdge(u, func(v int, w float64) {
		acc.Combine(&ls[v], w)
		sumw += w
	})
	acc.Reorder()
	acc.CopyTo(out)
	if sumw > 0 {
		out.MultiplyPow(1/sumw, inflation)
	} else {
		*out = ls[u]
	}
}

// isStable reports whether more than a q fraction of u's neighbors already
// have a labelset that is a superset of u's — in which case u's update can
// be skipped this iteration, its labelset simply carried forward unchanged.
// A vertex with no out-edges is trivially stable: there is nothing to mix.
func isStable(g graph.Capability, ls []labelset.Bounded, u int, q float64) bool {
	degree := g.Degree(u)
	if degree == 0 {
		return true
	}

	var count int
	g.ForEachEdgeKey(u, func(v int) {
		if ls[u].IsSubset(&ls[v]) {
			count++
		}
	})

	return float64(count) > q*float64(degree)
}

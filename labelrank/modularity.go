package labelrank

import "github.com/katalvlaran/labelrank/graph"

// Modularity reports the weighted Newman modularity Q of membership against
// g, at the given resolution (1.0 is the classical, unscaled definition).
// It is not part of the kernel's convergence loop — callers use it purely
// to grade a Result the way a reporting or benchmarking harness would, e.g.
// package cmd/labelrank prints a modularity score alongside every run.
//
//	Q = sum over communities c of [ e_c/(2m) - resolution*(k_c/(2m))^2 ]
//
// where 2m is the total incident edge weight across all vertices (summing
// both directions of every non-loop edge and each self-loop once, matching
// graph.Graph's adjacency storage), e_c is the incident weight internal to
// c counted the same way, and k_c is the total weighted degree of c.
func Modularity(g graph.Capability, membership []int, resolution float64) float64 {
	var twoM float64
	degree := make(map[int]float64, g.Span())
	g.ForEachVertexKey(func(u int) {
		g.ForEachEdge(u, func(_ int, w float64) {
			twoM += w
			degree[u] += w
		})
	})
	if twoM == 0 {
		return 0
	}

	var internal float64
	communityWeight := make(map[int]float64)
	g.ForEachVertexKey(func(u int) {
		communityWeight[membership[u]] += degree[u]
		g.ForEachEdge(u, func(v int, w float64) {
			if membership[u] == membership[v] {
				internal += w
			}
		})
	})

	q := internal / twoM
	for _, k := range communityWeight {
		frac := k / twoM
		q -= resolution * frac * frac
	}

	return q
}

package graph

import "errors"

// ErrTooFewVertices indicates a fixture constructor was asked for fewer
// vertices than its topology requires.
var ErrTooFewVertices = errors.New("graph: too few vertices for this topology")

// Complete builds the complete simple graph K_n with every edge weighted w
// and a self-loop of weight w on every vertex (n >= 1), over dense integer
// ids and always self-looped, since every fixture here feeds package
// labelrank directly.
func Complete(n int, w float64) (*Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	g := NewGraph(WithLoops())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j, w); err != nil {
				return nil, err
			}
		}
	}
	selfLoopAll(g, n, w)

	return g, nil
}

// Path builds the simple path 0-1-...-(n-1) with every edge weighted w and
// a self-loop of weight w on every vertex (n >= 2).
func Path(n int, w float64) (*Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	g := NewGraph(WithLoops())
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i, w); err != nil {
			return nil, err
		}
	}
	selfLoopAll(g, n, w)

	return g, nil
}

// Star builds a star with hub 0 and leaves 1..n-1, every spoke weighted w,
// and a self-loop of weight w on every vertex (n >= 2).
func Star(n int, w float64) (*Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	g := NewGraph(WithLoops())
	for i := 1; i < n; i++ {
		if err := g.AddEdge(0, i, w); err != nil {
			return nil, err
		}
	}
	selfLoopAll(g, n, w)

	return g, nil
}

// DisjointCliques builds len(sizes) vertex-disjoint cliques of the given
// sizes, laid out consecutively (clique 0 occupies ids [0,sizes[0]),
// clique 1 the next block, and so on), every edge weighted w, and a
// self-loop of weight w on every vertex. Useful for exercising
// multi-community detection, e.g. DisjointCliques([]int{3,3}, 1) for two
// equal-sized, disconnected triangles.
func DisjointCliques(sizes []int, w float64) (*Graph, error) {
	if len(sizes) == 0 {
		return nil, ErrTooFewVertices
	}
	g := NewGraph(WithLoops())
	base := 0
	for _, size := range sizes {
		if size < 1 {
			return nil, ErrTooFewVertices
		}
		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				if err := g.AddEdge(base+i, base+j, w); err != nil {
					return nil, err
				}
			}
		}
		base += size
	}
	selfLoopAll(g, base, w)

	return g, nil
}

// selfLoopAll adds a self-loop of weight w to every vertex in 0..n-1 that
// doesn't already carry one.
func selfLoopAll(g *Graph, n int, w float64) {
	for i := 0; i < n; i++ {
		if !g.HasEdge(i, i) {
			_ = g.AddEdge(i, i, w)
		}
	}
}

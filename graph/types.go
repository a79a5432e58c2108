package graph

import "sync"

// Edge represents a connection between two vertices.
//
// Edge carries no identity of its own: LabelRank never addresses an edge by
// id, only by its endpoints and weight, so Graph stores edges directly in
// the adjacency structure.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the destination vertex id.
	To int

	// Weight is the non-negative edge weight consumed by the LabelRank kernels.
	Weight float64
}

// Option configures a Graph before construction.
type Option func(g *Graph)

// WithMultiEdges permits parallel edges between the same pair of vertices:
// each AddEdge appends its own entry. Without it, a repeated AddEdge adds
// its weight to the existing entry instead.
func WithMultiEdges() Option {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself). LabelRank's
// self-loop augmentation (see AddSelfLoops) enables it on the graph it
// returns, so the source graph does not need it.
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory, thread-safe, weighted undirected graph over dense
// integer vertex ids. muVert guards the vertex set and span; muAdj guards
// the adjacency lists.
type Graph struct {
	muVert sync.RWMutex // guards vertices and span
	muAdj  sync.RWMutex // guards adjacency

	allowMulti bool // allow parallel edges (kept as separate entries)
	allowLoops bool // allow self-loops

	vertices map[int]struct{} // vertex id -> presence
	span     int              // 1 + max vertex id ever added, or 0 if empty

	// adjacency[u] is u's neighbor list in insertion order; undirected edges
	// are mirrored so adjacency[u] always holds u's complete neighborhood.
	adjacency map[int][]Edge
}

// NewGraph creates an empty Graph with the given options. By default no
// self-loops and no multi-edges are allowed.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		adjacency: make(map[int][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

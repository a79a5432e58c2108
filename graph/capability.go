package graph

import "sort"

// Capability is the read-only structural interface package labelrank
// requires of its graph collaborator: an upper bound on vertex ids,
// per-vertex degree, and three iteration hooks. *Graph satisfies it;
// callers may also satisfy it directly (e.g. over a pre-built adjacency
// slice) without depending on this package's mutation API.
type Capability interface {
	// Span returns one past the highest vertex id ever added, or 0 for an
	// empty graph. Vertex ids are expected to be dense in [0, Span()).
	Span() int

	// Degree returns the number of out-edges of u, including one per
	// self-loop.
	Degree(u int) int

	// ForEachVertexKey visits every vertex id exactly once.
	ForEachVertexKey(f func(u int))

	// ForEachEdge visits each (v, w) out-edge of u, w being the edge weight.
	ForEachEdge(u int, f func(v int, w float64))

	// ForEachEdgeKey visits each out-neighbor v of u.
	ForEachEdgeKey(u int, f func(v int))
}

// Span returns one past the highest vertex id ever added, or 0 if the graph
// is empty. Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) Span() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.span
}

// Degree returns the number of out-edges of u (self-loops count once, as
// they are stored as a single adjacency entry).
// Complexity: O(1). Concurrency: read lock on muAdj.
func (g *Graph) Degree(u int) int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return len(g.adjacency[u])
}

// ForEachVertexKey visits every vertex id in ascending order.
// Complexity: O(V log V) (stable enumeration via a sorted snapshot).
// Concurrency: read lock on muVert for the duration of the snapshot only.
func (g *Graph) ForEachVertexKey(f func(u int)) {
	g.muVert.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	sort.Ints(ids)
	for _, id := range ids {
		f(id)
	}
}

// ForEachEdge visits each (v, w) out-edge of u in adjacency order.
// Complexity: O(deg(u)). Concurrency: read lock on muAdj for the snapshot.
func (g *Graph) ForEachEdge(u int, f func(v int, w float64)) {
	for _, e := range g.Neighbors(u) {
		f(e.To, e.Weight)
	}
}

// ForEachEdgeKey visits each out-neighbor of u in adjacency order.
// Complexity: O(deg(u)). Concurrency: read lock on muAdj for the snapshot.
func (g *Graph) ForEachEdgeKey(u int, f func(v int)) {
	for _, e := range g.Neighbors(u) {
		f(e.To)
	}
}

package graph

// Symmetrize returns a new Graph containing, for every edge u->v in g
// (Graph is already undirected internally, so this amounts to a defensive
// copy), the same edge set with WithMultiEdges/WithLoops carried over.
//
// This is the first step of a file-ingestion pipeline (see package mtx):
// coordinate-format files may list only one direction of each edge, so the
// loader builds an undirected Graph and calls Symmetrize defensively before
// self-loop augmentation, guaranteeing callers get a fully mirrored
// adjacency regardless of how the source data was authored.
//
// Complexity: O(V + E). Concurrency: read locks on g only.
func Symmetrize(g *Graph) *Graph {
	out := NewGraph(optionsOf(g)...)

	g.muVert.RLock()
	for id := range g.vertices {
		_ = out.AddVertex(id)
	}
	g.muVert.RUnlock()

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	for u, edges := range g.adjacency {
		for _, e := range edges {
			if e.To < u {
				continue // already added from the other endpoint
			}
			_ = out.AddEdge(u, e.To, e.Weight)
		}
	}

	return out
}

// AddSelfLoops returns a new Graph with a self-loop of weight w added to
// every vertex that does not already have one. Selective self-looping is
// left to the caller, by filtering which vertices it adds to the source
// graph before calling this.
//
// Package labelrank never calls this itself — self-loop augmentation is an
// external collaborator, not part of the kernel — but every vertex must
// carry positive degree for its initialization step to normalize cleanly,
// so callers building a Graph from scratch should call this before running
// the algorithm.
//
// Complexity: O(V + E). Concurrency: read locks on g only.
func AddSelfLoops(g *Graph, w float64) *Graph {
	opts := optionsOf(g)
	opts = append(opts, WithLoops())
	out := NewGraph(opts...)

	g.muVert.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
		_ = out.AddVertex(id)
	}
	g.muVert.RUnlock()

	g.muAdj.RLock()
	for u, edges := range g.adjacency {
		for _, e := range edges {
			if e.To < u {
				continue
			}
			_ = out.AddEdge(u, e.To, e.Weight)
		}
	}
	g.muAdj.RUnlock()

	for _, u := range ids {
		if !out.HasEdge(u, u) {
			_ = out.AddEdge(u, u, w)
		}
	}

	return out
}

// optionsOf reproduces g's construction flags for a derived Graph.
func optionsOf(g *Graph) []Option {
	var opts []Option
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

package graph

// AddVertex inserts a vertex if missing (idempotent). Ids must be
// non-negative; Span grows to track the highest id ever added.
//
// Complexity: O(1) amortized.
// Concurrency: write lock on muVert.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrNegativeVertex
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}
	if id+1 > g.span {
		g.span = id + 1
	}

	g.muAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
	g.muAdj.Unlock()

	return nil
}

// HasVertex reports whether id has been added to the graph.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexCount returns the number of vertices added so far.
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// AddEdge inserts an undirected edge {from, to} with the given non-negative
// weight, creating either endpoint if missing. If the graph does not allow
// multi-edges and an edge between from and to already exists, their weights
// are summed in place instead of appending a parallel entry (this keeps
// repeated AddEdge calls — the common Matrix-Market ingestion pattern — a
// safe way to accumulate duplicate entries rather than an error).
//
// Self-loops (from == to) require WithLoops(); otherwise ErrLoopNotAllowed.
//
// Complexity: O(1) amortized when multi-edges are allowed; O(deg(from)) to
// scan for an existing parallel edge otherwise.
// Concurrency: write lock on muAdj; vertex creation acquires muVert internally.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if weight < 0 {
		return ErrNegativeWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if !g.allowMulti {
		if merged := mergeParallel(g.adjacency[from], to, weight); merged {
			if from != to {
				mergeParallel(g.adjacency[to], from, weight)
			}
			return nil
		}
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})
	}

	return nil
}

// mergeParallel adds w to an existing from->to entry in adj, if any, and
// reports whether it found one.
func mergeParallel(adj []Edge, to int, w float64) bool {
	for i := range adj {
		if adj[i].To == to {
			adj[i].Weight += w
			return true
		}
	}

	return false
}

// HasEdge reports whether at least one edge between from and to exists.
// Complexity: O(deg(from)). Concurrency: read lock on muAdj.
func (g *Graph) HasEdge(from, to int) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns a snapshot of u's incident edges. The returned slice
// must be treated as read-only; mutate the graph through AddEdge instead.
// Complexity: O(deg(u)). Concurrency: read lock on muAdj.
func (g *Graph) Neighbors(u int) []Edge {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	out := make([]Edge, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out
}

// EdgeCount returns the number of undirected edges (self-loops counted once).
//
// Non-loop edges are mirrored into both endpoints' adjacency lists at
// insertion time, so each is counted here only from its lower-id endpoint;
// self-loops are stored once (from == to) and counted as they appear.
//
// Complexity: O(V + E). Concurrency: read locks on muVert and muAdj.
func (g *Graph) EdgeCount() int {
	g.muVert.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	var n int
	for _, u := range ids {
		for _, e := range g.adjacency[u] {
			if e.To >= u {
				n++
			}
		}
	}

	return n
}

package graph_test

import (
	"fmt"

	"github.com/katalvlaran/labelrank/graph"
)

func ExampleGraph_AddEdge() {
	g := graph.NewGraph(graph.WithLoops())
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(0, 0, 1.0)

	fmt.Println(g.Degree(0))
	// Output: 2
}

func ExampleDisjointCliques() {
	g, _ := graph.DisjointCliques([]int{3, 3}, 1.0)

	var count int
	g.ForEachVertexKey(func(int) { count++ })
	fmt.Println(count)
	// Output: 6
}

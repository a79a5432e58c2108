package mtx

import (
	"io"

	"github.com/katalvlaran/labelrank/graph"
)

// Load runs the full ingestion pipeline a caller performs before calling
// package labelrank: parse the Matrix-Market file, symmetrize it
// defensively, then add a self-loop of weight loopWeight to every vertex
// that doesn't already carry one. The result is ready to pass to
// labelrank.Run directly.
func Load(r io.Reader, loopWeight float64) (*graph.Graph, error) {
	g, err := ReadWeighted(r)
	if err != nil {
		return nil, err
	}

	g = graph.Symmetrize(g)
	g = graph.AddSelfLoops(g, loopWeight)

	return g, nil
}

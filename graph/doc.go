// Package graph provides a thread-safe, in-memory weighted undirected graph
// keyed by dense integer vertex ids, plus the read-only structural interface
// that community-detection algorithms (see package labelrank) consume.
//
// It adapts github.com/katalvlaran/lvlath's string-keyed core.Graph to the
// integer-keyed, always-weighted shape that LabelRank needs: vertex ids are
// the label ids the algorithm propagates, so they must be dense in
// [0, Span()) rather than arbitrary strings.
//
// Under the hood:
//
//	types.go      — Edge, Option, Graph, NewGraph
//	methods.go    — vertex/edge lifecycle: AddVertex, AddEdge, Neighbors, ...
//	capability.go — the Span/Degree/ForEachVertexKey/ForEachEdge/ForEachEdgeKey
//	                surface required by package labelrank
//	augment.go    — Symmetrize and AddSelfLoops, the preprocessing steps the
//	                LabelRank core deliberately does not perform itself
//	fixtures.go   — deterministic synthetic topologies for tests and examples
package graph

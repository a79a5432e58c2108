// Package labelrank implements the LabelRank community-detection kernel: a
// bounded-width, label-propagation-style algorithm that assigns every vertex
// of a weighted undirected graph to a community by iteratively mixing its
// neighbors' top-L label distributions (package labelset), sharpening the
// result with an inflation exponent, and optionally skipping vertices whose
// neighborhood already agrees with them.
//
// The package consumes any graph.Capability — it never constructs or mutates
// a graph itself. Preprocessing a raw graph into the shape LabelRank expects
// (undirected, self-looped) is the caller's job; see package graph's
// Symmetrize and AddSelfLoops, or package mtx for file-based ingestion.
//
// Run is the single entry point. It accepts both a Sequential schedule and
// a data-parallel one; see Options.Schedule.
package labelrank

// Package mtx reads Matrix-Market coordinate files into a package graph
// Graph and carries the ingestion pipeline a caller runs before ever calling
// the LabelRank kernel: load, symmetrize defensively (Matrix-Market files
// commonly list only one direction of each edge), then self-loop every
// vertex so package labelrank never sees a zero-weight vertex.
//
// Parsing is plain bufio/strconv: no library in the retrieved example pack
// implements the Matrix-Market coordinate format, and the format itself is
// a handful of whitespace-delimited numeric fields, not worth a dependency.
package mtx

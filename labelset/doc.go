// Package labelset implements the bounded top-L label distribution and its
// dense accumulator counterpart, the two data structures the LabelRank
// algorithm (package labelrank) mixes and truncates on every vertex, every
// iteration.
//
// Label ids are vertex ids and are therefore non-negative by construction,
// which collides with the natural "zero value means empty slot" convention.
// Both Bounded and Accumulator resolve this by storing every label
// internally as label+1, so 0 uniformly means "unused" and vertex id 0
// remains a legitimate label to callers, who only ever see decoded (raw)
// label ids through this package's exported API.
//
// Under the hood:
//
//	bounded.go     — Bounded: the fixed-capacity LS<L> array and its algebra
//	accumulator.go — Accumulator: the growable dense merge buffer AL
package labelset

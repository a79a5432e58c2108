package labelset

import "sort"

// Accumulator is the growable dense merge buffer AL: a per-worker scratch
// resource that Initialize-vertex and Update-vertex (package labelrank) use
// to combine arbitrarily many neighbor distributions before truncating down
// to a Bounded labelset. One Accumulator is created per worker and reused
// across every vertex it processes — Clear resets it in time proportional
// to the number of keys actually touched, never to the size of data, which
// is what keeps the whole algorithm from degrading to O(|V|^2) per
// iteration.
type Accumulator struct {
	data []float64 // dense table indexed by encoded label id (label+1)
	keys []int     // encoded label ids ever set since the last Clear, in insertion/reorder order
}

// NewAccumulator returns an empty Accumulator with no preallocated capacity.
// Callers processing a known vertex count typically call Clear once and let
// data grow to the largest label id encountered; it is never shrunk.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Clear resets every touched slot back to zero and empties keys, in
// O(len(keys)) time. The underlying data slice's capacity is retained.
func (a *Accumulator) Clear() {
	for _, k := range a.keys {
		a.data[k-1] = 0
	}
	a.keys = a.keys[:0]
}

// ensure grows data so that index key-1 is addressable.
func (a *Accumulator) ensure(key int) {
	if key <= len(a.data) {
		return
	}
	grown := make([]float64, key)
	copy(grown, a.data)
	a.data = grown
}

// Set writes value at label, anchoring label in keys if this is its first
// write since the last Clear (including a first write of 0, which the spec
// tolerates as a harmless, if spurious, anchor).
func (a *Accumulator) Set(label int, value float64) {
	key := encodeLabel(label)
	a.ensure(key)
	if a.data[key-1] == 0 {
		a.keys = append(a.keys, key)
	}
	a.data[key-1] = value
}

// Accumulate adds value to label's running total, anchoring label in keys
// on its first touch.
func (a *Accumulator) Accumulate(label int, value float64) {
	key := encodeLabel(label)
	a.ensure(key)
	if a.data[key-1] == 0 {
		a.keys = append(a.keys, key)
	}
	a.data[key-1] += value
}

// Combine adds w*v to this accumulator for every occupied (label, v) in x —
// the neighbor-mixing step Update-vertex performs once per incident edge.
func (a *Accumulator) Combine(x *Bounded, w float64) {
	for i, k := range x.keys {
		if k == 0 {
			continue
		}
		a.Accumulate(decodeLabel(k), w*x.vals[i])
	}
}

// ForEach visits f(label, value) for every key touched since the last
// Clear, in keys' current order.
func (a *Accumulator) ForEach(f func(label int, value float64)) {
	for _, k := range a.keys {
		f(decodeLabel(k), a.data[k-1])
	}
}

// Reorder sorts keys by non-increasing accumulated value in place — after
// Reorder, keys[0] holds the heaviest label seen since the last Clear. Equal
// values are ordered by ascending label, so the result does not depend on
// the order in which labels were first touched.
func (a *Accumulator) Reorder() {
	sort.Slice(a.keys, func(i, j int) bool {
		vi, vj := a.data[a.keys[i]-1], a.data[a.keys[j]-1]
		if vi != vj {
			return vi > vj
		}

		return a.keys[i] < a.keys[j]
	})
}

// KeyAt returns the decoded label at position i of keys.
func (a *Accumulator) KeyAt(i int) int {
	return decodeLabel(a.keys[i])
}

// GetAt returns the decoded label and value at position i of keys.
func (a *Accumulator) GetAt(i int) (int, float64) {
	k := a.keys[i]

	return decodeLabel(k), a.data[k-1]
}

// Len reports how many distinct labels have been touched since the last Clear.
func (a *Accumulator) Len() int {
	return len(a.keys)
}

// CopyTo writes the first M = min(Capacity, Len()) keys — the top-M by
// value once Reorder has run — into target[0:M), zero-filling the
// remainder. This is the only place truncation from the accumulator's
// arbitrary width down to Capacity occurs.
func (a *Accumulator) CopyTo(target *Bounded) {
	m := len(a.keys)
	if m > Capacity {
		m = Capacity
	}
	for i := 0; i < m; i++ {
		label, value := a.GetAt(i)
		target.set(i, label, value)
	}
	target.clearFrom(m)
}

package labelset

import "math"

// Reset clears every slot back to empty, in place.
func (b *Bounded) Reset() {
	*b = Bounded{}
}

// Size returns the number of occupied slots.
func (b *Bounded) Size() int {
	var n int
	for _, k := range b.keys {
		if k != 0 {
			n++
		}
	}

	return n
}

// Has reports whether label occupies some slot.
func (b *Bounded) Has(label int) bool {
	key := encodeLabel(label)
	for _, k := range b.keys {
		if k == key {
			return true
		}
	}

	return false
}

// Sum returns the sum of the occupied slots' probabilities.
func (b *Bounded) Sum() float64 {
	var s float64
	for i, k := range b.keys {
		if k != 0 {
			s += b.vals[i]
		}
	}

	return s
}

// Multiply scales every occupied slot's probability by m in place.
func (b *Bounded) Multiply(m float64) {
	for i, k := range b.keys {
		if k != 0 {
			b.vals[i] *= m
		}
	}
}

// Pow replaces every occupied probability v with v**e in place.
func (b *Bounded) Pow(e float64) {
	for i, k := range b.keys {
		if k != 0 {
			b.vals[i] = math.Pow(b.vals[i], e)
		}
	}
}

// MultiplyPow replaces every occupied probability v with (v*m)**e in place —
// the fused normalize-then-inflate step the vertex kernels apply after
// every copy from an Accumulator.
func (b *Bounded) MultiplyPow(m, e float64) {
	for i, k := range b.keys {
		if k != 0 {
			b.vals[i] = math.Pow(b.vals[i]*m, e)
		}
	}
}

// MatchCount returns the number of labels occupied in both b and other.
func (b *Bounded) MatchCount(other *Bounded) int {
	var n int
	for _, k := range b.keys {
		if k == 0 {
			continue
		}
		if other.Has(decodeLabel(k)) {
			n++
		}
	}

	return n
}

// MatchValue returns the sum of b's probabilities restricted to labels that
// also occupy a slot in other.
func (b *Bounded) MatchValue(other *Bounded) float64 {
	var s float64
	for i, k := range b.keys {
		if k == 0 {
			continue
		}
		if other.Has(decodeLabel(k)) {
			s += b.vals[i]
		}
	}

	return s
}

// IsSubset reports whether every label occupied in b also occupies a slot
// in other. The empty labelset is trivially a subset of anything, including
// itself, which makes IsSubset reflexive (b.IsSubset(b) is always true).
func (b *Bounded) IsSubset(other *Bounded) bool {
	for _, k := range b.keys {
		if k == 0 {
			continue
		}
		if !other.Has(decodeLabel(k)) {
			return false
		}
	}

	return true
}

// Get returns the decoded label and value of slot i (0 <= i < Capacity) and
// whether that slot is occupied.
func (b *Bounded) Get(i int) (label int, value float64, ok bool) {
	k := b.keys[i]
	if k == 0 {
		return 0, 0, false
	}

	return decodeLabel(k), b.vals[i], true
}

// Label0 returns slot 0's label — the vertex's current best community — and
// whether it is occupied.
func (b *Bounded) Label0() (int, bool) {
	if b.keys[0] == 0 {
		return 0, false
	}

	return decodeLabel(b.keys[0]), true
}

// set writes (label, value) into slot i, marking it occupied. Used only by
// Accumulator.CopyTo, the sole place truncation from arbitrary width to
// Capacity happens.
func (b *Bounded) set(i, label int, value float64) {
	b.keys[i] = encodeLabel(label)
	b.vals[i] = value
}

// clearFrom zero-fills slots [i, Capacity), restoring the empty-slot
// invariant for any tail CopyTo didn't have enough source keys to fill.
func (b *Bounded) clearFrom(i int) {
	for ; i < Capacity; i++ {
		b.keys[i] = 0
		b.vals[i] = 0
	}
}

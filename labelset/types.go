package labelset

// Capacity is the fixed width L of a Bounded labelset: the number of
// (label, probability) slots kept per vertex. Capacity is fixed at 4 to
// bound per-vertex work; LabelRank's accuracy/cost tradeoff is tuned around
// that width, so it is a compile-time constant rather than a per-Options
// field.
const Capacity = 4

// Bounded is the fixed-capacity, probability-sorted top-L label distribution
// for one vertex (LS<L> in the algebra). The zero value is a valid empty
// labelset: all Capacity slots unused.
//
// Internally, an occupied slot's key is the raw label plus one (0 is never a
// valid key); an empty slot's key is exactly 0. Occupied slots are expected
// to precede empty ones and to be ordered by non-increasing value, but
// Bounded itself does not enforce either — both are established by whoever
// writes into it (Accumulator.CopyTo is the only place truncation happens,
// see spec semantics in package labelrank's vertex kernels).
type Bounded struct {
	keys [Capacity]int     // encoded label ids (label+1), 0 = empty slot
	vals [Capacity]float64 // probabilities, paired index-for-index with keys
}

// NewBounded returns an empty Bounded labelset.
func NewBounded() Bounded {
	return Bounded{}
}

func encodeLabel(label int) int { return label + 1 }
func decodeLabel(key int) int   { return key - 1 }

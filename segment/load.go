package segment

// LoadSegment summarizes the total demand over a contiguous traversal of
// clients. Merge sums loads; unlike TimeWindowSegment, no travel-dependent
// term is involved, so Merge is both associative and commutative.
type LoadSegment struct {
	load int
}

// NewLoadSegment builds the one-client segment carrying demand.
func NewLoadSegment(demand int) LoadSegment {
	return LoadSegment{load: demand}
}

// Load returns the segment's total demand.
func (l LoadSegment) Load() int { return l.load }

// MergeLoad combines two or more load segments by summing.
func MergeLoad(first, second LoadSegment, rest ...LoadSegment) LoadSegment {
	total := first.load + second.load
	for _, seg := range rest {
		total += seg.load
	}
	return LoadSegment{load: total}
}

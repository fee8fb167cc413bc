// Package segment implements the associative merge algebra used to evaluate
// local search moves in O(1): TimeWindowSegment, LoadSegment and
// DistanceSegment summarize a contiguous traversal of clients and can be
// combined with an O(1) Merge that respects travel from the last client of
// the left operand to the first client of the right operand.
//
// Merge is associative but not commutative: Merge(Merge(A, B), C) must equal
// Merge(A, Merge(B, C)) for any split point, which is what lets the search
// engine evaluate a hypothetical move by combining a handful of precomputed
// segments instead of re-traversing a route.
//
// Grounded on TimeWindowSegment::merge in
// _examples/original_source/hgs/src/TimeWindowSegment.cpp.
package segment

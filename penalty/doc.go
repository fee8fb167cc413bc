// Package penalty implements the cost evaluator that maps excess load and
// total time warp to additive penalty terms. Coefficients are read-only from
// the search engine's perspective: an external adaptive scheme (out of
// scope for this module) is expected to call SetCapacityPenalty /
// SetTimeWarpPenalty between generations based on observed feasibility rates.
//
// Grounded on PenaltyManager in
// _examples/original_source/hgs/include/PenaltyManager.h and
// _examples/original_source/hgs/src/PenaltyManager.cpp.
package penalty

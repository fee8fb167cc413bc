// Package solution defines Individual, the immutable value snapshot of a
// routing decision: a sequence of routes (one per vehicle, non-empty routes
// shifted to the low indices), together with its derived total distance,
// excess load, time warp and pred/succ neighbour structure.
//
// An Individual never changes after construction; the search engine
// produces a new one on every call rather than mutating an existing value.
//
// Grounded on Individual in
// _examples/original_source/hgs/include/Individual.h and
// _examples/original_source/hgs/src/Individual.cpp.
package solution

// Package search implements the Local Search engine: an arena-indexed,
// intrusively linked route/node model supporting O(1) move evaluation via
// segment merges, the granular neighborhood builder, the (N,M)-Exchange node
// operator family, and subpath enumeration.
//
// Grounded on _examples/original_source/hgs/include/{Node,Route,LocalSearch}.h
// and _examples/original_source/hgs/src/{LocalSearch,operators/Exchange}.cpp,
// with the Node/Route ownership graph reshaped from raw pointers to
// arena indices per the arena design note (spec.md §9): every Node and
// every Route lives in a contiguous slice owned by the LocalSearch engine,
// and references between them are plain ints into those slices rather than
// pointers, so the whole engine is trivially copyable and has no lifetime
// ambiguity.
package search

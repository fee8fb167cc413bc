// Package core is the root of a hybrid genetic search engine for capacitated
// vehicle routing problems with time windows (CVRPTW).
//
// Given a depot, a set of customers with demand and time windows, a fleet of
// identical-capacity vehicles, and a distance/duration matrix, the engine
// produces a feasible (or best-known penalized-infeasible) assignment of
// every customer to exactly one vehicle route.
//
// The module is organized by concern, each living in its own subpackage:
//
//	problem/    — immutable problem instance: clients, depot, distance/duration matrices
//	segment/    — associative merge algebra over time-window, load and distance segments
//	penalty/    — cost evaluator mapping excess load / time warp to additive penalties
//	rng/        — deterministic random source contract used throughout the engine
//	search/     — the local search engine: intrusive route/node arena, neighborhoods,
//	              node operators (relocate/swap/2-opt family), subpath enumeration
//	solution/   — Individual: an immutable snapshot of a routing decision
//	population/ — biased-fitness ranked population of feasible/infeasible individuals
//
// The engine is single-threaded and deterministic given a seeded random
// source; it does not parse instance files or run an outer genetic loop, and
// beyond rendering an Individual in the "Route #i: ..." / "Distance: D" text
// format (solution.Individual.String / WriteTo), writing results is left to
// callers.
package core

// Package rng defines the random-source contract the search engine and
// population manager consume (uniform randint and sequence shuffling), and
// provides a deterministic default implementation.
//
// Every implementation must be deterministic given a seed: two runs with the
// same seed and the same sequence of calls must produce identical results,
// which is what makes property 8 in spec.md's testable properties
// ("Determinism") possible.
//
// The deterministic-seeding and in-place shuffle idioms are grounded on
// _examples/katalvlaran-lvlath/tsp/rng.go (rngFromSeed /
// shuffleIntsInPlace), adapted here into a small exported Source type rather
// than package-private helpers, since rng is consumed across package
// boundaries (search, population). Source offers no way to derive
// independent sub-streams.
package rng

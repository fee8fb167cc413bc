package rng

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults, matching
// the policy in _examples/katalvlaran-lvlath/tsp/rng.go.
const defaultSeed int64 = 1

// Source is the default, deterministic RNG implementation: a thin wrapper
// around math/rand.Rand, adapted from the seeding/shuffle pattern in
// _examples/katalvlaran-lvlath/tsp/rng.go. It is not goroutine-safe: a
// Source must not be shared across goroutines (the engine is
// single-threaded by design, see spec.md §5).
type Source struct {
	r *rand.Rand
}

// NewSource returns a deterministic Source seeded with seed. seed==0 maps to
// a fixed default seed rather than an unseeded zero state.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Randint returns a uniform random integer in [0, n).
func (s *Source) Randint(n int) int {
	return s.r.Intn(n)
}

// ShuffleInts performs an in-place Fisher-Yates shuffle of a.
func (s *Source) ShuffleInts(a []int) {
	for i := len(a) - 1; i > 0; i-- {
		j := s.r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

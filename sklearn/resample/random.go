package resample

import (
	"math/rand/v2"
	"sync"
)

// RandomSource is the draw sequence used for duplicate selection and
// shuffling. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// LockedSource is a seeded PCG source whose draws are serialised, so one
// resampler can be shared between goroutines without a data race.
type LockedSource struct {
	mu   sync.Mutex
	r    *rand.Rand
	seed uint64
}

// NewSource returns a LockedSource seeded with seed. Two sources with the
// same seed produce the same sequence.
func NewSource(seed uint64) *LockedSource {
	return &LockedSource{
		r:    rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// newUnseededSource returns a LockedSource with a fresh random seed.
func newUnseededSource() *LockedSource {
	return NewSource(rand.Uint64())
}

// Seed returns the seed the source was created with.
func (s *LockedSource) Seed() uint64 {
	return s.seed
}

// IntN implements RandomSource.
func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Shuffle implements RandomSource. The whole permutation is drawn under the
// lock.
func (s *LockedSource) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(n, swap)
}

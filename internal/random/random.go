package random

import "math/rand"

// Source draws award amounts from the shared math/rand generator. Claims need
// a uniform spread, not cryptographic randomness, and the top-level generator
// is safe for concurrent use.
type Source struct{}

// New creates a new Source.
func New() *Source {
	return &Source{}
}

// IntInRange returns a uniformly distributed integer in the inclusive range
// [min, max].
func (s *Source) IntInRange(min, max int) int {
	return min + rand.Intn(max-min+1)
}

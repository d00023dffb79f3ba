package level

import "math"

// RNG is a deterministic xorshift64 generator. The same seed always
// yields the same stream, which keeps level generation reproducible.
type RNG struct {
	state uint64
}

// defaultSeed replaces a zero seed, which would lock xorshift at zero.
const defaultSeed = 88172645463325252

// NewRNG creates a generator for the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if s == 0 {
		s = defaultSeed
	}
	return &RNG{state: s}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Intn returns a uniformly distributed int in [0, n). Draws above the
// largest multiple of n are rejected so no value is favoured.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	un := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%un
	for {
		v := r.Next()
		if v < limit {
			return int(v % un)
		}
	}
}

// Shuffle permutes n elements with Fisher-Yates, calling swap for each step.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

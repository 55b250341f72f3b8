package ut

import "math"

const (
	randMul1 = 1664525
	randAdd1 = 1013904223
)

// DefaultSeed is the seed used when a generator is created with seed 0.
const DefaultSeed uint64 = 65654363

// Rand is a deterministic linear congruential generator. Harnesses use it so
// a failing run can be replayed from its seed.
type Rand struct {
	counter uint64
}

// NewRand creates a generator seeded with seed.
func NewRand(seed uint64) *Rand {
	r := &Rand{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the generator state.
func (r *Rand) SetSeed(seed uint64) {
	if seed == 0 {
		seed = DefaultSeed
	}
	r.counter = seed
}

// Next returns the next raw value.
func (r *Rand) Next() uint64 {
	r.counter = r.counter*randMul1 + randAdd1
	return r.counter
}

// Interval returns a pseudo-random number in [low, high].
func (r *Rand) Interval(low, high int) int {
	if high < low {
		low, high = high, low
	}
	if high == low {
		return low
	}
	span := uint64(high-low) + 1
	return low + int((r.Next()>>16)%span)
}

// Int31 returns a non-negative pseudo-random int32 as an int.
func (r *Rand) Int31() int {
	return int((r.Next() >> 16) % math.MaxInt32)
}

// Bool returns a pseudo-random boolean.
func (r *Rand) Bool() bool {
	return (r.Next()>>16)%2 == 1
}

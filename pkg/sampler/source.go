package sampler

import (
	"fmt"
	"math/rand/v2"
)

// Number is the set of value types a batch can hold.
type Number interface {
	~int | ~float64
}

// Source produces one random value per call.
type Source[T Number] func() T

// Range is a closed interval [Min, Max].
type Range[T Number] struct {
	Min T
	Max T
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}

// NewRand returns a PCG generator seeded from the runtime's global source.
// Each batch owns one, so batches never share engine state and no locking
// is needed even when two batches of the same type run at once.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// IntSource returns a discrete uniform source over the integers in rng.
func IntSource(r *rand.Rand, rng Range[int]) (Source[int], error) {
	if r == nil {
		return nil, ErrNilRand
	}
	if rng.Min > rng.Max {
		return nil, fmt.Errorf("int source %s: %w", rng, ErrInvalidRange)
	}

	// Unsigned arithmetic keeps the span exact for ranges wider than MaxInt.
	// A full-width range wraps size to 0, where every uint64 is valid.
	lo := uint64(rng.Min)
	size := uint64(rng.Max) - lo + 1
	return func() int {
		if size == 0 {
			return int(lo + r.Uint64())
		}
		return int(lo + r.Uint64N(size))
	}, nil
}

// FloatSource returns a continuous uniform source over rng.
func FloatSource(r *rand.Rand, rng Range[float64]) (Source[float64], error) {
	if r == nil {
		return nil, ErrNilRand
	}
	// Negated so NaN bounds are rejected too
	if !(rng.Min <= rng.Max) {
		return nil, fmt.Errorf("float source %s: %w", rng, ErrInvalidRange)
	}

	// Interpolating avoids Max-Min, which overflows to +Inf on wide ranges.
	return func() float64 {
		u := r.Float64()
		v := rng.Min*(1-u) + rng.Max*u
		return min(max(v, rng.Min), rng.Max)
	}, nil
}

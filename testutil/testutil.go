package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FiniteFloat64 returns a finite float64 drawn from random bit
// patterns, so the full exponent range (subnormals included) is
// exercised, not just the unit interval.
func (r *RNG) FiniteFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		f := math.Float64frombits(r.rand.Uint64())
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
}

// FiniteFloat32 returns a finite float32 drawn from random bit
// patterns.
func (r *RNG) FiniteFloat32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		f := math.Float32frombits(uint32(r.rand.Uint64()))
		if f == f && !float32IsInf(f) {
			return f
		}
	}
}

func float32IsInf(f float32) bool {
	return f > math.MaxFloat32 || f < -math.MaxFloat32
}

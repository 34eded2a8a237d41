package nn

import (
	"math"
	"math/rand"
)

// Initializer draws the starting value of one parameter.
// fanIn and fanOut describe the layer the parameter belongs to.
type Initializer func(fanIn, fanOut int) float64

// Uniform draws from U(-bound, bound), ignoring the layer shape.
//
// Uniform(rng, 1) gives the small random values in [-1, 1] the explorer
// starts every weight and bias from.
func Uniform(rng *rand.Rand, bound float64) Initializer {
	return func(_, _ int) float64 {
		return (rng.Float64()*2.0 - 1.0) * bound
	}
}

// Xavier (Glorot) initialization.
//
// Draws from U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
func Xavier(rng *rand.Rand) Initializer {
	return func(fanIn, fanOut int) float64 {
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		return (rng.Float64()*2.0 - 1.0) * bound
	}
}

// Constant returns an initializer that always yields v.
func Constant(v float64) Initializer {
	return func(_, _ int) float64 {
		return v
	}
}

// NewRand returns a generator seeded with seed, or with a time-derived seed
// when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rand.Int63() //nolint:gosec // weight initialization, not security-critical
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // weight initialization, not security-critical
}

package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine with a whole-number period in samples.
func DeterministicSine(periodSamples, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi / periodSamples
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// GaussianBatch returns batches rows of unit-variance Gaussian noise, each
// length samples long, flattened row-major.
func GaussianBatch(seed int64, batches, length int) []float64 {
	out := make([]float64, batches*length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Ramp returns 0, 1, ..., n-1.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Package backend defines the numeric capabilities the segmentation engine
// and spectral layer are written against, and a registry of implementations.
//
// A Backend supplies element-wise kernels over flat float64 rows and builds
// fixed-size real block transforms. Implementation packages register
// themselves from init(); import them for side effects:
//
//	import _ "github.com/cwbudde/algo-segment/dsp/backend/gonum"
//
// All implementations must agree within 1e-5 absolute on identical input.
package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBackend is returned by Lookup for unregistered names.
	ErrUnknownBackend = errors.New("backend: unknown backend")
	// ErrTransformSize is returned for odd or non-positive transform sizes
	// and for buffers whose length does not match the transform.
	ErrTransformSize = errors.New("backend: invalid transform size")
)

// Backend provides element-wise kernels and block transforms.
// Implementations must be safe for concurrent use.
type Backend interface {
	// Name is the registry key, e.g. "generic".
	Name() string

	// Zeros returns a zero-filled slice of length n.
	Zeros(n int) []float64

	// Mul computes dst[i] = a[i] * b[i]. All slices have equal length.
	Mul(dst, a, b []float64)

	// AddInPlace computes dst[i] += src[i]. Both slices have equal length.
	AddInPlace(dst, src []float64)

	// NewTransform returns a real block transform of the given even size.
	NewTransform(size int) (Transform, error)
}

// Transform is a real-to-complex block transform pair of fixed even size.
//
// Forward is unnormalized and yields Size()/2+1 bins. Inverse scales by
// 1/Size so that Inverse(Forward(x)) reproduces x. A Transform owns scratch
// memory and is not safe for concurrent use.
type Transform interface {
	Size() int
	Bins() int
	Forward(dst []complex128, src []float64) error
	Inverse(dst []float64, src []complex128) error
}

// ValidateSize checks that size is usable for a real block transform.
func ValidateSize(size int) error {
	if size <= 0 || size%2 != 0 {
		return fmt.Errorf("%w: %d must be positive and even", ErrTransformSize, size)
	}
	return nil
}

// CheckForward validates buffer lengths for a Forward call.
func CheckForward(t Transform, dst []complex128, src []float64) error {
	if len(src) != t.Size() || len(dst) != t.Bins() {
		return fmt.Errorf("%w: forward wants %d samples -> %d bins, got %d -> %d",
			ErrTransformSize, t.Size(), t.Bins(), len(src), len(dst))
	}
	return nil
}

// CheckInverse validates buffer lengths for an Inverse call.
func CheckInverse(t Transform, dst []float64, src []complex128) error {
	if len(src) != t.Bins() || len(dst) != t.Size() {
		return fmt.Errorf("%w: inverse wants %d bins -> %d samples, got %d -> %d",
			ErrTransformSize, t.Bins(), t.Size(), len(src), len(dst))
	}
	return nil
}

// Hermitian expands a half spectrum of n/2+1 bins into the full n-point
// spectrum of a real signal. The imaginary parts of the DC and Nyquist bins
// are dropped.
func Hermitian(dst, half []complex128) {
	n := len(dst)
	dst[0] = complex(real(half[0]), 0)
	dst[n/2] = complex(real(half[n/2]), 0)
	for k := 1; k < n/2; k++ {
		dst[k] = half[k]
		dst[n-k] = complex(real(half[k]), -imag(half[k]))
	}
}

// Package generic registers the pure-Go backend.
//
// Element-wise kernels are plain loops. Block transforms use the radix-2 and
// Bluestein FFTs of github.com/mjibson/go-dsp, so any even size works.
package generic

import (
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-segment/dsp/backend"
)

// Name is the registry key of this backend. It is the default backend.
const Name = backend.DefaultName

func init() {
	backend.Register(Backend{}, 0)
}

// Backend is the pure-Go implementation. The zero value is ready for use.
type Backend struct{}

// Name returns "generic".
func (Backend) Name() string { return Name }

// Zeros returns a zero-filled slice of length n.
func (Backend) Zeros(n int) []float64 { return make([]float64, n) }

// Mul computes dst[i] = a[i] * b[i].
func (Backend) Mul(dst, a, b []float64) {
	if len(a) != len(dst) || len(b) != len(dst) {
		panic("generic: Mul length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// AddInPlace computes dst[i] += src[i].
func (Backend) AddInPlace(dst, src []float64) {
	if len(src) != len(dst) {
		panic("generic: AddInPlace length mismatch")
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// NewTransform returns a go-dsp backed block transform.
func (Backend) NewTransform(size int) (backend.Transform, error) {
	if err := backend.ValidateSize(size); err != nil {
		return nil, err
	}
	return &transform{size: size, full: make([]complex128, size)}, nil
}

type transform struct {
	size int
	full []complex128
}

func (t *transform) Size() int { return t.size }
func (t *transform) Bins() int { return t.size/2 + 1 }

func (t *transform) Forward(dst []complex128, src []float64) error {
	if err := backend.CheckForward(t, dst, src); err != nil {
		return err
	}
	copy(dst, fft.FFTReal(src))
	return nil
}

func (t *transform) Inverse(dst []float64, src []complex128) error {
	if err := backend.CheckInverse(t, dst, src); err != nil {
		return err
	}
	backend.Hermitian(t.full, src)
	for i, v := range fft.IFFT(t.full) {
		dst[i] = real(v)
	}
	return nil
}

// Package gonum registers a backend built on gonum: floats for element-wise
// kernels and dsp/fourier (FFTPACK) for block transforms.
package gonum

import (
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-segment/dsp/backend"
)

// Name is the registry key of this backend.
const Name = "gonum"

func init() {
	backend.Register(Backend{}, 5)
}

// Backend is the gonum implementation. The zero value is ready for use.
type Backend struct{}

// Name returns "gonum".
func (Backend) Name() string { return Name }

// Zeros returns a zero-filled slice of length n.
func (Backend) Zeros(n int) []float64 { return make([]float64, n) }

// Mul computes dst[i] = a[i] * b[i].
func (Backend) Mul(dst, a, b []float64) { floats.MulTo(dst, a, b) }

// AddInPlace computes dst[i] += src[i].
func (Backend) AddInPlace(dst, src []float64) { floats.Add(dst, src) }

// NewTransform returns a real FFT of the given size.
func (Backend) NewTransform(size int) (backend.Transform, error) {
	if err := backend.ValidateSize(size); err != nil {
		return nil, err
	}
	return &transform{fft: fourier.NewFFT(size), size: size}, nil
}

type transform struct {
	fft  *fourier.FFT
	size int
}

func (t *transform) Size() int { return t.size }
func (t *transform) Bins() int { return t.size/2 + 1 }

func (t *transform) Forward(dst []complex128, src []float64) error {
	if err := backend.CheckForward(t, dst, src); err != nil {
		return err
	}
	t.fft.Coefficients(dst, src)
	return nil
}

// Inverse scales by 1/size since fourier.FFT.Sequence is unnormalized.
func (t *transform) Inverse(dst []float64, src []complex128) error {
	if err := backend.CheckInverse(t, dst, src); err != nil {
		return err
	}
	t.fft.Sequence(dst, src)
	floats.Scale(1/float64(t.size), dst)
	return nil
}

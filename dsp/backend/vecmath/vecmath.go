// Package vecmath registers the SIMD backend: algo-vecmath kernels for the
// element-wise operations and algo-fft plans for block transforms.
package vecmath

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	vm "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-segment/dsp/backend"
)

// Name is the registry key of this backend.
const Name = "vecmath"

func init() {
	backend.Register(Backend{}, 10)
}

// Backend dispatches to the best vecmath implementation for the running CPU.
type Backend struct{}

// Name returns "vecmath".
func (Backend) Name() string { return Name }

// Zeros returns a zero-filled slice of length n.
func (Backend) Zeros(n int) []float64 { return make([]float64, n) }

// Mul computes dst[i] = a[i] * b[i].
func (Backend) Mul(dst, a, b []float64) { vm.MulBlock(dst, a, b) }

// AddInPlace computes dst[i] += src[i].
func (Backend) AddInPlace(dst, src []float64) { vm.AddBlockInPlace(dst, src) }

// NewTransform plans a complex FFT of the given size.
func (Backend) NewTransform(size int) (backend.Transform, error) {
	if err := backend.ValidateSize(size); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("vecmath: fft plan %d: %w", size, err)
	}

	return &transform{
		plan: plan,
		size: size,
		in:   make([]complex128, size),
		out:  make([]complex128, size),
	}, nil
}

type transform struct {
	plan *algofft.Plan[complex128]
	size int
	in   []complex128
	out  []complex128
}

func (t *transform) Size() int { return t.size }
func (t *transform) Bins() int { return t.size/2 + 1 }

func (t *transform) Forward(dst []complex128, src []float64) error {
	if err := backend.CheckForward(t, dst, src); err != nil {
		return err
	}

	for i, v := range src {
		t.in[i] = complex(v, 0)
	}

	if err := t.plan.Forward(t.out, t.in); err != nil {
		return fmt.Errorf("vecmath: forward fft: %w", err)
	}

	copy(dst, t.out[:t.Bins()])
	return nil
}

func (t *transform) Inverse(dst []float64, src []complex128) error {
	if err := backend.CheckInverse(t, dst, src); err != nil {
		return err
	}

	backend.Hermitian(t.in, src)

	if err := t.plan.Inverse(t.out, t.in); err != nil {
		return fmt.Errorf("vecmath: inverse fft: %w", err)
	}

	for i, v := range t.out {
		dst[i] = real(v)
	}
	return nil
}

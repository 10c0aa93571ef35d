package spectral

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-segment/dsp/array"
	"github.com/cwbudde/algo-segment/dsp/segment"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// MagnitudePhase splits z into |z| and arg(z), both with the shape of z.
// Magnitudes use the SIMD kernels of algo-vecmath.
func MagnitudePhase(z *array.Complex) (mag, phase *array.Real) {
	if z == nil {
		return nil, nil
	}

	shape := z.Shape()
	mag, _ = array.NewReal(shape...)
	phase, _ = array.NewReal(shape...)

	n := z.Dim(-1)
	re, im, buf := getScratch(n)
	defer putScratch(buf)

	for r := range z.Rows() {
		row := z.Row(r)
		ph := phase.Row(r)
		for i, c := range row {
			re[i] = real(c)
			im[i] = imag(c)
			ph[i] = cmplx.Phase(c)
		}
		vecmath.Magnitude(mag.Row(r), re, im)
	}

	return mag, phase
}

// Assemble builds mag*exp(i*phase). The first (DC) and last (Nyquist) bin of
// every row are made purely real, as a real signal requires.
//
// Assemble only requires mag and phase to share a shape; it does not know the
// segment size. The bin count is checked against a window by
// Spectrogram.InversePolar, or by Spectrogram.Inverse on the result.
func Assemble(mag, phase *array.Real) (*array.Complex, error) {
	if err := sameShape(mag, phase); err != nil {
		return nil, err
	}

	out, err := array.NewComplex(mag.Shape()...)
	if err != nil {
		return nil, err
	}

	for r := range mag.Rows() {
		m, p, z := mag.Row(r), phase.Row(r), out.Row(r)
		for i := range z {
			s, c := math.Sincos(p[i])
			z[i] = complex(m[i]*c, m[i]*s)
		}
		realEdges(z)
	}

	return out, nil
}

// AssembleRealImag builds re + i*im with the DC and Nyquist bins made purely
// real. Like Assemble it does not check the bin count.
func AssembleRealImag(re, im *array.Real) (*array.Complex, error) {
	if err := sameShape(re, im); err != nil {
		return nil, err
	}

	out, err := array.NewComplex(re.Shape()...)
	if err != nil {
		return nil, err
	}

	for r := range re.Rows() {
		a, b, z := re.Row(r), im.Row(r), out.Row(r)
		for i := range z {
			z[i] = complex(a[i], b[i])
		}
		realEdges(z)
	}

	return out, nil
}

// RealImag splits z into its real and imaginary parts.
func RealImag(z *array.Complex) (re, im *array.Real) {
	if z == nil {
		return nil, nil
	}

	re, _ = array.NewReal(z.Shape()...)
	im, _ = array.NewReal(z.Shape()...)
	for i, c := range z.Data() {
		re.Data()[i] = real(c)
		im.Data()[i] = imag(c)
	}

	return re, im
}

func realEdges(z []complex128) {
	if len(z) == 0 {
		return
	}
	z[0] = complex(real(z[0]), 0)
	z[len(z)-1] = complex(real(z[len(z)-1]), 0)
}

func sameShape(a, b *array.Real) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil input", segment.ErrInvalidRank)
	}
	if !slices.Equal(a.Shape(), b.Shape()) {
		return fmt.Errorf("%w: shapes %v and %v", segment.ErrDimensionMismatch, a.Shape(), b.Shape())
	}
	return nil
}

// Package cola certifies the constant overlap-add property of a window and
// hop size pair.
//
// The check follows from Poisson summation: the overlap-add of a window at hop
// H is periodic in H, so its Fourier series only has harmonics at k/H for
// k = 0..H-1. The k = 0 term is the constant the sum should equal; every other
// harmonic contributes a ripple whose amplitude is bounded by |W(k/H)|/H,
// where W is the window's DTFT evaluated by direct correlation.
package cola

import (
	"math"
	"math/cmplx"
)

// DefaultTolerance is the residual below which a window is reported as COLA.
const DefaultTolerance = 1e-5

// Report is the outcome of a COLA check.
type Report struct {
	// IsCOLA is Residual < tolerance.
	IsCOLA bool
	// Normalization is the midpoint of the bounds on the overlap-add sum.
	// Dividing a window by it gives unit overlap-add gain.
	Normalization float64
	// Residual is the width of the bound, i.e. the worst-case peak-to-peak
	// ripple of the overlap-add sum.
	Residual float64
}

// Option configures a COLA check.
type Option func(*config)

type config struct {
	tolerance float64
}

// WithTolerance overrides DefaultTolerance. Non-positive values are ignored.
func WithTolerance(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.tolerance = eps
		}
	}
}

// Check estimates whether copies of window shifted by multiples of hop sum to
// a constant.
//
// Check never fails. An empty window or a non-positive hop yields a report
// with IsCOLA false and an infinite residual. The cost is O(hop*len(window)),
// so it belongs at design time rather than in a per-block path.
func Check(window []float64, hop int, opts ...Option) Report {
	cfg := config{tolerance: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(window) == 0 || hop <= 0 {
		return Report{Residual: math.Inf(1)}
	}

	h := float64(hop)

	sum := 0.0
	for _, v := range window {
		sum += v
	}

	// The bounds are dc+spread and dc-spread. Their midpoint is dc itself;
	// keeping it separate from the accumulated spread makes it exact.
	dc := sum / h
	spread := 0.0

	// hop == 1 leaves the loop empty: every shift lands on every sample.
	for k := 1; k < hop; k++ {
		spread += cmplx.Abs(dtft(window, float64(k)/h)) / h
	}

	ubound := dc + spread
	lbound := dc - spread
	residual := ubound - lbound

	return Report{
		IsCOLA:        residual < cfg.tolerance,
		Normalization: dc,
		Residual:      residual,
	}
}

// Envelope returns one period of the steady-state overlap-add sum of window at
// the given hop: out[n] = sum over integer m of window[n + m*hop] for
// n in [0, hop). For a COLA pair every entry equals Report.Normalization.
func Envelope(window []float64, hop int) []float64 {
	if len(window) == 0 || hop <= 0 {
		return nil
	}

	out := make([]float64, hop)
	for i, v := range window {
		out[i%hop] += v
	}

	return out
}

// dtft evaluates sum_n w[n] * exp(-2*pi*i*f*n) at normalized frequency f.
func dtft(w []float64, f float64) complex128 {
	omega := 2 * math.Pi * f

	re, im := 0.0, 0.0
	for n, v := range w {
		s, c := math.Sincos(omega * float64(n))
		re += v * c
		im -= v * s
	}

	return complex(re, im)
}

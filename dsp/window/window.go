package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBartlett
	TypeKaiser
)

var typeNames = map[Type]string{
	TypeRectangular: "Rectangular",
	TypeHann:        "Hann",
	TypeHamming:     "Hamming",
	TypeBlackman:    "Blackman",
	TypeBartlett:    "Bartlett",
	TypeKaiser:      "Kaiser",
}

// String returns the display name of the window type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "Unknown"
}

// Cosine-sum coefficients. The Blackman terms are the "exact" values that
// place nulls at the third and fourth sidelobes.
var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{25.0 / 46.0, -21.0 / 46.0}
	blackmanCoeffs = []float64{7938.0 / 18608.0, -9240.0 / 18608.0, 1430.0 / 18608.0}
)

// DefaultKaiserBeta is used when no beta is configured for TypeKaiser.
const DefaultKaiserBeta = 8.0

// Option configures window generation.
type Option func(*config)

type config struct {
	beta      float64
	symmetric bool
}

func defaultConfig() config {
	return config{
		beta: DefaultKaiserBeta,
	}
}

// WithBeta configures the Kaiser shape parameter. Negative values are ignored.
func WithBeta(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.beta = beta
		}
	}
}

// WithSymmetric selects the symmetric (filter design) form instead of the
// default periodic form used for overlap-add framing.
func WithSymmetric() Option {
	return func(c *config) {
		c.symmetric = true
	}
}

// Generate returns window coefficients of the given length.
//
// The periodic form is the default: a length-N window is the first N samples
// of a length-N+1 symmetric window, which is what makes Hann and Hamming
// exactly COLA at hops of N/2 and N/4.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, i, length, cfg)
	}

	// Cosine sums can land a hair below zero at the edges.
	for i, v := range out {
		if v < 0 {
			out[i] = 0
		}
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// Rectangular returns an all-ones window.
func Rectangular(size int) ([]float64, error) {
	return Generate(TypeRectangular, size), validateLength(size)
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHann, size, opts...), validateLength(size)
}

// Hamming returns Hamming window coefficients (alpha = 25/46).
func Hamming(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeHamming, size, opts...), validateLength(size)
}

// Blackman returns exact Blackman window coefficients.
func Blackman(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeBlackman, size, opts...), validateLength(size)
}

// Bartlett returns triangular window coefficients.
func Bartlett(size int, opts ...Option) ([]float64, error) {
	return Generate(TypeBartlett, size, opts...), validateLength(size)
}

// Kaiser returns Kaiser window coefficients.
func Kaiser(size int, beta float64, opts ...Option) ([]float64, error) {
	if err := validateKaiser(size, beta); err != nil {
		return nil, err
	}

	return Generate(TypeKaiser, size, append(opts, WithBeta(beta))...), nil
}

func evalWindow(t Type, n, size int, cfg config) float64 {
	den := float64(size)
	if cfg.symmetric {
		den = float64(size - 1)
	}

	if den <= 0 {
		return 1
	}

	x := float64(n) / den

	switch t {
	case TypeRectangular:
		return 1
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeKaiser:
		// Periodic Kaiser spans N+1 points, so the half width is (N+1)/2.
		half := (den + 1) / 2
		if cfg.symmetric {
			half = den / 2
		}

		r := (float64(n) - den/2) / half

		return kaiserAt(r, cfg.beta)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func kaiserAt(r, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 evaluates the modified Bessel function of the first kind, order
// zero, by its power series. Terms shrink quickly for the beta range used by
// Kaiser windows, so the loop exits well before the cap.
func besselI0(x float64) float64 {
	half := x / 2
	sum := 1.0
	term := 1.0

	for k := 1; k < 500; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term

		if term < sum*1e-17 {
			break
		}
	}

	return sum
}

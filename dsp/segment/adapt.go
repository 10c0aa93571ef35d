package segment

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-segment/dsp/cola"
)

// AdaptOption configures Adapt.
type AdaptOption func(*adaptConfig)

type adaptConfig struct {
	tolerance      float64
	edgeCorrection bool
	normalize      bool
}

func defaultAdaptConfig() adaptConfig {
	return adaptConfig{
		tolerance:      cola.DefaultTolerance,
		edgeCorrection: true,
		normalize:      true,
	}
}

// WithTolerance sets the COLA residual tolerance. Non-positive values are
// ignored.
func WithTolerance(eps float64) AdaptOption {
	return func(c *adaptConfig) {
		if eps > 0 {
			c.tolerance = eps
		}
	}
}

// WithEdgeCorrection toggles boundary envelopes for the first and last frame.
// It is on by default.
func WithEdgeCorrection(enabled bool) AdaptOption {
	return func(c *adaptConfig) {
		c.edgeCorrection = enabled
	}
}

// WithNormalization toggles division by the COLA normalization constant.
// It is on by default. With it off the reconstruction gain equals
// the COLA normalization instead of one.
func WithNormalization(enabled bool) AdaptOption {
	return func(c *adaptConfig) {
		c.normalize = enabled
	}
}

// Adapt turns a raw window into a Window for the given scheme.
//
// OverlapAdd and WeightedOverlapAdd require the raw window to pass the COLA
// check at hop. The window is divided by the COLA normalization first; for
// WeightedOverlapAdd the square root is taken afterwards. AnalysisOnly keeps
// raw unmodified and skips the COLA requirement.
func Adapt(raw []float64, hop int, scheme Scheme, opts ...AdaptOption) (*Window, error) {
	cfg := defaultAdaptConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !scheme.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScheme, int(scheme))
	}
	if err := validateShape(len(raw), hop); err != nil {
		return nil, err
	}
	for i, v := range raw {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: sample %d is %v", ErrNegativeWindow, i, v)
		}
	}

	report := cola.Check(raw, hop, cola.WithTolerance(cfg.tolerance))

	w := &Window{
		hop:            hop,
		scheme:         scheme,
		report:         report,
		edgeCorrection: cfg.edgeCorrection && scheme != AnalysisOnly,
		normalized:     cfg.normalize && scheme != AnalysisOnly,
		tolerance:      cfg.tolerance,
		raw:            slices.Clone(raw),
	}

	if scheme == AnalysisOnly {
		w.analysis = w.raw
		for s := range w.analysisEdges {
			w.analysisEdges[s] = w.analysis
		}
		return w, nil
	}

	if !report.IsCOLA {
		return nil, fmt.Errorf("%w: residual %g >= tolerance %g at hop %d",
			ErrNonCOLA, report.Residual, cfg.tolerance, hop)
	}
	if report.Normalization <= 0 {
		return nil, fmt.Errorf("%w: overlap-add gain %g", ErrNonCOLA, report.Normalization)
	}

	norm := 1.0
	if w.normalized {
		norm = report.Normalization
	}

	base := make([]float64, len(raw))
	for i, v := range raw {
		base[i] = v / norm
	}

	var edges [3][]float64
	for s := range edges {
		if w.edgeCorrection {
			edges[s] = BoundaryEnvelope(base, hop, Side(s))
		} else {
			edges[s] = base
		}
	}

	switch scheme {
	case OverlapAdd:
		ones := make([]float64, len(raw))
		for i := range ones {
			ones[i] = 1
		}
		w.analysis = ones
		w.synthesis = base
		for s := range edges {
			w.analysisEdges[s] = ones
			w.synthesisEdges[s] = edges[s]
		}
	case WeightedOverlapAdd:
		root := sqrtOf(base)
		w.analysis = root
		w.synthesis = root
		for s := range edges {
			r := sqrtOf(edges[s])
			w.analysisEdges[s] = r
			w.synthesisEdges[s] = r
		}
	}

	return w, nil
}

func sqrtOf(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Sqrt(v)
	}
	return out
}

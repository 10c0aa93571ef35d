package segment

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-segment/dsp/cola"
)

// Window is an immutable analysis/synthesis window pair at a fixed hop.
//
// Normalization and boundary envelopes are computed once at construction.
// A Window is safe to share between goroutines; accessors return copies.
type Window struct {
	hop    int
	scheme Scheme

	analysis  []float64
	synthesis []float64 // nil for AnalysisOnly

	// edges[side] hold the per-side envelopes: index Lead, Trail, Solo.
	analysisEdges  [3][]float64
	synthesisEdges [3][]float64

	report         cola.Report
	edgeCorrection bool
	normalized     bool
	tolerance      float64

	// raw and preset record how the window was built, for Params.
	raw    []float64
	preset string
}

// NewWindow builds a Window from explicit analysis and synthesis samples.
// synthesis may be nil for an analysis-only window. No COLA check and no
// edge correction are applied; every frame uses the plain windows.
//
// The scheme reported is AnalysisOnly without synthesis, OverlapAdd when the
// analysis window is flat, and WeightedOverlapAdd otherwise.
func NewWindow(hop int, analysis, synthesis []float64) (*Window, error) {
	if err := validateShape(len(analysis), hop); err != nil {
		return nil, err
	}
	if synthesis != nil && len(synthesis) != len(analysis) {
		return nil, fmt.Errorf("%w: synthesis length %d, analysis length %d",
			ErrDimensionMismatch, len(synthesis), len(analysis))
	}

	w := &Window{
		hop:       hop,
		analysis:  slices.Clone(analysis),
		synthesis: slices.Clone(synthesis),
	}

	switch {
	case synthesis == nil:
		w.scheme = AnalysisOnly
	case isFlat(analysis):
		w.scheme = OverlapAdd
	default:
		w.scheme = WeightedOverlapAdd
	}

	for s := range w.analysisEdges {
		w.analysisEdges[s] = w.analysis
		w.synthesisEdges[s] = w.synthesis
	}

	return w, nil
}

// Hop returns the hop size in samples.
func (w *Window) Hop() int { return w.hop }

// SegmentSize returns the frame length in samples.
func (w *Window) SegmentSize() int { return len(w.analysis) }

// Bins returns the number of real-transform bins per frame.
func (w *Window) Bins() int { return len(w.analysis)/2 + 1 }

// Scheme returns the reconstruction scheme.
func (w *Window) Scheme() Scheme { return w.scheme }

// Analysis returns a copy of the steady-state analysis window.
func (w *Window) Analysis() []float64 { return slices.Clone(w.analysis) }

// Synthesis returns a copy of the steady-state synthesis window, or nil.
func (w *Window) Synthesis() []float64 { return slices.Clone(w.synthesis) }

// HasSynthesis reports whether Unsegment is available.
func (w *Window) HasSynthesis() bool { return w.synthesis != nil }

// COLA returns the report the window was certified with. It is the zero
// Report for windows built with NewWindow.
func (w *Window) COLA() cola.Report { return w.report }

// EdgeCorrection reports whether boundary frames use corrected envelopes.
func (w *Window) EdgeCorrection() bool { return w.edgeCorrection }

// Edges returns copies of the analysis and synthesis envelopes used for a
// boundary frame. synthesis is nil for analysis-only windows.
func (w *Window) Edges(side Side) (analysis, synthesis []float64) {
	if side < Lead || side > Solo {
		return nil, nil
	}
	return slices.Clone(w.analysisEdges[side]), slices.Clone(w.synthesisEdges[side])
}

// analysisFor returns the analysis envelope of frame k out of n.
func (w *Window) analysisFor(k, n int) []float64 {
	return pick(w.analysisEdges, w.analysis, k, n)
}

// synthesisFor returns the synthesis envelope of frame k out of n.
func (w *Window) synthesisFor(k, n int) []float64 {
	return pick(w.synthesisEdges, w.synthesis, k, n)
}

func pick(edges [3][]float64, steady []float64, k, n int) []float64 {
	switch {
	case n == 1:
		return edges[Solo]
	case k == 0:
		return edges[Lead]
	case k == n-1:
		return edges[Trail]
	default:
		return steady
	}
}

func validateShape(size, hop int) error {
	if size == 0 || size%2 != 0 {
		return fmt.Errorf("%w: %d", ErrOddSegmentSize, size)
	}
	if hop < 1 || hop > size {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidHop, hop, size)
	}
	return nil
}

func isFlat(w []float64) bool {
	for _, v := range w {
		if v != 1 {
			return false
		}
	}
	return true
}

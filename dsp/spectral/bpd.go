package spectral

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-segment/dsp/array"
	"github.com/cwbudde/algo-segment/dsp/segment"
)

// Wrap maps an angle to (-pi, pi].
func Wrap(theta float64) float64 {
	r := math.Remainder(theta, 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return r
}

// modulation returns the expected phase advance per hop of every bin:
// 2*pi*f/size*hop.
func modulation(w *segment.Window) []float64 {
	mod := make([]float64, w.Bins())
	scale := 2 * math.Pi * float64(w.Hop()) / float64(w.SegmentSize())
	for f := range mod {
		mod[f] = scale * float64(f)
	}
	return mod
}

// BPD converts a phase spectrogram of shape (frames, bins) or
// (batch, frames, bins) into baseband phase differences:
//
//	bpd[0, f] = wrap(phase[0, f] - mod(f))
//	bpd[k, f] = wrap(phase[k, f] - phase[k-1, f] - mod(f))
//
// where mod(f) is the phase a sinusoid centred on bin f advances per hop.
func BPD(w *segment.Window, phase *array.Real) (*array.Real, error) {
	frames, err := checkPhaseShape(w, phase)
	if err != nil {
		return nil, err
	}

	mod := modulation(w)
	out, err := array.NewReal(phase.Shape()...)
	if err != nil {
		return nil, err
	}

	for r := range phase.Rows() {
		cur, dst := phase.Row(r), out.Row(r)
		if r%frames == 0 {
			for f := range dst {
				dst[f] = Wrap(cur[f] - mod[f])
			}
			continue
		}
		prev := phase.Row(r - 1)
		for f := range dst {
			dst[f] = Wrap(cur[f] - prev[f] - mod[f])
		}
	}

	return out, nil
}

// InverseBPD reverses BPD by accumulating bpd + mod along the frame axis:
//
//	phase[k, f] = wrap(sum over j <= k of (bpd[j, f] + mod(f)))
func InverseBPD(w *segment.Window, bpd *array.Real) (*array.Real, error) {
	frames, err := checkPhaseShape(w, bpd)
	if err != nil {
		return nil, err
	}

	mod := modulation(w)
	out, err := array.NewReal(bpd.Shape()...)
	if err != nil {
		return nil, err
	}

	acc := make([]float64, len(mod))
	for r := range bpd.Rows() {
		if r%frames == 0 {
			clear(acc)
		}
		src, dst := bpd.Row(r), out.Row(r)
		for f := range dst {
			// Wrapping the running sum keeps it bounded without changing
			// the wrapped result.
			acc[f] = Wrap(acc[f] + src[f] + mod[f])
			dst[f] = acc[f]
		}
	}

	return out, nil
}

// checkPhaseShape validates rank and bin count and returns the frame count.
func checkPhaseShape(w *segment.Window, phase *array.Real) (int, error) {
	if phase == nil {
		return 0, fmt.Errorf("%w: nil phase", segment.ErrInvalidRank)
	}
	if err := checkRank("phase", phase.Rank()); err != nil {
		return 0, err
	}
	if phase.Dim(-1) != w.Bins() {
		return 0, fmt.Errorf("%w: %d bins, want %d", segment.ErrDimensionMismatch, phase.Dim(-1), w.Bins())
	}
	return phase.Dim(-2), nil
}

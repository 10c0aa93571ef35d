package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-segment/dsp/array"
	"github.com/cwbudde/algo-segment/dsp/backend"
	"github.com/cwbudde/algo-segment/dsp/segment"
)

// Spectrogram computes short-time spectra with a Segmenter's window and
// backend. It is safe for concurrent use.
type Spectrogram struct {
	seg  *segment.Segmenter
	size int
	bins int
}

// New returns a Spectrogram over seg.
func New(seg *segment.Segmenter) (*Spectrogram, error) {
	size := seg.Window().SegmentSize()
	if size%2 != 0 {
		return nil, fmt.Errorf("%w: %d", segment.ErrOddSegmentSize, size)
	}

	// Fail early if the backend cannot transform this size.
	if _, err := seg.Backend().NewTransform(size); err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}

	return &Spectrogram{seg: seg, size: size, bins: size/2 + 1}, nil
}

// Segmenter returns the underlying Segmenter.
func (s *Spectrogram) Segmenter() *segment.Segmenter { return s.seg }

// Bins returns the number of bins per frame.
func (s *Spectrogram) Bins() int { return s.bins }

// Forward segments x and transforms every frame. The result has the shape
// of Segment(x) with the last axis replaced by Bins().
func (s *Spectrogram) Forward(x *array.Real) (*array.Complex, error) {
	frames, err := s.seg.Segment(x)
	if err != nil {
		return nil, err
	}
	return s.FramesToSpectra(frames)
}

// Inverse transforms every frame of spectra back to the time domain and
// overlap-adds the result.
func (s *Spectrogram) Inverse(spectra *array.Complex) (*array.Real, error) {
	frames, err := s.SpectraToFrames(spectra)
	if err != nil {
		return nil, err
	}
	return s.seg.Unsegment(frames)
}

// FramesToSpectra applies the forward transform to each frame of a rank-2 or
// rank-3 frame set.
func (s *Spectrogram) FramesToSpectra(frames *array.Real) (*array.Complex, error) {
	if frames == nil {
		return nil, fmt.Errorf("%w: nil frames", segment.ErrInvalidRank)
	}
	if err := checkRank("frames", frames.Rank()); err != nil {
		return nil, err
	}
	if frames.Dim(-1) != s.size {
		return nil, fmt.Errorf("%w: frame length %d, segment size %d",
			segment.ErrDimensionMismatch, frames.Dim(-1), s.size)
	}

	shape := frames.Shape()
	shape[len(shape)-1] = s.bins
	out, err := array.NewComplex(shape...)
	if err != nil {
		return nil, err
	}

	err = s.forChunks(frames.Rows(), func(tr backend.Transform, row int) error {
		return tr.Forward(out.Row(row), frames.Row(row))
	})
	if err != nil {
		return nil, fmt.Errorf("spectral: forward: %w", err)
	}

	return out, nil
}

// SpectraToFrames applies the inverse transform to each frame of a rank-2 or
// rank-3 spectrum set. The imaginary parts of the DC and Nyquist bins are
// ignored.
func (s *Spectrogram) SpectraToFrames(spectra *array.Complex) (*array.Real, error) {
	if spectra == nil {
		return nil, fmt.Errorf("%w: nil spectra", segment.ErrInvalidRank)
	}
	if err := checkRank("spectra", spectra.Rank()); err != nil {
		return nil, err
	}
	if spectra.Dim(-1) != s.bins {
		return nil, fmt.Errorf("%w: %d bins, want %d", segment.ErrDimensionMismatch, spectra.Dim(-1), s.bins)
	}

	shape := spectra.Shape()
	shape[len(shape)-1] = s.size
	out, err := array.NewReal(shape...)
	if err != nil {
		return nil, err
	}

	err = s.forChunks(spectra.Rows(), func(tr backend.Transform, row int) error {
		return tr.Inverse(out.Row(row), spectra.Row(row))
	})
	if err != nil {
		return nil, fmt.Errorf("spectral: inverse: %w", err)
	}

	return out, nil
}

// forChunks splits rows into one contiguous chunk per worker. Each chunk
// owns a Transform since transforms carry scratch state.
func (s *Spectrogram) forChunks(rows int, fn func(tr backend.Transform, row int) error) error {
	workers := min(s.seg.Workers(), rows)
	if workers < 1 {
		return nil
	}
	chunk := (rows + workers - 1) / workers

	s.seg.Logger().Debug("spectral transform",
		"backend", s.seg.Backend().Name(), "rows", rows, "size", s.size, "workers", workers)

	return segment.ForRows(workers, workers, func(w int) error {
		tr, err := s.seg.Backend().NewTransform(s.size)
		if err != nil {
			return err
		}
		for r := w * chunk; r < min((w+1)*chunk, rows); r++ {
			if err := fn(tr, r); err != nil {
				return err
			}
		}
		return nil
	})
}

func checkRank(what string, rank int) error {
	if rank < 2 || rank > 3 {
		return fmt.Errorf("%w: %s must be rank 2 or 3, got %d", segment.ErrInvalidRank, what, rank)
	}
	return nil
}

// ForwardPolar returns the magnitude and phase spectrograms of x.
func (s *Spectrogram) ForwardPolar(x *array.Real) (mag, phase *array.Real, err error) {
	z, err := s.Forward(x)
	if err != nil {
		return nil, nil, err
	}
	mag, phase = MagnitudePhase(z)
	return mag, phase, nil
}

// InversePolar reconstructs a signal from magnitude and phase spectrograms.
// Both must have Bins() entries on the last axis.
func (s *Spectrogram) InversePolar(mag, phase *array.Real) (*array.Real, error) {
	if mag != nil && mag.Dim(-1) != s.bins {
		return nil, fmt.Errorf("%w: %d bins, want %d", segment.ErrDimensionMismatch, mag.Dim(-1), s.bins)
	}
	z, err := Assemble(mag, phase)
	if err != nil {
		return nil, err
	}
	return s.Inverse(z)
}

// ForwardBPD returns the magnitude and baseband phase difference
// spectrograms of x.
func (s *Spectrogram) ForwardBPD(x *array.Real) (mag, bpd *array.Real, err error) {
	mag, phase, err := s.ForwardPolar(x)
	if err != nil {
		return nil, nil, err
	}
	bpd, err = BPD(s.seg.Window(), phase)
	if err != nil {
		return nil, nil, err
	}
	return mag, bpd, nil
}

// InverseBPD reconstructs a signal from magnitude and baseband phase
// difference spectrograms.
func (s *Spectrogram) InverseBPD(mag, bpd *array.Real) (*array.Real, error) {
	phase, err := InverseBPD(s.seg.Window(), bpd)
	if err != nil {
		return nil, err
	}
	return s.InversePolar(mag, phase)
}

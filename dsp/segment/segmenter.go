package segment

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-segment/dsp/array"
	"github.com/cwbudde/algo-segment/dsp/backend"
	"github.com/cwbudde/algo-segment/dsp/backend/generic"
)

// Option configures a Segmenter.
type Option func(*config)

type config struct {
	backend backend.Backend
	workers int
	logger  *slog.Logger
}

func defaultConfig() config {
	return config{
		backend: generic.Backend{},
		workers: 1,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithBackend selects the numeric backend. Nil is ignored. The default is
// the backend registered as backend.DefaultName.
func WithBackend(b backend.Backend) Option {
	return func(c *config) {
		if b != nil {
			c.backend = b
		}
	}
}

// WithWorkers sets how many batch rows are processed concurrently.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithLogger enables debug records for each call. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Segmenter frames signals with a Window and reconstructs them by
// overlap-add. It holds no mutable state and is safe for concurrent use.
type Segmenter struct {
	w       *Window
	be      backend.Backend
	workers int
	logger  *slog.Logger
	scratch *array.Pool
}

// New returns a Segmenter for w, which must be non-nil.
func New(w *Window, opts ...Option) *Segmenter {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Segmenter{
		w:       w,
		be:      cfg.backend,
		workers: cfg.workers,
		logger:  cfg.logger,
		scratch: array.NewPool(),
	}
}

// Window returns the window the Segmenter was built with.
func (s *Segmenter) Window() *Window { return s.w }

// Backend returns the numeric backend in use.
func (s *Segmenter) Backend() backend.Backend { return s.be }

// Workers returns the batch-row concurrency limit.
func (s *Segmenter) Workers() int { return s.workers }

// Logger returns the configured logger.
func (s *Segmenter) Logger() *slog.Logger { return s.logger }

// NumSegments returns the number of complete frames of length size at hop
// that fit in numSamples:
//
//	K = floor(N/hop) - floor(size/hop) + 1
//
// clamped to floor((N-size)/hop) + 1 when hop does not divide size, so that
// no frame reads past the input. The result is 0 when nothing fits.
func NumSegments(numSamples, hop, size int) int {
	if hop <= 0 || size <= 0 || numSamples < size {
		return 0
	}
	k := numSamples/hop - size/hop + 1
	return min(k, (numSamples-size)/hop+1)
}

// NumSamples returns the reconstruction length of k frames:
// (k-1)*hop + size, or 0 for k <= 0.
func NumSamples(k, hop, size int) int {
	if k <= 0 {
		return 0
	}
	return (k-1)*hop + size
}

// Segment frames x, a rank-1 signal or a rank-2 batch of signals, into a
// rank-2 (frames x size) or rank-3 (batch x frames x size) frame set.
// Each frame is multiplied by the analysis window; the first and last frames
// use the boundary envelopes.
func (s *Segmenter) Segment(x *array.Real) (*array.Real, error) {
	if x == nil {
		return nil, fmt.Errorf("%w: nil input", ErrInvalidRank)
	}

	var batches, n int
	switch x.Rank() {
	case 1:
		batches, n = 1, x.Dim(0)
	case 2:
		batches, n = x.Dim(0), x.Dim(1)
	default:
		return nil, fmt.Errorf("%w: segment accepts rank 1 or 2, got %d", ErrInvalidRank, x.Rank())
	}

	hop, size := s.w.hop, s.w.SegmentSize()
	k := NumSegments(n, hop, size)
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d samples, segment size %d", ErrInputTooShort, n, size)
	}

	frames, err := array.NewReal(batches, k, size)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("segment",
		"backend", s.be.Name(), "batches", batches, "samples", n,
		"frames", k, "size", size, "hop", hop)

	err = s.forRows(batches, func(b int) error {
		row := x.Row(b)
		for f := range k {
			start := f * hop
			s.be.Mul(frames.Row(b*k+f), row[start:start+size], s.w.analysisFor(f, k))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if x.Rank() == 1 {
		return frames.Reshape(k, size)
	}
	return frames, nil
}

// Unsegment overlap-adds a rank-2 or rank-3 frame set into a rank-1 signal
// or rank-2 batch. Each frame is multiplied by the synthesis window and
// scatter-added at its hop offset; rows of a batch run concurrently.
func (s *Segmenter) Unsegment(frames *array.Real) (*array.Real, error) {
	if !s.w.HasSynthesis() {
		return nil, ErrMissingSynthesisWindow
	}
	if frames == nil {
		return nil, fmt.Errorf("%w: nil frame set", ErrInvalidRank)
	}

	var batches, k int
	switch frames.Rank() {
	case 2:
		batches, k = 1, frames.Dim(0)
	case 3:
		batches, k = frames.Dim(0), frames.Dim(1)
	default:
		return nil, fmt.Errorf("%w: unsegment accepts rank 2 or 3, got %d", ErrInvalidRank, frames.Rank())
	}

	hop, size := s.w.hop, s.w.SegmentSize()
	if frames.Dim(-1) != size {
		return nil, fmt.Errorf("%w: frame length %d, segment size %d", ErrDimensionMismatch, frames.Dim(-1), size)
	}
	if k == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrInputTooShort)
	}

	n := NumSamples(k, hop, size)
	out, err := array.Matrix(batches, n, s.be.Zeros(batches*n))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("unsegment",
		"backend", s.be.Name(), "batches", batches, "frames", k,
		"samples", n, "size", size, "hop", hop)

	err = s.forRows(batches, func(b int) error {
		tmp := s.scratch.Get(size)
		defer s.scratch.Put(tmp)

		row := out.Row(b)
		for f := range k {
			start := f * hop
			s.be.Mul(tmp.Data(), frames.Row(b*k+f), s.w.synthesisFor(f, k))
			s.be.AddInPlace(row[start:start+size], tmp.Data())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if frames.Rank() == 2 {
		return out.Reshape(n)
	}
	return out, nil
}

// forRows runs fn for every batch row, at most s.workers at a time.
func (s *Segmenter) forRows(rows int, fn func(row int) error) error {
	return ForRows(rows, s.workers, fn)
}

// ForRows runs fn for rows 0..rows-1 with at most workers concurrent calls
// and returns the first error.
func ForRows(rows, workers int, fn func(row int) error) error {
	if workers <= 1 || rows <= 1 {
		for r := range rows {
			if err := fn(r); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for r := range rows {
		g.Go(func() error { return fn(r) })
	}
	return g.Wait()
}

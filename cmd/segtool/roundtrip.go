package main

import (
	"fmt"
	"math"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-segment/dsp/array"
	"github.com/cwbudde/algo-segment/dsp/backend"
	"github.com/cwbudde/algo-segment/dsp/segment"
	"github.com/cwbudde/algo-segment/dsp/spectral"
	"github.com/cwbudde/algo-segment/dsp/window"
)

type roundtripRow struct {
	Backend  string `json:"backend" yaml:"backend"`
	Priority int    `json:"priority" yaml:"priority"`
	Frames   int    `json:"frames" yaml:"frames"`
	// MaxError is the largest deviation of the reconstruction from the input.
	MaxError float64 `json:"max_error" yaml:"max_error"`
	// MaxDeviation is the largest deviation from the first backend's output.
	MaxDeviation float64 `json:"max_deviation" yaml:"max_deviation"`
	Elapsed      string  `json:"elapsed" yaml:"elapsed"`
}

func newRoundtripCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Segment and reconstruct a noise batch on every backend",
		Long: `roundtrip builds a window from a preset, segments a batch of Gaussian
noise and overlap-adds it back on each registered backend. With --spectral
the frames also pass through a forward and inverse real transform.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := windowFromFlags(a)
			if err != nil {
				return err
			}

			batches := a.v.GetInt("batches")
			samples := a.v.GetInt("samples")
			if batches <= 0 || samples <= 0 {
				return fmt.Errorf("batches and samples must be > 0, got %d and %d", batches, samples)
			}

			x, err := array.Matrix(batches, samples, gaussian(a.v.GetInt64("seed"), batches*samples))
			if err != nil {
				return err
			}

			entries := backend.Global.List()
			if name := a.v.GetString("backend"); name != "" {
				b, err := backend.Lookup(name)
				if err != nil {
					return err
				}
				entries = []backend.Entry{{Backend: b}}
			}

			var (
				rows      []roundtripRow
				reference *array.Real
			)
			for _, e := range entries {
				seg := segment.New(w,
					segment.WithBackend(e.Backend),
					segment.WithWorkers(a.v.GetInt("workers")),
					segment.WithLogger(a.logger),
				)

				start := time.Now()
				y, frames, err := reconstruct(seg, x, a.v.GetBool("spectral"))
				if err != nil {
					return fmt.Errorf("backend %s: %w", e.Backend.Name(), err)
				}
				elapsed := time.Since(start)

				if reference == nil {
					reference = y
				}

				rows = append(rows, roundtripRow{
					Backend:      e.Backend.Name(),
					Priority:     e.Priority,
					Frames:       frames,
					MaxError:     maxRowError(y, x),
					MaxDeviation: maxRowError(y, reference),
					Elapsed:      elapsed.Round(time.Microsecond).String(),
				})
			}

			return render(cmd.OutOrStdout(), a.v.GetString("output"), rows, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "# %s %s size=%d hop=%d batches=%d samples=%d\n",
					a.v.GetString("preset"), w.Scheme(), w.SegmentSize(), w.Hop(), batches, samples)
				fmt.Fprintln(tw, "BACKEND\tPRIORITY\tFRAMES\tMAX ERROR\tMAX DEVIATION\tELAPSED")
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%.3e\t%.3e\t%s\n",
						r.Backend, r.Priority, r.Frames, r.MaxError, r.MaxDeviation, r.Elapsed)
				}
			})
		},
	}

	cmd.Flags().String("preset", "hann75", "window preset")
	cmd.Flags().Int("size", 1024, "segment size in samples")
	cmd.Flags().Int("hop", 0, "hop size (0 uses the preset's suggested hop)")
	cmd.Flags().String("scheme", "wola", "reconstruction scheme (ola, wola)")
	cmd.Flags().Bool("edge-correction", true, "use boundary envelopes on the first and last frames")
	cmd.Flags().String("backend", "", "run a single backend instead of all registered ones")
	cmd.Flags().Int("batches", 4, "number of signals in the batch")
	cmd.Flags().Int("samples", 16384, "samples per signal")
	cmd.Flags().Int64("seed", 1, "noise seed")
	cmd.Flags().Int("workers", 1, "concurrent batch rows")
	cmd.Flags().Bool("spectral", false, "pass frames through the real transform")

	return cmd
}

// windowFromFlags builds the window described by the preset, size, hop,
// scheme and edge-correction keys.
func windowFromFlags(a *app) (*segment.Window, error) {
	p, err := window.ParsePreset(a.v.GetString("preset"))
	if err != nil {
		return nil, err
	}

	scheme, err := segment.ParseScheme(a.v.GetString("scheme"))
	if err != nil {
		return nil, err
	}

	src := segment.Named(p, a.v.GetInt("size")).WithHop(a.v.GetInt("hop"))

	return segment.FromSource(src, scheme, segment.WithEdgeCorrection(a.v.GetBool("edge-correction")))
}

func reconstruct(seg *segment.Segmenter, x *array.Real, viaSpectrum bool) (*array.Real, int, error) {
	if !viaSpectrum {
		frames, err := seg.Segment(x)
		if err != nil {
			return nil, 0, err
		}
		y, err := seg.Unsegment(frames)
		return y, frames.Dim(-2), err
	}

	spec, err := spectral.New(seg)
	if err != nil {
		return nil, 0, err
	}
	z, err := spec.Forward(x)
	if err != nil {
		return nil, 0, err
	}
	y, err := spec.Inverse(z)
	return y, z.Dim(-2), err
}

// maxRowError compares the reconstructed prefix of every row of y with x.
func maxRowError(y, x *array.Real) float64 {
	worst := 0.0
	for b := range y.Rows() {
		got, want := y.Row(b), x.Row(b)
		for i := range min(len(got), len(want)) {
			worst = math.Max(worst, math.Abs(got[i]-want[i]))
		}
	}
	return worst
}

func gaussian(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out
}

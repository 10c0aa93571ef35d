package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-segment/dsp/segment"
)

type windowSummary struct {
	SegmentSize    int     `json:"segment_size" yaml:"segment_size"`
	HopSize        int     `json:"hop_size" yaml:"hop_size"`
	Bins           int     `json:"bins" yaml:"bins"`
	Scheme         string  `json:"scheme" yaml:"scheme"`
	EdgeCorrection bool    `json:"edge_correction" yaml:"edge_correction"`
	IsCOLA         bool    `json:"is_cola" yaml:"is_cola"`
	Normalization  float64 `json:"normalization" yaml:"normalization"`
	Residual       float64 `json:"residual" yaml:"residual"`
}

func newParamsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Write or inspect window parameter files",
	}

	write := &cobra.Command{
		Use:   "write",
		Short: "Write the parameter file for a preset window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := windowFromFlags(a)
			if err != nil {
				return err
			}

			path := a.v.GetString("file")
			if path == "" {
				return segment.WriteParams(cmd.OutOrStdout(), w.Params())
			}

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := segment.WriteParams(f, w.Params()); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", path, err)
			}
			a.logger.Debug("params written", "file", path)
			return nil
		},
	}
	write.Flags().String("preset", "hann75", "window preset")
	write.Flags().Int("size", 1024, "segment size in samples")
	write.Flags().Int("hop", 0, "hop size (0 uses the preset's suggested hop)")
	write.Flags().String("scheme", "wola", "reconstruction scheme (ola, wola, analysis)")
	write.Flags().Bool("edge-correction", true, "use boundary envelopes on the first and last frames")
	write.Flags().StringP("file", "f", "", "write to file instead of stdout")

	show := &cobra.Command{
		Use:   "show [file]",
		Short: "Load a parameter file, re-certify it and print a summary",
		Long:  "show reads a parameter file (stdin when no file is given) and rebuilds the window from it.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			p, err := segment.ReadParams(in)
			if err != nil {
				return err
			}
			w, err := segment.FromParams(p)
			if err != nil {
				return err
			}

			r := w.COLA()
			s := windowSummary{
				SegmentSize:    w.SegmentSize(),
				HopSize:        w.Hop(),
				Bins:           w.Bins(),
				Scheme:         w.Scheme().String(),
				EdgeCorrection: w.EdgeCorrection(),
				IsCOLA:         r.IsCOLA,
				Normalization:  r.Normalization,
				Residual:       r.Residual,
			}

			return render(cmd.OutOrStdout(), a.v.GetString("output"), s, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "segment size\t%d\n", s.SegmentSize)
				fmt.Fprintf(tw, "hop size\t%d\n", s.HopSize)
				fmt.Fprintf(tw, "bins\t%d\n", s.Bins)
				fmt.Fprintf(tw, "scheme\t%s\n", s.Scheme)
				fmt.Fprintf(tw, "edge correction\t%t\n", s.EdgeCorrection)
				fmt.Fprintf(tw, "cola\t%t\n", s.IsCOLA)
				fmt.Fprintf(tw, "normalization\t%.6f\n", s.Normalization)
				fmt.Fprintf(tw, "residual\t%.3e\n", s.Residual)
			})
		},
	}

	cmd.AddCommand(write, show)

	return cmd
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-segment/dsp/cola"
	"github.com/cwbudde/algo-segment/dsp/window"
)

type presetRow struct {
	Name    string  `json:"name" yaml:"name"`
	Type    string  `json:"type" yaml:"type"`
	Size    int     `json:"size" yaml:"size"`
	Hop     int     `json:"hop,omitempty" yaml:"hop,omitempty"`
	Overlap float64 `json:"overlap,omitempty" yaml:"overlap,omitempty"`
	COLA    bool    `json:"cola" yaml:"cola"`
	Error   string  `json:"error,omitempty" yaml:"error,omitempty"`
}

func newPresetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List window presets and their suggested hop at a segment size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size := a.v.GetInt("size")

			var rows []presetRow
			for _, p := range window.Presets() {
				row := presetRow{Name: p.String(), Type: p.Type().String(), Size: size}

				coeffs, hop, err := p.Generate(size)
				if err != nil {
					row.Error = err.Error()
					rows = append(rows, row)
					continue
				}

				row.Hop = hop
				row.Overlap = 1 - float64(hop)/float64(size)
				row.COLA = cola.Check(coeffs, hop).IsCOLA
				rows = append(rows, row)
			}

			return render(cmd.OutOrStdout(), a.v.GetString("output"), rows, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "NAME\tTYPE\tSIZE\tHOP\tOVERLAP\tCOLA")
				for _, r := range rows {
					if r.Error != "" {
						fmt.Fprintf(tw, "%s\t%s\t%d\t-\t-\t%s\n", r.Name, r.Type, r.Size, r.Error)
						continue
					}
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.1f%%\t%t\n",
						r.Name, r.Type, r.Size, r.Hop, 100*r.Overlap, r.COLA)
				}
			})
		},
	}

	cmd.Flags().Int("size", 1024, "segment size in samples")

	return cmd
}

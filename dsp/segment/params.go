package segment

import (
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-segment/dsp/window"
)

// Params is the serializable description of a Window. A Window is rebuilt
// from Params by re-running the adapter, so a loaded file is re-certified.
//
// Exactly one window description is used, in order of precedence:
// Analysis (explicit pair, see NewWindow), Window (preset name), Samples.
type Params struct {
	SegmentSize    int       `yaml:"segment_size"`
	HopSize        int       `yaml:"hop_size"`
	Scheme         string    `yaml:"scheme"`
	Window         string    `yaml:"window,omitempty"`
	Samples        []float64 `yaml:"samples,omitempty,flow"`
	Analysis       []float64 `yaml:"analysis,omitempty,flow"`
	Synthesis      []float64 `yaml:"synthesis,omitempty,flow"`
	EdgeCorrection bool      `yaml:"edge_correction"`
	Normalize      bool      `yaml:"normalize"`
	Tolerance      float64   `yaml:"tolerance,omitempty"`
}

// Params returns the description FromParams rebuilds w from.
func (w *Window) Params() Params {
	p := Params{
		SegmentSize:    w.SegmentSize(),
		HopSize:        w.hop,
		Scheme:         w.scheme.String(),
		EdgeCorrection: w.edgeCorrection,
		Normalize:      w.normalized,
		Tolerance:      w.tolerance,
	}

	switch {
	case w.raw == nil:
		p.Analysis = slices.Clone(w.analysis)
		p.Synthesis = slices.Clone(w.synthesis)
	case w.preset != "":
		p.Window = w.preset
	default:
		p.Samples = slices.Clone(w.raw)
	}

	return p
}

// FromParams rebuilds a Window from p.
func FromParams(p Params) (*Window, error) {
	if len(p.Analysis) > 0 {
		if len(p.Analysis) != p.SegmentSize {
			return nil, fmt.Errorf("%w: %d analysis samples, segment_size %d",
				ErrDimensionMismatch, len(p.Analysis), p.SegmentSize)
		}
		return NewWindow(p.HopSize, p.Analysis, p.Synthesis)
	}

	scheme, err := ParseScheme(p.Scheme)
	if err != nil {
		return nil, err
	}

	opts := []AdaptOption{
		WithEdgeCorrection(p.EdgeCorrection),
		WithNormalization(p.Normalize),
		WithTolerance(p.Tolerance),
	}

	if p.Window != "" {
		preset, err := window.ParsePreset(p.Window)
		if err != nil {
			return nil, fmt.Errorf("segment: params: %w", err)
		}
		return FromSource(Named(preset, p.SegmentSize).WithHop(p.HopSize), scheme, opts...)
	}

	if len(p.Samples) != p.SegmentSize {
		return nil, fmt.Errorf("%w: %d samples, segment_size %d",
			ErrDimensionMismatch, len(p.Samples), p.SegmentSize)
	}

	return FromSource(Raw(p.Samples, p.HopSize), scheme, opts...)
}

// WriteParams encodes p as YAML.
func WriteParams(wr io.Writer, p Params) error {
	enc := yaml.NewEncoder(wr)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("segment: encode params: %w", err)
	}
	return enc.Close()
}

// ReadParams decodes YAML written by WriteParams. Unknown keys are rejected.
// Missing edge_correction and normalize keys default to true, as in Adapt.
func ReadParams(r io.Reader) (Params, error) {
	p := Params{EdgeCorrection: true, Normalize: true}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Params{}, fmt.Errorf("segment: decode params: %w", err)
	}
	return p, nil
}

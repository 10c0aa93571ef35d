package segment

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-segment/dsp/window"
)

// Source describes where a window comes from: explicit samples (Raw) or a
// named preset (Named). It is resolved once by FromSource.
type Source interface {
	resolve() (samples []float64, hop int, preset string, err error)
}

// RawSource is a window given by its samples.
type RawSource struct {
	Samples []float64
	Hop     int
}

// Raw returns a Source for explicit window samples at hop.
func Raw(samples []float64, hop int) RawSource {
	return RawSource{Samples: samples, Hop: hop}
}

func (r RawSource) resolve() ([]float64, int, string, error) {
	return r.Samples, r.Hop, "", nil
}

// NamedSource is a preset window of a given length.
type NamedSource struct {
	Preset window.Preset
	Size   int
	// Hop overrides the preset's suggested hop when positive.
	Hop int
}

// Named returns a Source for a preset window of the given length at the
// preset's suggested hop.
func Named(p window.Preset, size int) NamedSource {
	return NamedSource{Preset: p, Size: size}
}

// WithHop returns a copy of n that uses hop instead of the suggested hop.
func (n NamedSource) WithHop(hop int) NamedSource {
	n.Hop = hop
	return n
}

func (n NamedSource) resolve() ([]float64, int, string, error) {
	samples, hop, err := n.Preset.Generate(n.Size)
	if err != nil {
		return nil, 0, "", fmt.Errorf("segment: preset %s: %w", n.Preset, err)
	}
	if n.Hop > 0 {
		hop = n.Hop
	}
	return samples, hop, n.Preset.String(), nil
}

// FromSource resolves src and adapts it to scheme.
func FromSource(src Source, scheme Scheme, opts ...AdaptOption) (*Window, error) {
	if src == nil {
		return nil, errors.New("segment: nil window source")
	}

	samples, hop, preset, err := src.resolve()
	if err != nil {
		return nil, err
	}

	w, err := Adapt(samples, hop, scheme, opts...)
	if err != nil {
		return nil, err
	}
	w.preset = preset

	return w, nil
}

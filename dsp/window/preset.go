package window

import (
	"fmt"
	"math"
	"strings"
)

// Preset names a window function together with the hop size it is meant to
// be used at.
type Preset int

const (
	PresetHann50 Preset = iota
	PresetHann75
	PresetHamming50
	PresetHamming75
	PresetBartlett50
	PresetBartlett75
	PresetBlackman67
	PresetKaiser82
	PresetKaiser85
	PresetRectangular0
	PresetRectangular50
)

type presetSpec struct {
	name string
	typ  Type
	// divisor sets hop = size/divisor. Zero means the hop is derived from beta.
	divisor int
	beta    float64
}

var presets = []presetSpec{
	PresetHann50:        {name: "hann50", typ: TypeHann, divisor: 2},
	PresetHann75:        {name: "hann75", typ: TypeHann, divisor: 4},
	PresetHamming50:     {name: "hamming50", typ: TypeHamming, divisor: 2},
	PresetHamming75:     {name: "hamming75", typ: TypeHamming, divisor: 4},
	PresetBartlett50:    {name: "bartlett50", typ: TypeBartlett, divisor: 2},
	PresetBartlett75:    {name: "bartlett75", typ: TypeBartlett, divisor: 4},
	PresetBlackman67:    {name: "blackman67", typ: TypeBlackman, divisor: 3},
	PresetKaiser82:      {name: "kaiser82", typ: TypeKaiser, beta: 8},
	PresetKaiser85:      {name: "kaiser85", typ: TypeKaiser, beta: 10},
	PresetRectangular0:  {name: "rectangular0", typ: TypeRectangular, divisor: 1},
	PresetRectangular50: {name: "rectangular50", typ: TypeRectangular, divisor: 2},
}

// Presets returns all known presets in declaration order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i := range presets {
		out[i] = Preset(i)
	}
	return out
}

// String returns the preset name, e.g. "hann75".
func (p Preset) String() string {
	if p < 0 || int(p) >= len(presets) {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presets[p].name
}

// Type returns the window function used by the preset.
func (p Preset) Type() Type {
	if p < 0 || int(p) >= len(presets) {
		return TypeRectangular
	}
	return presets[p].typ
}

// ParsePreset resolves a preset by name. "blackman" is accepted for
// blackman67.
func ParsePreset(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "blackman" {
		return PresetBlackman67, nil
	}

	for i, spec := range presets {
		if spec.name == name {
			return Preset(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Generate returns the preset window of the given length and its suggested
// hop size.
func (p Preset) Generate(size int) ([]float64, int, error) {
	if p < 0 || int(p) >= len(presets) {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownPreset, int(p))
	}

	spec := presets[p]

	if spec.divisor == 0 {
		coeffs, err := Kaiser(size, spec.beta)
		if err != nil {
			return nil, 0, err
		}

		hop := int(math.Floor(1.7 * (float64(size) - 1) / (spec.beta + 1)))

		return coeffs, max(hop, 1), nil
	}

	if err := validateDivisible(p, size, spec.divisor); err != nil {
		return nil, 0, err
	}

	return Generate(spec.typ, size), size / spec.divisor, nil
}

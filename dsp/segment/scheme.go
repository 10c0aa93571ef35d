package segment

import (
	"fmt"
	"strings"
)

// Scheme selects how a raw window is split between analysis and synthesis.
type Scheme int

const (
	// OverlapAdd applies a flat analysis window and the whole normalized
	// window at synthesis.
	OverlapAdd Scheme = iota
	// WeightedOverlapAdd applies the square root of the normalized window at
	// both analysis and synthesis.
	WeightedOverlapAdd
	// AnalysisOnly applies the raw window at analysis and has no synthesis
	// window, so Unsegment is unavailable.
	AnalysisOnly
)

var schemeNames = [...]string{
	OverlapAdd:         "ola",
	WeightedOverlapAdd: "wola",
	AnalysisOnly:       "analysis",
}

func (s Scheme) String() string {
	if !s.valid() {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

func (s Scheme) valid() bool {
	return s >= 0 && int(s) < len(schemeNames)
}

// ParseScheme resolves "ola", "wola" or "analysis" ("analysisonly" is also
// accepted). Matching ignores case and surrounding space.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ola":
		return OverlapAdd, nil
	case "wola":
		return WeightedOverlapAdd, nil
	case "analysis", "analysisonly":
		return AnalysisOnly, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidScheme, name)
	}
}

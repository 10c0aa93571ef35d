package segment

// Side selects which boundary envelope BoundaryEnvelope computes.
type Side int

const (
	// Lead is the envelope of the first frame. It folds in the copies of the
	// window that frames before the signal start would have contributed.
	Lead Side = iota
	// Trail is the envelope of the last frame, folding in the copies that
	// frames past the signal end would have contributed.
	Trail
	// Solo is the envelope of a frame that is both first and last.
	Solo
)

func (s Side) String() string {
	switch s {
	case Lead:
		return "lead"
	case Trail:
		return "trail"
	case Solo:
		return "solo"
	default:
		return "unknown"
	}
}

// BoundaryEnvelope returns the edge-corrected envelope of w for a boundary
// frame:
//
//	lead[n]  = sum over i >= 0 with n+i*hop < len(w)  of w[n+i*hop]
//	trail[n] = sum over i >= 0 with n-i*hop >= 0      of w[n-i*hop]
//	solo[n]  = lead[n] + trail[n] - w[n]
//
// For a window that overlap-adds to one at this hop, a boundary frame scaled
// by its envelope reconstructs the signal exactly up to the frame edge.
// BoundaryEnvelope returns nil for a non-positive hop or an unknown side.
func BoundaryEnvelope(w []float64, hop int, side Side) []float64 {
	if hop <= 0 {
		return nil
	}

	size := len(w)
	out := make([]float64, size)

	switch side {
	case Lead:
		for n := range out {
			for i := n; i < size; i += hop {
				out[n] += w[i]
			}
		}
	case Trail:
		for n := range out {
			for i := n; i >= 0; i -= hop {
				out[n] += w[i]
			}
		}
	case Solo:
		lead := BoundaryEnvelope(w, hop, Lead)
		trail := BoundaryEnvelope(w, hop, Trail)
		for n := range out {
			out[n] = lead[n] + trail[n] - w[n]
		}
	default:
		return nil
	}

	return out
}

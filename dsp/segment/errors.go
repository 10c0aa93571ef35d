package segment

import "errors"

// Configuration errors. All are returned wrapped with context; match them
// with errors.Is.
var (
	// ErrInvalidRank is returned when an input or frame set has a rank
	// Segment or Unsegment does not accept.
	ErrInvalidRank = errors.New("segment: invalid rank")
	// ErrInputTooShort is returned when an input yields no complete frame.
	ErrInputTooShort = errors.New("segment: input too short")
	// ErrNonCOLA is returned when a window/hop pair fails the COLA check
	// and the scheme needs reconstruction.
	ErrNonCOLA = errors.New("segment: window is not COLA at this hop")
	// ErrMissingSynthesisWindow is returned by Unsegment on an
	// analysis-only window.
	ErrMissingSynthesisWindow = errors.New("segment: window has no synthesis window")
	// ErrInvalidScheme is returned for unrecognized reconstruction schemes.
	ErrInvalidScheme = errors.New("segment: invalid scheme")
	// ErrDimensionMismatch is returned when an axis length does not match
	// the window.
	ErrDimensionMismatch = errors.New("segment: dimension mismatch")
	// ErrOddSegmentSize is returned for empty or odd-length windows.
	ErrOddSegmentSize = errors.New("segment: segment size must be positive and even")
	// ErrInvalidHop is returned when hop is outside [1, segment size].
	ErrInvalidHop = errors.New("segment: invalid hop size")
	// ErrNegativeWindow is returned when a window to be adapted has
	// negative or non-finite samples.
	ErrNegativeWindow = errors.New("segment: window has negative samples")
)

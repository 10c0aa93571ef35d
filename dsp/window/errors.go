package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned for non-positive window lengths.
	ErrInvalidLength = errors.New("window: length must be > 0")
	// ErrIndivisibleSize is returned when a preset's overlap needs a length
	// divisible by a factor the requested length does not have.
	ErrIndivisibleSize = errors.New("window: length not divisible for preset overlap")
	// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
	ErrUnknownPreset = errors.New("window: unknown preset")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}
	return nil
}

func validateKaiser(size int, beta float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if beta < 0 {
		return fmt.Errorf("window: kaiser beta must be >= 0: %f", beta)
	}
	return nil
}

func validateDivisible(p Preset, size, factor int) error {
	if err := validateLength(size); err != nil {
		return err
	}
	if size%factor != 0 {
		return fmt.Errorf("%w: %s needs a multiple of %d, got %d", ErrIndivisibleSize, p, factor, size)
	}
	return nil
}

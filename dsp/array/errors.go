package array

import (
	"errors"
	"fmt"
)

// MaxRank is the highest rank an array may have.
const MaxRank = 3

// ErrShape is returned when a shape is empty, too deep, has negative
// extents, or does not match the length of the backing data.
var ErrShape = errors.New("array: invalid shape")

func validateShape(shape []int, length int) (int, error) {
	if len(shape) == 0 || len(shape) > MaxRank {
		return 0, fmt.Errorf("%w: rank %d not in [1, %d]", ErrShape, len(shape), MaxRank)
	}

	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative extent in %v", ErrShape, shape)
		}
		n *= d
	}

	if length >= 0 && n != length {
		return 0, fmt.Errorf("%w: %v needs %d elements, have %d", ErrShape, shape, n, length)
	}

	return n, nil
}

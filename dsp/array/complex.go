package array

import "slices"

// Complex is a dense row-major complex128 array.
type Complex struct {
	shape []int
	data  []complex128
}

// NewComplex returns a zero-filled array of the given shape.
func NewComplex(shape ...int) (*Complex, error) {
	n, err := validateShape(shape, -1)
	if err != nil {
		return nil, err
	}
	return &Complex{shape: slices.Clone(shape), data: make([]complex128, n)}, nil
}

// ComplexFromSlice wraps data without copying.
func ComplexFromSlice(data []complex128, shape ...int) (*Complex, error) {
	if _, err := validateShape(shape, len(data)); err != nil {
		return nil, err
	}
	return &Complex{shape: slices.Clone(shape), data: data}, nil
}

// Rank returns the number of axes.
func (a *Complex) Rank() int { return len(a.shape) }

// Shape returns a copy of the extents.
func (a *Complex) Shape() []int { return slices.Clone(a.shape) }

// Dim returns the extent of axis i. Negative i counts from the last axis.
func (a *Complex) Dim(i int) int {
	if i < 0 {
		i += len(a.shape)
	}
	return a.shape[i]
}

// Len returns the total number of elements.
func (a *Complex) Len() int { return len(a.data) }

// Data returns the flat backing slice.
func (a *Complex) Data() []complex128 { return a.data }

// Rows returns the number of last-axis rows.
func (a *Complex) Rows() int { return rows(a.shape) }

// Row returns the i-th last-axis row.
func (a *Complex) Row(i int) []complex128 {
	n := a.shape[len(a.shape)-1]
	return a.data[i*n : (i+1)*n : (i+1)*n]
}

// Reshape returns a view of the same data with a different shape.
func (a *Complex) Reshape(shape ...int) (*Complex, error) {
	return ComplexFromSlice(a.data, shape...)
}

// Copy returns a deep copy.
func (a *Complex) Copy() *Complex {
	return &Complex{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

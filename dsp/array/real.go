package array

import "slices"

// Real is a dense row-major float64 array.
type Real struct {
	shape []int
	data  []float64
}

// NewReal returns a zero-filled array of the given shape.
func NewReal(shape ...int) (*Real, error) {
	n, err := validateShape(shape, -1)
	if err != nil {
		return nil, err
	}
	return &Real{shape: slices.Clone(shape), data: make([]float64, n)}, nil
}

// FromSlice wraps data without copying. The product of shape must equal
// len(data). Mutations to data are visible through the array and vice versa.
func FromSlice(data []float64, shape ...int) (*Real, error) {
	if _, err := validateShape(shape, len(data)); err != nil {
		return nil, err
	}
	return &Real{shape: slices.Clone(shape), data: data}, nil
}

// Vector wraps data as a rank-1 array without copying.
func Vector(data []float64) *Real {
	return &Real{shape: []int{len(data)}, data: data}
}

// Matrix wraps data as a rows x cols array without copying.
func Matrix(rows, cols int, data []float64) (*Real, error) {
	return FromSlice(data, rows, cols)
}

// Rank returns the number of axes.
func (a *Real) Rank() int { return len(a.shape) }

// Shape returns a copy of the extents.
func (a *Real) Shape() []int { return slices.Clone(a.shape) }

// Dim returns the extent of axis i. Negative i counts from the last axis.
func (a *Real) Dim(i int) int {
	if i < 0 {
		i += len(a.shape)
	}
	return a.shape[i]
}

// Len returns the total number of elements.
func (a *Real) Len() int { return len(a.data) }

// Data returns the flat backing slice.
func (a *Real) Data() []float64 { return a.data }

// Rows returns the number of last-axis rows, i.e. the product of all but the
// last extent.
func (a *Real) Rows() int { return rows(a.shape) }

// Row returns the i-th last-axis row, counting rows in flat order.
func (a *Real) Row(i int) []float64 {
	n := a.shape[len(a.shape)-1]
	return a.data[i*n : (i+1)*n : (i+1)*n]
}

// Reshape returns a view of the same data with a different shape.
func (a *Real) Reshape(shape ...int) (*Real, error) {
	return FromSlice(a.data, shape...)
}

// Copy returns a deep copy.
func (a *Real) Copy() *Real {
	return &Real{shape: slices.Clone(a.shape), data: slices.Clone(a.data)}
}

// Zero sets all elements to 0.
func (a *Real) Zero() {
	clear(a.data)
}

// resize makes a a zeroed rank-1 array of length n, reusing capacity.
func (a *Real) resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(a.data) {
		a.data = a.data[:n]
	} else {
		a.data = make([]float64, n)
	}
	clear(a.data)
	a.shape = append(a.shape[:0], n)
}

func rows(shape []int) int {
	r := 1
	for _, d := range shape[:len(shape)-1] {
		r *= d
	}
	return r
}

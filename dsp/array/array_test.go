package array

import (
	"errors"
	"testing"
)

func TestNewRealZeroFilled(t *testing.T) {
	a, err := NewReal(2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if a.Rank() != 3 || a.Len() != 24 || a.Rows() != 6 {
		t.Fatalf("rank=%d len=%d rows=%d", a.Rank(), a.Len(), a.Rows())
	}
	for i, v := range a.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %v, want 0", i, v)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	cases := []struct {
		name  string
		shape []int
	}{
		{"empty", nil},
		{"too deep", []int{1, 1, 1, 1}},
		{"negative", []int{2, -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewReal(tc.shape...); !errors.Is(err, ErrShape) {
				t.Fatalf("NewReal(%v) err=%v, want ErrShape", tc.shape, err)
			}
			if _, err := NewComplex(tc.shape...); !errors.Is(err, ErrShape) {
				t.Fatalf("NewComplex(%v) err=%v, want ErrShape", tc.shape, err)
			}
		})
	}

	if _, err := FromSlice(make([]float64, 5), 2, 3); !errors.Is(err, ErrShape) {
		t.Fatalf("FromSlice length mismatch err=%v, want ErrShape", err)
	}
}

func TestFromSliceSharesMemory(t *testing.T) {
	s := []float64{1, 2, 3, 4, 5, 6}
	a, err := Matrix(2, 3, s)
	if err != nil {
		t.Fatal(err)
	}
	a.Row(1)[0] = 99
	if s[3] != 99 {
		t.Fatal("FromSlice should share underlying memory")
	}
}

func TestRowIsBounded(t *testing.T) {
	a, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	r := a.Row(1)
	if len(r) != 2 || cap(r) != 2 || r[0] != 3 || r[1] != 4 {
		t.Fatalf("Row(1) = %v (cap %d)", r, cap(r))
	}
	// Appending must not clobber the next row.
	_ = append(r, 42)
	if a.Row(2)[0] != 5 {
		t.Fatal("append through Row leaked into the next row")
	}
}

func TestDimNegativeIndex(t *testing.T) {
	a, _ := NewReal(4, 7)
	if a.Dim(-1) != 7 || a.Dim(0) != 4 || a.Dim(-2) != 4 {
		t.Fatalf("Dim mismatch: %v", a.Shape())
	}
}

func TestShapeReturnsCopy(t *testing.T) {
	a, _ := NewReal(2, 2)
	s := a.Shape()
	s[0] = 9
	if a.Dim(0) != 2 {
		t.Fatal("Shape() must not expose internal state")
	}
}

func TestReshapeAndCopy(t *testing.T) {
	a := Vector([]float64{1, 2, 3, 4})
	m, err := a.Reshape(1, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 2 || m.Row(1)[1] != 4 {
		t.Fatalf("reshape rows=%d row1=%v", m.Rows(), m.Row(1))
	}

	c := m.Copy()
	c.Data()[0] = -1
	if a.Data()[0] != 1 {
		t.Fatal("Copy should not share memory")
	}

	m.Zero()
	if a.Data()[3] != 0 {
		t.Fatal("Zero through a view should clear the shared data")
	}
}

func TestComplexRows(t *testing.T) {
	z, err := NewComplex(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	z.Row(1)[2] = complex(1, -1)
	if z.Data()[5] != complex(1, -1) {
		t.Fatalf("Row write not visible: %v", z.Data())
	}

	v, err := z.Reshape(6)
	if err != nil || v.Rank() != 1 || v.Dim(0) != 6 {
		t.Fatalf("Reshape(6) = %v, %v", v, err)
	}
	if cp := z.Copy(); &cp.Data()[0] == &z.Data()[0] {
		t.Fatal("Copy should not share memory")
	}
}

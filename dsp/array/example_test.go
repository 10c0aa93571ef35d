package array_test

import (
	"fmt"

	"github.com/cwbudde/algo-segment/dsp/array"
)

func ExampleFromSlice() {
	frames, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	if err != nil {
		panic(err)
	}

	fmt.Println(frames.Shape(), frames.Rows())
	fmt.Println(frames.Row(2))

	// Output:
	// [3 2] 3
	// [5 6]
}

package spectral_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-segment/dsp/array"
	"github.com/cwbudde/algo-segment/dsp/segment"
	"github.com/cwbudde/algo-segment/dsp/spectral"
	"github.com/cwbudde/algo-segment/dsp/window"
)

func ExampleSpectrogram() {
	w, err := segment.FromSource(segment.Named(window.PresetHann75, 64), segment.WeightedOverlapAdd)
	if err != nil {
		panic(err)
	}

	s, err := spectral.New(segment.New(w))
	if err != nil {
		panic(err)
	}

	x := make([]float64, 1024)
	x[500] = 1

	z, err := s.Forward(array.Vector(x))
	if err != nil {
		panic(err)
	}

	y, err := s.Inverse(z)
	if err != nil {
		panic(err)
	}

	fmt.Println(z.Shape())
	fmt.Printf("%.6f %v\n", y.Data()[500], math.Abs(y.Data()[501]) < 1e-9)

	// Output:
	// [61 33]
	// 1.000000 true
}

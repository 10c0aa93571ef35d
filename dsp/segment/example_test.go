package segment_test

import (
	"fmt"

	"github.com/cwbudde/algo-segment/dsp/array"
	"github.com/cwbudde/algo-segment/dsp/segment"
	"github.com/cwbudde/algo-segment/dsp/window"
)

func ExampleSegmenter() {
	w, err := segment.FromSource(segment.Named(window.PresetHann75, 32), segment.WeightedOverlapAdd)
	if err != nil {
		panic(err)
	}

	x := make([]float64, 200)
	for i := range x {
		x[i] = float64(i % 7)
	}

	s := segment.New(w)

	frames, err := s.Segment(array.Vector(x))
	if err != nil {
		panic(err)
	}

	y, err := s.Unsegment(frames)
	if err != nil {
		panic(err)
	}

	fmt.Println(frames.Shape(), y.Shape())
	fmt.Printf("%.6f %.6f\n", y.Data()[3], y.Data()[100])

	// Output:
	// [22 32] [200]
	// 3.000000 2.000000
}

func ExampleNumSegments() {
	fmt.Println(segment.NumSegments(200, 8, 32), segment.NumSamples(22, 8, 32))

	// Output:
	// 22 200
}

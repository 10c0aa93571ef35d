package spectral

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-segment/dsp/array"
	"github.com/cwbudde/algo-segment/dsp/segment"
	"github.com/cwbudde/algo-segment/dsp/window"
	"github.com/cwbudde/algo-segment/internal/testutil"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{-3, -3},
		{4, 4 - 2*math.Pi},
		{2 * math.Pi, 0},
		{-0.5, -0.5},
		{7, 7 - 2*math.Pi},
	}
	for _, tc := range cases {
		if got := Wrap(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Wrap(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func hannWindow(t *testing.T) *segment.Window {
	t.Helper()
	w, err := segment.FromSource(segment.Named(window.PresetHann75, 16), segment.WeightedOverlapAdd)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestBPDRoundTrip(t *testing.T) {
	w := hannWindow(t)

	for _, shape := range [][]int{{1, 9}, {12, 9}, {3, 5, 9}} {
		n := 1
		for _, d := range shape {
			n *= d
		}
		// Phases well outside (-pi, pi] exercise the wrapping.
		data := testutil.DeterministicNoise(int64(n), 10, n)
		phase, _ := array.FromSlice(data, shape...)

		bpd, err := BPD(w, phase)
		if err != nil {
			t.Fatal(err)
		}
		back, err := InverseBPD(w, bpd)
		if err != nil {
			t.Fatal(err)
		}

		d, err := testutil.MaxAngleDiff(back.Data(), phase.Data())
		if err != nil {
			t.Fatal(err)
		}
		if d > 1e-5 {
			t.Fatalf("shape %v: round trip angle error %v", shape, d)
		}
		for _, v := range back.Data() {
			if v <= -math.Pi || v > math.Pi {
				t.Fatalf("inverse phase %v outside (-pi, pi]", v)
			}
		}
	}
}

// A stationary sinusoid centred on a bin advances by exactly the modulation
// per hop, so its baseband phase difference is zero after the first frame.
func TestBPDStationaryBin(t *testing.T) {
	w := hannWindow(t) // size 16, hop 4
	const frames, bin = 6, 3

	mod := 2 * math.Pi * bin / 16 * 4
	data := make([]float64, frames*w.Bins())
	for k := range frames {
		data[k*w.Bins()+bin] = Wrap(0.3 + float64(k)*mod)
	}
	phase, _ := array.Matrix(frames, w.Bins(), data)

	bpd, err := BPD(w, phase)
	if err != nil {
		t.Fatal(err)
	}
	if got := bpd.Row(0)[bin]; math.Abs(got-Wrap(0.3-mod)) > 1e-12 {
		t.Fatalf("bpd[0]=%v, want %v", got, Wrap(0.3-mod))
	}
	for k := 1; k < frames; k++ {
		if got := bpd.Row(k)[bin]; math.Abs(got) > 1e-12 {
			t.Fatalf("bpd[%d]=%v, want 0", k, got)
		}
	}
}

func TestBPDBatchRowsIndependent(t *testing.T) {
	w := hannWindow(t)

	a := testutil.DeterministicNoise(1, 3, 4*9)
	b := testutil.DeterministicNoise(2, 3, 4*9)
	batch, _ := array.FromSlice(append(append([]float64{}, a...), b...), 2, 4, 9)
	single, _ := array.Matrix(4, 9, b)

	got, err := BPD(w, batch)
	if err != nil {
		t.Fatal(err)
	}
	want, err := BPD(w, single)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got.Data()[4*9:], want.Data(), 0)
}

func TestBPDErrors(t *testing.T) {
	w := hannWindow(t)

	wrong, _ := array.NewReal(4, 8)
	if _, err := BPD(w, wrong); !errors.Is(err, segment.ErrDimensionMismatch) {
		t.Fatalf("err=%v, want ErrDimensionMismatch", err)
	}
	if _, err := InverseBPD(w, wrong); !errors.Is(err, segment.ErrDimensionMismatch) {
		t.Fatalf("err=%v, want ErrDimensionMismatch", err)
	}

	vec := array.Vector(make([]float64, 9))
	if _, err := BPD(w, vec); !errors.Is(err, segment.ErrInvalidRank) {
		t.Fatalf("err=%v, want ErrInvalidRank", err)
	}
	if _, err := InverseBPD(w, nil); !errors.Is(err, segment.ErrInvalidRank) {
		t.Fatalf("err=%v, want ErrInvalidRank", err)
	}
}

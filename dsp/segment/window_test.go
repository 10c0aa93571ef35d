package segment

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-segment/dsp/window"
	"github.com/cwbudde/algo-segment/internal/testutil"
)

func TestParseScheme(t *testing.T) {
	cases := []struct {
		in   string
		want Scheme
	}{
		{"ola", OverlapAdd},
		{"WOLA", WeightedOverlapAdd},
		{" analysis ", AnalysisOnly},
		{"analysisonly", AnalysisOnly},
	}
	for _, tc := range cases {
		got, err := ParseScheme(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseScheme(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}

	if _, err := ParseScheme("overlap"); !errors.Is(err, ErrInvalidScheme) {
		t.Fatalf("err=%v, want ErrInvalidScheme", err)
	}

	for _, s := range []Scheme{OverlapAdd, WeightedOverlapAdd, AnalysisOnly} {
		if got, _ := ParseScheme(s.String()); got != s {
			t.Fatalf("String/Parse mismatch for %v", s)
		}
	}
}

func TestAdaptOverlapAdd(t *testing.T) {
	raw, hop, _ := window.PresetHann75.Generate(16)

	w, err := Adapt(raw, hop, OverlapAdd, WithEdgeCorrection(false))
	if err != nil {
		t.Fatal(err)
	}

	if w.Scheme() != OverlapAdd || w.Hop() != 4 || w.SegmentSize() != 16 || w.Bins() != 9 {
		t.Fatalf("scheme=%v hop=%d size=%d bins=%d", w.Scheme(), w.Hop(), w.SegmentSize(), w.Bins())
	}
	if math.Abs(w.COLA().Normalization-2) > 1e-12 {
		t.Fatalf("normalization=%v, want 2", w.COLA().Normalization)
	}

	testutil.RequireSliceNearlyEqual(t, w.Analysis(), testutil.Ones(16), 0)

	want := make([]float64, len(raw))
	for i, v := range raw {
		want[i] = v / 2
	}
	testutil.RequireSliceNearlyEqual(t, w.Synthesis(), want, 1e-12)
}

func TestAdaptWeightedOverlapAdd(t *testing.T) {
	raw, hop, _ := window.PresetHamming50.Generate(32)

	w, err := Adapt(raw, hop, WeightedOverlapAdd)
	if err != nil {
		t.Fatal(err)
	}

	a, s := w.Analysis(), w.Synthesis()
	testutil.RequireSliceNearlyEqual(t, a, s, 0)

	norm := w.COLA().Normalization
	for i := range a {
		if math.Abs(a[i]*a[i]-raw[i]/norm) > 1e-12 {
			t.Fatalf("analysis[%d]^2=%v, want %v", i, a[i]*a[i], raw[i]/norm)
		}
	}

	// Product of analysis and synthesis overlap-adds to one.
	prod := make([]float64, len(a))
	for i := range a {
		prod[i] = a[i] * s[i]
	}
	for i := range hop {
		sum := 0.0
		for j := i; j < len(prod); j += hop {
			sum += prod[j]
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("overlap-add sum at %d = %v, want 1", i, sum)
		}
	}
}

func TestAdaptAnalysisOnly(t *testing.T) {
	raw, hop, _ := window.PresetKaiser85.Generate(64)

	w, err := Adapt(raw, hop, AnalysisOnly)
	if err != nil {
		t.Fatalf("analysis-only must skip the COLA requirement: %v", err)
	}
	if w.HasSynthesis() || w.Synthesis() != nil {
		t.Fatal("analysis-only window must not have a synthesis window")
	}
	if w.EdgeCorrection() {
		t.Fatal("analysis-only window must not report edge correction")
	}
	testutil.RequireSliceNearlyEqual(t, w.Analysis(), raw, 0)

	lead, synth := w.Edges(Lead)
	testutil.RequireSliceNearlyEqual(t, lead, raw, 0)
	if synth != nil {
		t.Fatal("analysis-only edges must have nil synthesis")
	}
}

func TestAdaptEdges(t *testing.T) {
	raw, hop, _ := window.PresetHann50.Generate(16)

	w, err := Adapt(raw, hop, OverlapAdd)
	if err != nil {
		t.Fatal(err)
	}

	for _, side := range []Side{Lead, Trail, Solo} {
		a, s := w.Edges(side)
		testutil.RequireSliceNearlyEqual(t, a, testutil.Ones(16), 0)
		testutil.RequireSliceNearlyEqual(t, s, BoundaryEnvelope(w.Synthesis(), hop, side), 1e-15)
	}

	if a, s := w.Edges(Side(-1)); a != nil || s != nil {
		t.Fatal("unknown side should return nil envelopes")
	}
}

func TestAdaptWithoutNormalization(t *testing.T) {
	raw, hop, _ := window.PresetHann75.Generate(16)

	w, err := Adapt(raw, hop, OverlapAdd, WithNormalization(false))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, w.Synthesis(), raw, 0)
}

func TestAdaptErrors(t *testing.T) {
	hann := window.Generate(window.TypeHann, 64)

	cases := []struct {
		name   string
		raw    []float64
		hop    int
		scheme Scheme
		opts   []AdaptOption
		want   error
	}{
		{"unknown scheme", hann, 32, Scheme(9), nil, ErrInvalidScheme},
		{"odd size", window.Generate(window.TypeHann, 63), 21, OverlapAdd, nil, ErrOddSegmentSize},
		{"empty", nil, 1, AnalysisOnly, nil, ErrOddSegmentSize},
		{"zero hop", hann, 0, OverlapAdd, nil, ErrInvalidHop},
		{"hop too large", hann, 65, OverlapAdd, nil, ErrInvalidHop},
		{"negative sample", []float64{0.5, -0.1, 1, 0.5}, 2, AnalysisOnly, nil, ErrNegativeWindow},
		{"nan sample", []float64{0.5, math.NaN(), 1, 0.5}, 2, AnalysisOnly, nil, ErrNegativeWindow},
		{"non cola ola", hann, 24, OverlapAdd, nil, ErrNonCOLA},
		{"non cola wola", hann, 24, WeightedOverlapAdd, nil, ErrNonCOLA},
		{"zero window", make([]float64, 8), 4, WeightedOverlapAdd, nil, ErrNonCOLA},
		{"strict tolerance", window.Generate(window.TypeKaiser, 64), 7, WeightedOverlapAdd, []AdaptOption{WithTolerance(1e-12)}, ErrNonCOLA},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := Adapt(tc.raw, tc.hop, tc.scheme, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
			if w != nil {
				t.Fatal("no partial result expected on error")
			}
		})
	}
}

func TestNewWindow(t *testing.T) {
	hann := window.Generate(window.TypeHann, 8)

	cases := []struct {
		name      string
		analysis  []float64
		synthesis []float64
		want      Scheme
	}{
		{"analysis only", hann, nil, AnalysisOnly},
		{"flat analysis", testutil.Ones(8), hann, OverlapAdd},
		{"shaped pair", hann, hann, WeightedOverlapAdd},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := NewWindow(4, tc.analysis, tc.synthesis)
			if err != nil {
				t.Fatal(err)
			}
			if w.Scheme() != tc.want {
				t.Fatalf("scheme=%v, want %v", w.Scheme(), tc.want)
			}
			if w.EdgeCorrection() {
				t.Fatal("NewWindow must not apply edge correction")
			}
			lead, _ := w.Edges(Lead)
			testutil.RequireSliceNearlyEqual(t, lead, tc.analysis, 0)
		})
	}

	if _, err := NewWindow(4, hann, hann[:6]); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("err=%v, want ErrDimensionMismatch", err)
	}
	if _, err := NewWindow(9, hann, nil); !errors.Is(err, ErrInvalidHop) {
		t.Fatalf("err=%v, want ErrInvalidHop", err)
	}
}

func TestWindowIsImmutable(t *testing.T) {
	raw, hop, _ := window.PresetHann50.Generate(8)
	w, err := Adapt(raw, hop, WeightedOverlapAdd)
	if err != nil {
		t.Fatal(err)
	}

	before := w.Analysis()
	raw[3] = 100
	w.Analysis()[3] = 100
	w.Synthesis()[3] = 100
	lead, _ := w.Edges(Lead)
	lead[0] = 100

	testutil.RequireSliceNearlyEqual(t, w.Analysis(), before, 0)
	testutil.RequireSliceNearlyEqual(t, w.Synthesis(), before, 0)
	if a, _ := w.Edges(Lead); a[0] == 100 {
		t.Fatal("Edges leaked internal state")
	}
}

func TestFromSource(t *testing.T) {
	w, err := FromSource(Named(window.PresetHann75, 32), WeightedOverlapAdd)
	if err != nil {
		t.Fatal(err)
	}
	if w.Hop() != 8 || w.SegmentSize() != 32 {
		t.Fatalf("hop=%d size=%d", w.Hop(), w.SegmentSize())
	}

	w, err = FromSource(Named(window.PresetHann75, 32).WithHop(16), OverlapAdd)
	if err != nil || w.Hop() != 16 {
		t.Fatalf("WithHop(16): hop=%v err=%v", w, err)
	}

	raw := window.Generate(window.TypeBartlett, 16)
	w, err = FromSource(Raw(raw, 8), OverlapAdd)
	if err != nil || w.Hop() != 8 {
		t.Fatalf("Raw: %v, %v", w, err)
	}

	if _, err := FromSource(Named(window.PresetHann75, 30), OverlapAdd); !errors.Is(err, window.ErrIndivisibleSize) {
		t.Fatalf("err=%v, want ErrIndivisibleSize", err)
	}
	if _, err := FromSource(Named(window.PresetHann50, 32).WithHop(12), OverlapAdd); !errors.Is(err, ErrNonCOLA) {
		t.Fatalf("err=%v, want ErrNonCOLA", err)
	}
	if _, err := FromSource(nil, OverlapAdd); err == nil {
		t.Fatal("nil source should fail")
	}
}

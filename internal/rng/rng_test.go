package rng

import (
	"math"
	"testing"
)

func TestStreamDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("draw %d diverged: %v != %v", i, va, vb)
		}
	}
}

func TestStreamSeedMasking(t *testing.T) {
	// Seeds equal modulo 2^31 must produce identical sequences.
	a := New(7)
	b := New(7 + (1 << 31))

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("high seed bits leaked into the sequence")
		}
	}
}

func TestNextRange(t *testing.T) {
	s := New(123)
	for i := 0; i < 10000; i++ {
		v := s.Next()
		if v < 0 || v > 1 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
	}
}

func TestNextKnownSequence(t *testing.T) {
	// First states for seed 1: pinned against the recurrence
	// seed*1103515245 + 12345 mod 2^31.
	s := New(1)

	wantStates := []int64{1103527590, 377401575, 662824084}
	for i, want := range wantStates {
		got := s.Next()
		wantVal := float64(want) / float64(1<<31-1)
		if got != wantVal {
			t.Errorf("draw %d = %v, want %v", i, got, wantVal)
		}
	}
}

func TestNextNormalConsumesTwoDraws(t *testing.T) {
	a := New(99)
	b := New(99)

	a.NextNormal(0, 1)
	b.Next()
	b.Next()

	if a.Next() != b.Next() {
		t.Error("NextNormal did not consume exactly two uniforms")
	}
}

func TestNextNormalZeroStd(t *testing.T) {
	s := New(5)
	if got := s.NextNormal(3.5, 0); got != 3.5 {
		t.Errorf("expected mean with zero std, got %v", got)
	}
}

func TestNextTruncatedNormalBounds(t *testing.T) {
	s := New(2024)
	for i := 0; i < 5000; i++ {
		v := s.NextTruncatedNormal(0, 0.5, 0, 0.5)
		if v < 0 || v > 0.5 {
			t.Fatalf("draw %d out of [0, 0.5]: %v", i, v)
		}
	}
}

func TestNextPoisson(t *testing.T) {
	tests := []struct {
		name string
		mean float64
	}{
		{"never", 0.0},
		{"sometimes", 0.3},
		{"always", 1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(77)
			ones := 0
			for i := 0; i < 1000; i++ {
				v := s.NextPoisson(tt.mean, 0, 1)
				if v != 0 && v != 1 {
					t.Fatalf("non-binary draw: %v", v)
				}
				if v == 1 {
					ones++
				}
			}
			if tt.mean == 0 && ones != 0 {
				t.Errorf("mean 0 produced %d hits", ones)
			}
			if tt.mean > 1 && ones != 1000 {
				t.Errorf("mean > 1 produced only %d hits", ones)
			}
		})
	}
}

func TestStreamsIndependence(t *testing.T) {
	st := NewStreams(42)

	// Draining one stream must not disturb another.
	ref := New(42 + 1000)
	for i := 0; i < 50; i++ {
		st.Challenge.Next()
	}
	if st.Hindrance.Next() != ref.Next() {
		t.Error("hindrance stream was disturbed by challenge draws")
	}
}

func TestLogGuard(t *testing.T) {
	// A normal draw must never be NaN or Inf, whatever the seed.
	for seed := int64(0); seed < 500; seed++ {
		s := New(seed)
		for i := 0; i < 20; i++ {
			v := s.NextNormal(0, 1)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("seed %d draw %d not finite: %v", seed, i, v)
			}
		}
	}
}

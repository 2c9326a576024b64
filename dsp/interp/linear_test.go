package interp

import (
	"errors"
	"math"
	"testing"
)

func TestNewLinearValidation(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{"single knot", []float64{0}, []float64{1}, ErrTooFewKnots},
		{"empty", nil, nil, ErrTooFewKnots},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLinear(tt.x, tt.y)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := NewLinear([]float64{0, 1}, []float64{1}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if _, err := NewLinear([]float64{0, 1, 1}, []float64{1, 2, 3}); err == nil {
		t.Fatal("expected error for repeated abscissa")
	}
}

func TestLinearReproducesKnots(t *testing.T) {
	x := []float64{0, 810, 1600, 2405, 3200}
	y := []float64{800, 810, 790, 805, 795}

	l, err := NewLinear(x, y)
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	for i := range x {
		if got := l.At(x[i]); got != y[i] {
			t.Fatalf("At(%v) = %v, want %v", x[i], got, y[i])
		}
	}

	got, err := l.Sample(x)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	for i := range x {
		if got[i] != y[i] {
			t.Fatalf("Sample[%d] = %v, want %v", i, got[i], y[i])
		}
	}
}

func TestLinearMidpoints(t *testing.T) {
	l, err := NewLinear([]float64{0, 2, 6}, []float64{0, 4, 0})
	if err != nil {
		t.Fatalf("NewLinear: %v", err)
	}

	for _, tc := range []struct {
		q, want float64
	}{
		{1, 2},
		{3, 3},
		{4, 2},
		{5.5, 0.5},
	} {
		if got := l.At(tc.q); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("At(%v) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestLinearAtClamps(t *testing.T) {
	l, _ := NewLinear([]float64{1, 2}, []float64{10, 20})
	if got := l.At(-5); got != 10 {
		t.Fatalf("At below span = %v, want 10", got)
	}
	if got := l.At(7); got != 20 {
		t.Fatalf("At above span = %v, want 20", got)
	}
}

func TestLinearSampleRejectsOutOfRange(t *testing.T) {
	l, _ := NewLinear([]float64{0, 1}, []float64{0, 1})
	if _, err := l.Sample([]float64{0.5, 1.5}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}

func TestLinearSampleUnorderedMatchesAt(t *testing.T) {
	x := []float64{0, 1, 3, 4, 7}
	y := []float64{2, -1, 5, 0, 3}
	l, _ := NewLinear(x, y)

	queries := []float64{6.5, 0.25, 3.5, 1, 2, 7, 0}
	got, err := l.Sample(queries)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	for i, q := range queries {
		if want := l.At(q); math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("Sample(%v) = %v, At = %v", q, got[i], want)
		}
	}
}

func TestNewLinearCopiesInput(t *testing.T) {
	x := []float64{0, 1}
	y := []float64{0, 1}
	l, _ := NewLinear(x, y)
	y[1] = 100
	if got := l.At(1); got != 1 {
		t.Fatalf("At(1) = %v after caller mutation, want 1", got)
	}
}

package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-hrv/dsp/window"
	"github.com/cwbudde/algo-hrv/internal/testutil"
)

// naivePeriodogram evaluates the retained half of the DFT directly.
func naivePeriodogram(x []float64) []float64 {
	n := len(x)
	m := n / 2
	out := make([]float64, m)
	for k := range out {
		var sum complex128
		for j, v := range x {
			sum += complex(v, 0) * cmplx.Exp(complex(0, -2*math.Pi*float64(j*k)/float64(n)))
		}
		a := cmplx.Abs(sum)
		out[k] = a * a / (2 * float64(m) * float64(m))
	}
	return out
}

func TestPower(t *testing.T) {
	pow := Power([]complex128{3 + 4i, -1 - 1i, 0})
	want := []float64{25, 2, 0}
	testutil.RequireSliceNearlyEqual(t, pow, want, 1e-12)

	if Power(nil) != nil {
		t.Fatal("Power(nil) should be nil")
	}
}

func TestPeriodogramRetainedLength(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{5, 2},
		{12, 6},
		{13, 6},
		{256, 128},
	}
	for _, tt := range tests {
		ps, err := Periodogram(testutil.DeterministicNoise(1, 1, tt.n), 4)
		if err != nil {
			t.Fatalf("n=%d: %v", tt.n, err)
		}
		if ps.Bins() != tt.want || len(ps.Freq) != tt.want {
			t.Fatalf("n=%d: bins=%d freqs=%d, want %d", tt.n, ps.Bins(), len(ps.Freq), tt.want)
		}
		if ps.Length != tt.n {
			t.Fatalf("n=%d: Length=%d", tt.n, ps.Length)
		}
	}
}

func TestPeriodogramMatchesNaiveDFT(t *testing.T) {
	for _, n := range []int{5, 13, 64, 100} {
		x := testutil.DeterministicNoise(int64(n), 50, n)
		for i := range x {
			x[i] += 800
		}
		ps, err := Periodogram(x, 4)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		want := naivePeriodogram(x)
		for k := range want {
			if d := math.Abs(ps.Power[k] - want[k]); d > 1e-9*math.Max(1, want[k]) {
				t.Fatalf("n=%d bin %d: got %v want %v", n, k, ps.Power[k], want[k])
			}
		}
	}
}

func TestPeriodogramBackendsAgree(t *testing.T) {
	x := testutil.DeterministicNoise(9, 20, 256)

	a, err := Periodogram(x, 4, WithBackend(BackendAlgoFFT))
	if err != nil {
		t.Fatalf("algofft: %v", err)
	}
	g, err := Periodogram(x, 4, WithBackend(BackendGonum))
	if err != nil {
		t.Fatalf("gonum: %v", err)
	}
	for k := range a.Power {
		if d := math.Abs(a.Power[k] - g.Power[k]); d > 1e-9*math.Max(1, g.Power[k]) {
			t.Fatalf("bin %d: algofft %v gonum %v", k, a.Power[k], g.Power[k])
		}
	}
}

func TestPeriodogramSineAtBin(t *testing.T) {
	const (
		n    = 256
		fs   = 4.0
		bin  = 16 // 0.25 Hz
		ampl = 10.0
	)
	x := testutil.DeterministicSine(float64(bin)*fs/n, fs, ampl, n)

	ps, err := Periodogram(x, fs)
	if err != nil {
		t.Fatalf("Periodogram: %v", err)
	}

	testutil.RequireNearlyEqual(t, "peak power", ps.Power[bin], ampl*ampl/2, 1e-9)
	testutil.RequireNearlyEqual(t, "HF", BandPower(ps, HF), ampl*ampl/2, 1e-9)
	testutil.RequireNearlyEqual(t, "LF", BandPower(ps, LF), 0, 1e-9)
	testutil.RequireNearlyEqual(t, "Total", BandPower(ps, Total(fs)), ampl*ampl/2, 1e-9)
}

func TestPeriodogramFrequencyAxis(t *testing.T) {
	x := testutil.DeterministicNoise(2, 1, 10)

	ps, err := Periodogram(x, 4)
	if err != nil {
		t.Fatalf("Periodogram: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, ps.Freq, []float64{0, 0.5, 1, 1.5, 2}, 1e-12)

	ps, err = Periodogram(x, 4, WithExactBinFrequencies())
	if err != nil {
		t.Fatalf("Periodogram: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, ps.Freq, []float64{0, 0.4, 0.8, 1.2, 1.6}, 1e-12)

	ps, err = Periodogram([]float64{1, 2, 3}, 4)
	if err != nil {
		t.Fatalf("Periodogram: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, ps.Freq, []float64{0}, 0)
}

func TestPeriodogramMeanRemoval(t *testing.T) {
	x := testutil.DC(3, 8)

	ps, err := Periodogram(x, 4)
	if err != nil {
		t.Fatalf("Periodogram: %v", err)
	}
	testutil.RequireNearlyEqual(t, "DC bin", ps.Power[0], 18, 1e-12)

	ps, err = Periodogram(x, 4, WithMeanRemoval())
	if err != nil {
		t.Fatalf("Periodogram: %v", err)
	}
	for k, p := range ps.Power {
		if p > 1e-20 {
			t.Fatalf("bin %d = %v after mean removal, want 0", k, p)
		}
	}
	if x[0] != 3 {
		t.Fatal("Periodogram mutated its input")
	}
}

func TestPeriodogramHannPreservesTonePower(t *testing.T) {
	const (
		n    = 256
		fs   = 4.0
		ampl = 10.0
	)
	x := testutil.DeterministicSine(16*fs/n, fs, ampl, n)

	ps, err := Periodogram(x, fs, WithWindow(window.TypeHann), WithExactBinFrequencies())
	if err != nil {
		t.Fatalf("Periodogram: %v", err)
	}
	got := BandPower(ps, Band{Name: "tone", Min: 0.2, Max: 0.3})
	if math.Abs(got-ampl*ampl/2) > 0.05*ampl*ampl/2 {
		t.Fatalf("tone power = %v, want about %v", got, ampl*ampl/2)
	}
}

func TestHalfSpectrumEmpty(t *testing.T) {
	if _, err := HalfSpectrum(nil, BackendAuto); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParseBackend(t *testing.T) {
	for _, b := range []Backend{BackendAuto, BackendAlgoFFT, BackendGonum} {
		got, err := ParseBackend(b.String())
		if err != nil || got != b {
			t.Fatalf("ParseBackend(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseBackend("fftw"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

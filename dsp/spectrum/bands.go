package spectrum

import (
	"fmt"
	"math"
)

// Band is a named half-open frequency interval [Min, Max) in Hz.
type Band struct {
	Name string
	Min  float64
	Max  float64
}

// Canonical heart-rate variability bands.
var (
	VLF = Band{Name: "VLF", Min: 0.0033, Max: 0.04}
	LF  = Band{Name: "LF", Min: 0.04, Max: 0.15}
	HF  = Band{Name: "HF", Min: 0.15, Max: 0.40}
)

// Total returns the band [0, sampleRate/2).
func Total(sampleRate float64) Band {
	return Band{Name: "Total", Min: 0, Max: sampleRate / 2}
}

// Contains reports whether f lies in [Min, Max).
func (b Band) Contains(f float64) bool {
	return f >= b.Min && f < b.Max
}

// Width returns Max - Min.
func (b Band) Width() float64 { return b.Max - b.Min }

// Validate checks that the band is finite, non-negative and not inverted.
func (b Band) Validate() error {
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) || math.IsInf(b.Min, 0) || math.IsInf(b.Max, 0) {
		return fmt.Errorf("spectrum: band %s must be finite: [%v, %v)", b.Name, b.Min, b.Max)
	}
	if b.Min < 0 {
		return fmt.Errorf("spectrum: band %s min must be >= 0: %v", b.Name, b.Min)
	}
	if !(b.Max > b.Min) {
		return fmt.Errorf("spectrum: band %s max must be > min: [%v, %v)", b.Name, b.Min, b.Max)
	}
	return nil
}

// BandPower sums the power of every bin whose frequency lies in b.
// An empty spectrum has zero power in every band.
func BandPower(ps PowerSpectrum, b Band) float64 {
	sum := 0.0
	for i, f := range ps.Freq {
		if b.Contains(f) {
			sum += ps.Power[i]
		}
	}
	return sum
}

// PeakFrequency returns the frequency of the strongest bin inside b and
// false when b holds no bins.
func PeakFrequency(ps PowerSpectrum, b Band) (float64, bool) {
	peak := -1.0
	freq := 0.0
	found := false
	for i, f := range ps.Freq {
		if !b.Contains(f) {
			continue
		}
		if ps.Power[i] > peak {
			peak = ps.Power[i]
			freq = f
			found = true
		}
	}
	return freq, found
}

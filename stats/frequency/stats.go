package frequency

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-hrv/dsp/spectrum"
)

// ErrUndefinedRatio indicates an LF/HF ratio with zero HF power.
var ErrUndefinedRatio = errors.New("stats/frequency: LF/HF ratio undefined for zero HF power")

// Bands groups the three heart rate variability bands.
type Bands struct {
	VLF spectrum.Band
	LF  spectrum.Band
	HF  spectrum.Band
}

// DefaultBands returns VLF [0.0033, 0.04), LF [0.04, 0.15) and HF [0.15, 0.40).
func DefaultBands() Bands {
	return Bands{VLF: spectrum.VLF, LF: spectrum.LF, HF: spectrum.HF}
}

// Validate checks each band and that none extends above the Nyquist
// frequency of sampleRate.
func (b Bands) Validate(sampleRate float64) error {
	nyquist := sampleRate / 2
	for _, band := range []spectrum.Band{b.VLF, b.LF, b.HF} {
		if err := band.Validate(); err != nil {
			return err
		}
		if band.Max > nyquist {
			return fmt.Errorf("stats/frequency: band %s max %v above Nyquist %v", band.Name, band.Max, nyquist)
		}
	}
	return nil
}

// Stats holds the band powers of a one-sided power spectrum.
type Stats struct {
	BinCount int
	VLF      float64 // power in the VLF band
	LF       float64 // power in the LF band
	HF       float64 // power in the HF band
	Total    float64 // power in [0, sampleRate/2)
	Sum      float64 // power of every retained bin, Nyquist bin included
	// LFHF is LF/HF as computed: +Inf when only HF is zero, NaN when both are.
	LFHF     float64
	Centroid float64 // power-weighted mean frequency (Hz)

	// Strongest bin per band (Hz); 0 when the band holds no bins.
	VLFPeak float64
	LFPeak  float64
	HFPeak  float64
}

// Calculate integrates ps over bands. An empty spectrum yields zero powers and
// a NaN ratio.
func Calculate(ps spectrum.PowerSpectrum, bands Bands) Stats {
	s := Stats{
		BinCount: ps.Bins(),
		VLF:      spectrum.BandPower(ps, bands.VLF),
		LF:       spectrum.BandPower(ps, bands.LF),
		HF:       spectrum.BandPower(ps, bands.HF),
		Total:    spectrum.BandPower(ps, spectrum.Total(ps.SampleRate)),
	}
	s.LFHF = s.LF / s.HF

	if s.BinCount == 0 {
		return s
	}

	s.Sum = floats.Sum(ps.Power)
	if s.Sum > 0 {
		s.Centroid = floats.Dot(ps.Freq, ps.Power) / s.Sum
	}

	s.VLFPeak, _ = spectrum.PeakFrequency(ps, bands.VLF)
	s.LFPeak, _ = spectrum.PeakFrequency(ps, bands.LF)
	s.HFPeak, _ = spectrum.PeakFrequency(ps, bands.HF)

	return s
}

// Ratio returns LF/HF, or ErrUndefinedRatio together with the raw IEEE value
// when HF power is zero.
func (s Stats) Ratio() (float64, error) {
	return Ratio(s.LF, s.HF)
}

// Ratio returns lf/hf, or ErrUndefinedRatio together with the raw IEEE value
// when hf is zero.
func Ratio(lf, hf float64) (float64, error) {
	r := lf / hf
	if hf == 0 {
		return r, fmt.Errorf("%w: LF=%v", ErrUndefinedRatio, lf)
	}
	return r, nil
}

// Normalized returns LF and HF in normalized units, 100*X/(LF+HF).
// Both are 0 when LF+HF is zero.
func (s Stats) Normalized() (lfnu, hfnu float64) {
	sum := s.LF + s.HF
	if sum == 0 || math.IsNaN(sum) {
		return 0, 0
	}
	return 100 * s.LF / sum, 100 * s.HF / sum
}

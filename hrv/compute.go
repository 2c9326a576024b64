package hrv

import (
	"fmt"

	"github.com/cwbudde/algo-hrv/dsp/resample"
	"github.com/cwbudde/algo-hrv/dsp/spectrum"
	"github.com/cwbudde/algo-hrv/stats/frequency"
	"github.com/cwbudde/algo-hrv/stats/nonlinear"
	timestats "github.com/cwbudde/algo-hrv/stats/time"
)

// ErrInsufficientData indicates fewer than two intervals.
var ErrInsufficientData = timestats.ErrInsufficientData

// Analysis holds the intermediate results of one computation next to the
// descriptor set built from them.
type Analysis struct {
	Signal    resample.Signal
	Spectrum  spectrum.PowerSpectrum
	Time      timestats.Stats
	Frequency frequency.Stats
	Nonlinear *nonlinear.Result // nil unless enabled
	Set       Set
}

// Compute returns the descriptor set of ibi, or an error and no partial
// result.
func Compute(ibi []float64, cfg Config) (Set, error) {
	a, err := Analyze(ibi, cfg)
	if err != nil {
		return Set{}, err
	}
	return a.Set, nil
}

// Analyze is [Compute] keeping the intermediate results.
func Analyze(ibi []float64, cfg Config) (Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return Analysis{}, err
	}

	ts, err := timestats.Calculate(ibi)
	if err != nil {
		return Analysis{}, err
	}

	sig, err := resample.Uniform(ibi, cfg.SampleRate)
	if err != nil {
		return Analysis{}, fmt.Errorf("hrv: %w", err)
	}

	ps, err := spectrum.Periodogram(sig.IBI, cfg.SampleRate, cfg.spectrumOptions()...)
	if err != nil {
		return Analysis{}, fmt.Errorf("hrv: %w", err)
	}
	fs := frequency.Calculate(ps, cfg.Bands)

	values := map[Name]float64{
		HRMean: ts.HRMean,
		HRSTD:  ts.HRSTD,
		RMSSD:  ts.RMSSD,
		PNN50:  ts.PNN50,
		VLF:    fs.VLF,
		LF:     fs.LF,
		HF:     fs.HF,
		LFHF:   fs.LFHF,
		Power:  fs.Total,
	}
	issues := map[Name]error{}
	if _, err := fs.Ratio(); err != nil {
		issues[LFHF] = err
	}

	a := Analysis{
		Signal:    sig,
		Spectrum:  ps,
		Time:      ts,
		Frequency: fs,
	}

	if cfg.Nonlinear {
		nl, err := nonlinear.Analyze(secondsAxis(ibi), cfg.NonlinearParams)
		if err != nil {
			return Analysis{}, fmt.Errorf("hrv: %w", err)
		}
		a.Nonlinear = &nl
		values[ApEn] = nl.ApEn
		values[FracDim] = nl.FracDim
	}

	a.Set, err = Aggregate(cfg.ResolvedOrder(), values, issues)
	if err != nil {
		return Analysis{}, err
	}
	return a, nil
}

// secondsAxis returns the beat time axis in seconds, the series the nonlinear
// measures are taken on.
func secondsAxis(ibi []float64) []float64 {
	axis := resample.TimeAxis(ibi)
	for i := range axis {
		axis[i] /= 1000
	}
	return axis
}

package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-hrv/dsp/interp"
)

var (
	// ErrInvalidRate indicates a non-positive or non-finite sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
	// ErrClosedInterval indicates fewer than two timestamps to interpolate between.
	ErrClosedInterval = errors.New("resample: interpolation requires at least 2 timestamps")
)

// MillisPerMinute converts an interval in milliseconds to beats per minute.
const MillisPerMinute = 60000.0

// Signal is an evenly sampled interval and heart-rate series.
type Signal struct {
	SampleRate float64   // Hz
	Time       []float64 // sample instants in ms, starting at the first beat
	IBI        []float64 // interpolated inter-beat interval in ms
	HR         []float64 // interpolated instantaneous heart rate in beats/min
}

// Len returns the number of uniform samples.
func (s Signal) Len() int { return len(s.Time) }

// Step returns the sample spacing in milliseconds.
func (s Signal) Step() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return 1000 / s.SampleRate
}

// TimeAxis returns the beat timestamps in ms: the running sum of ibi shifted
// so the first timestamp is zero.
func TimeAxis(ibi []float64) []float64 {
	if len(ibi) == 0 {
		return nil
	}
	out := make([]float64, len(ibi))
	sum := 0.0
	for i, v := range ibi {
		sum += v
		out[i] = sum - ibi[0]
	}
	return out
}

// HeartRate returns the instantaneous heart rate 60000/ibi for every interval.
func HeartRate(ibi []float64) []float64 {
	out := make([]float64, len(ibi))
	for i, v := range ibi {
		out[i] = MillisPerMinute / v
	}
	return out
}

// Grid returns the sample instants first, first+step, ... strictly below last,
// where step is 1000/sampleRate ms.
func Grid(first, last, sampleRate float64) ([]float64, error) {
	if err := validateRate(sampleRate); err != nil {
		return nil, err
	}
	if !(last > first) {
		return nil, nil
	}

	step := 1000 / sampleRate
	n := int(math.Ceil((last - first) / step))
	for n > 0 && first+float64(n-1)*step >= last {
		n--
	}

	out := make([]float64, n)
	for k := range out {
		out[k] = first + float64(k)*step
	}
	return out, nil
}

// Interpolants returns the linear interpolants of the interval and heart-rate
// sequences over the beat time axis.
func Interpolants(ibi []float64) (ibiFn, hrFn *interp.Linear, err error) {
	if len(ibi) < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrClosedInterval, len(ibi))
	}

	axis := TimeAxis(ibi)

	ibiFn, err = interp.NewLinear(axis, ibi)
	if err != nil {
		return nil, nil, fmt.Errorf("resample: interval interpolant: %w", err)
	}
	hrFn, err = interp.NewLinear(axis, HeartRate(ibi))
	if err != nil {
		return nil, nil, fmt.Errorf("resample: heart-rate interpolant: %w", err)
	}
	return ibiFn, hrFn, nil
}

// Uniform resamples ibi onto an evenly spaced grid at sampleRate Hz.
func Uniform(ibi []float64, sampleRate float64) (Signal, error) {
	if err := validateRate(sampleRate); err != nil {
		return Signal{}, err
	}

	ibiFn, hrFn, err := Interpolants(ibi)
	if err != nil {
		return Signal{}, err
	}

	first, last := ibiFn.Span()
	grid, err := Grid(first, last, sampleRate)
	if err != nil {
		return Signal{}, err
	}

	ibiOut, err := ibiFn.Sample(grid)
	if err != nil {
		return Signal{}, fmt.Errorf("resample: %w", err)
	}
	hrOut, err := hrFn.Sample(grid)
	if err != nil {
		return Signal{}, fmt.Errorf("resample: %w", err)
	}

	return Signal{
		SampleRate: sampleRate,
		Time:       grid,
		IBI:        ibiOut,
		HR:         hrOut,
	}, nil
}

func validateRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRate, sampleRate)
	}
	return nil
}

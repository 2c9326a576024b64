package time

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientData indicates fewer than two intervals.
var ErrInsufficientData = errors.New("stats/time: at least 2 intervals required")

// NN50Threshold is the successive-difference magnitude, in ms, counted by NN50.
const NN50Threshold = 50.0

// Stats holds time-domain heart rate variability statistics of a raw
// inter-beat interval sequence.
type Stats struct {
	Length  int
	HRMean  float64 // mean of 60000/IBI, beats/min
	HRSTD   float64 // sample standard deviation (N-1) of 60000/IBI
	RMSSD   float64 // root mean square of successive differences, ms
	PNN50   float64 // percentage of |diff| > 50 ms
	NN50    int     // count of |diff| > 50 ms
	MeanIBI float64 // ms
	SDNN    float64 // sample standard deviation (N-1) of IBI, ms
}

// Calculate computes all statistics in a single pass. Means and variances use
// Welford's online algorithm; the squared successive differences are summed
// with Kahan compensation.
func Calculate(ibi []float64) (Stats, error) {
	n := len(ibi)
	if n < 2 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrInsufficientData, n)
	}

	// Welford accumulators for heart rate and interval.
	var (
		hrMean, hrM2   float64
		ibiMean, ibiM2 float64
	)

	// Kahan accumulator for squared successive differences.
	var sumSq, c float64

	nn50 := 0

	for i, x := range ibi {
		ni := float64(i + 1)

		hr := 60000 / x
		delta := hr - hrMean
		hrMean += delta / ni
		hrM2 += delta * (hr - hrMean)

		delta = x - ibiMean
		ibiMean += delta / ni
		ibiM2 += delta * (x - ibiMean)

		if i == 0 {
			continue
		}

		d := x - ibi[i-1]
		if math.Abs(d) > NN50Threshold {
			nn50++
		}

		y := d*d - c
		t := sumSq + y
		c = (t - sumSq) - y
		sumSq = t
	}

	diffs := float64(n - 1)

	return Stats{
		Length:  n,
		HRMean:  hrMean,
		HRSTD:   math.Sqrt(hrM2 / diffs),
		RMSSD:   math.Sqrt(sumSq / diffs),
		PNN50:   100 * float64(nn50) / diffs,
		NN50:    nn50,
		MeanIBI: ibiMean,
		SDNN:    math.Sqrt(ibiM2 / diffs),
	}, nil
}

// SuccessiveDifferences returns ibi[i+1]-ibi[i] for every adjacent pair.
func SuccessiveDifferences(ibi []float64) []float64 {
	if len(ibi) < 2 {
		return nil
	}

	out := make([]float64, len(ibi)-1)
	for i := range out {
		out[i] = ibi[i+1] - ibi[i]
	}

	return out
}

// RMSSD returns the root mean square of successive differences.
// Returns 0 for fewer than two intervals.
func RMSSD(ibi []float64) float64 {
	if len(ibi) < 2 {
		return 0
	}

	var sum, c float64
	for i := 1; i < len(ibi); i++ {
		d := ibi[i] - ibi[i-1]
		y := d*d - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return math.Sqrt(sum / float64(len(ibi)-1))
}

// PNN50 returns the percentage of successive differences whose magnitude
// exceeds [NN50Threshold]. Returns 0 for fewer than two intervals.
func PNN50(ibi []float64) float64 {
	if len(ibi) < 2 {
		return 0
	}

	count := 0
	for i := 1; i < len(ibi); i++ {
		if math.Abs(ibi[i]-ibi[i-1]) > NN50Threshold {
			count++
		}
	}

	return 100 * float64(count) / float64(len(ibi)-1)
}

// MeanHeartRate returns the mean of the instantaneous heart rates 60000/IBI.
func MeanHeartRate(ibi []float64) float64 {
	if len(ibi) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range ibi {
		y := 60000/x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(ibi))
}

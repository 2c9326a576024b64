// Package resample converts an inter-beat interval sequence, which is sampled
// at the beats themselves, into evenly spaced series.
//
// The beat timestamps are the running sum of the intervals shifted to start at
// zero ([TimeAxis]). Both the interval values and the instantaneous heart rate
// (60000/IBI) are linearly interpolated against that axis and sampled every
// 1/sampleRate seconds over [first, last). Nothing is extrapolated beyond the
// observed span.
//
// Common workflows:
//   - Uniform(ibi, 4) for a 4 Hz interval/heart-rate grid
//   - Interpolants(ibi) to evaluate the underlying interpolants directly
package resample

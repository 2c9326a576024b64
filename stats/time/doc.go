// Package time computes time-domain heart rate variability statistics from a
// raw inter-beat interval (IBI) sequence in milliseconds.
//
// [Calculate] returns mean heart rate, heart-rate standard deviation, rMSSD and
// pNN50 together with NN50, mean interval and SDNN in a single pass. The
// individual helpers compute one statistic each.
//
// The input is the beat-sampled sequence itself, never a resampled series, so
// the results do not depend on any interpolation rate.
package time

// Package hrv computes heart rate variability descriptor sets from a sequence
// of inter-beat intervals (IBI) in milliseconds.
//
// [Compute] runs the whole pipeline on one IBI snapshot:
//
//   - time-domain statistics on the raw intervals (HRMean, HRSTD, rMSSD, pNN50)
//   - linear resampling onto a uniform grid (4 Hz by default)
//   - a one-sided periodogram of the resampled intervals and band powers
//     (VLF, LF, HF, LFHF, Power)
//   - optionally, approximate entropy and fractal dimension (ApEn, FracDim)
//
// The result is an immutable [Set] ordered by [Config.Order]. Every call is a
// pure function of its inputs; [ComputeBatch] evaluates independent snapshots
// in parallel.
//
// An LF/HF ratio with zero HF power is not an error. The raw IEEE value stays
// in the set and [Set.Check] reports [frequency.ErrUndefinedRatio].
package hrv

// Package frequency derives frequency-domain heart rate variability
// descriptors from a one-sided power spectrum: VLF, LF, HF and total band
// power, the LF/HF ratio and the peak frequency of each band.
//
// The LF/HF ratio is kept as the raw IEEE quotient. Use [Stats.Ratio] to
// detect the undefined case explicitly.
package frequency

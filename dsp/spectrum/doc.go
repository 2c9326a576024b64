// Package spectrum estimates the power spectrum of an evenly sampled series
// and integrates it over frequency bands.
//
// [Periodogram] transforms the series, keeps the non-negative half of the
// transform (floor(n/2) bins; for odd n the midpoint element is dropped) and
// scales each squared magnitude by 1/(2*M^2), where M is the retained bin
// count. [BandPower] sums the bins whose frequency falls in a half-open band
// [Min, Max).
//
// Two FFT backends are available. Power-of-two lengths run on algo-fft plans;
// any other length runs on gonum's mixed-radix real FFT. [BackendAuto] picks
// between them per call.
package spectrum

package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// ModulatedIBI generates length inter-beat intervals (ms) around meanMs whose
// value oscillates at freqHz with the given amplitude (ms). The oscillation is
// evaluated at each beat's own time, so the sequence behaves like respiratory
// sinus arrhythmia sampled by the heart.
func ModulatedIBI(meanMs, amplitudeMs, freqHz float64, length int) []float64 {
	out := make([]float64, length)
	t := 0.0 // seconds
	for i := range out {
		out[i] = meanMs + amplitudeMs*math.Sin(2*math.Pi*freqHz*t)
		t += out[i] / 1000
	}
	return out
}

// JitteredIBI generates length intervals uniformly distributed in
// [meanMs-jitterMs, meanMs+jitterMs] with a fixed seed.
func JitteredIBI(seed int64, meanMs, jitterMs float64, length int) []float64 {
	out := DeterministicNoise(seed, jitterMs, length)
	for i := range out {
		out[i] += meanMs
	}
	return out
}

package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-hrv/dsp/window"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// PowerSpectrum is the one-sided power spectrum of an evenly sampled series.
type PowerSpectrum struct {
	SampleRate float64   // Hz of the analysed series
	Length     int       // transform length n
	Freq       []float64 // bin frequencies in Hz, within [0, SampleRate/2]
	Power      []float64 // per-bin power, |X[k]|^2 / (2*M^2)
}

// Bins returns the retained bin count M = floor(n/2).
func (p PowerSpectrum) Bins() int { return len(p.Power) }

// Option configures [Periodogram].
type Option func(*config)

type config struct {
	backend      Backend
	window       window.Type
	removeMean   bool
	exactBinFreq bool
}

// WithBackend selects the FFT backend.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// WithWindow tapers the series before the transform. Bin powers are divided
// by the window's power gain so white-noise levels stay comparable with the
// rectangular default.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithMeanRemoval subtracts the series mean before the transform, which
// moves the DC component out of the spectrum.
func WithMeanRemoval() Option {
	return func(c *config) {
		c.removeMean = true
	}
}

// WithExactBinFrequencies labels bin k with k*SampleRate/n instead of
// spreading the M retained bins evenly over [0, SampleRate/2].
func WithExactBinFrequencies() Option {
	return func(c *config) {
		c.exactBinFreq = true
	}
}

// Periodogram computes the one-sided power spectrum of signal sampled at
// sampleRate Hz. A series shorter than two samples yields an empty spectrum.
func Periodogram(signal []float64, sampleRate float64, opts ...Option) (PowerSpectrum, error) {
	cfg := config{backend: BackendAuto, window: window.TypeRectangular}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(signal)
	ps := PowerSpectrum{SampleRate: sampleRate, Length: n}
	m := n / 2
	if m == 0 {
		return ps, nil
	}

	x, gain, err := prepare(signal, cfg)
	if err != nil {
		return PowerSpectrum{}, err
	}

	coeffs, err := HalfSpectrum(x, cfg.backend)
	if err != nil {
		return PowerSpectrum{}, err
	}

	pow := Power(coeffs[:m])
	scale := 1 / (2 * float64(m) * float64(m) * gain)
	for i := range pow {
		pow[i] *= scale
	}

	ps.Power = pow
	ps.Freq = binFrequencies(m, n, sampleRate, cfg.exactBinFreq)
	return ps, nil
}

func prepare(signal []float64, cfg config) ([]float64, float64, error) {
	x := make([]float64, len(signal))
	copy(x, signal)

	if cfg.removeMean {
		mean := 0.0
		for _, v := range x {
			mean += v
		}
		mean /= float64(len(x))
		for i := range x {
			x[i] -= mean
		}
	}

	if cfg.window == window.TypeRectangular {
		return x, 1, nil
	}

	coeffs := window.Generate(cfg.window, len(x))
	gain, err := window.PowerGain(coeffs)
	if err != nil {
		return nil, 0, err
	}
	x, err = window.ApplyCoefficients(x, coeffs)
	if err != nil {
		return nil, 0, err
	}
	return x, gain, nil
}

// binFrequencies labels the m retained bins of an n-point transform.
func binFrequencies(m, n int, sampleRate float64, exact bool) []float64 {
	out := make([]float64, m)
	if exact {
		for k := range out {
			out[k] = float64(k) * sampleRate / float64(n)
		}
		return out
	}
	if m == 1 {
		return out
	}
	nyquist := sampleRate / 2
	for k := range out {
		out[k] = nyquist * float64(k) / float64(m-1)
	}
	return out
}

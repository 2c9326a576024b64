package spectrum

import (
	"errors"
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrInvalidLength indicates a transform length the backend cannot handle.
var ErrInvalidLength = errors.New("spectrum: invalid transform length")

// Backend selects the FFT implementation.
type Backend int

const (
	// BackendAuto uses algo-fft for power-of-two lengths and gonum otherwise.
	BackendAuto Backend = iota
	// BackendAlgoFFT always uses algo-fft plans.
	BackendAlgoFFT
	// BackendGonum always uses gonum's real FFT.
	BackendGonum
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAlgoFFT:
		return "algofft"
	case BackendGonum:
		return "gonum"
	default:
		return "auto"
	}
}

// ParseBackend resolves a backend name as returned by [Backend.String].
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "", "auto":
		return BackendAuto, nil
	case "algofft":
		return BackendAlgoFFT, nil
	case "gonum":
		return BackendGonum, nil
	}
	return BackendAuto, fmt.Errorf("spectrum: unknown backend %q", name)
}

// HalfSpectrum returns the DFT coefficients X[0..n/2] of a real series
// (n/2+1 values, unnormalized, forward sign convention).
func HalfSpectrum(x []float64, backend Backend) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("%w: 0", ErrInvalidLength)
	}

	switch backend {
	case BackendAlgoFFT:
		return algoHalfSpectrum(x)
	case BackendGonum:
		return gonumHalfSpectrum(x), nil
	default:
		if isPowerOfTwo(n) {
			return algoHalfSpectrum(x)
		}
		return gonumHalfSpectrum(x), nil
	}
}

func algoHalfSpectrum(x []float64) ([]complex128, error) {
	n := len(x)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: %w", ErrInvalidLength, n, err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	return out[:n/2+1], nil
}

func gonumHalfSpectrum(x []float64) []complex128 {
	fft := fourier.NewFFT(len(x))
	return fft.Coefficients(nil, x)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

package nonlinear

import "fmt"

// Result holds the nonlinear measures of one series.
type Result struct {
	Samples int     // samples analysed after windowing
	ApEn    float64 // approximate entropy
	FracDim float64 // correlation dimension estimate

	// Fractal dimension radii and the fractions of distances within them.
	Ra, Rb     float64
	Cmra, Cmrb float64
}

// CentralWindow returns the n central samples of x, starting at
// (len(x)-n)/2, or x itself when it is not longer than n. The result aliases x.
func CentralWindow(x []float64, n int) []float64 {
	if n <= 0 || len(x) <= n {
		return x
	}
	start := (len(x) - n) / 2
	return x[start : start+n]
}

// Analyze computes approximate entropy and fractal dimension of the central
// p.N samples of x.
func Analyze(x []float64, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	data := CentralWindow(x, p.N)

	apen, err := ApproximateEntropy(data, p.M, p.Tau, p.R)
	if err != nil {
		return Result{}, fmt.Errorf("nonlinear: approximate entropy: %w", err)
	}

	fd, err := fractalDimension(data, p.FracDimM, p.FracDimTau, p.Cra, p.Crb)
	if err != nil {
		return Result{}, fmt.Errorf("nonlinear: fractal dimension: %w", err)
	}

	return Result{
		Samples: len(data),
		ApEn:    apen,
		FracDim: fd.dim,
		Ra:      fd.ra,
		Rb:      fd.rb,
		Cmra:    fd.cmra,
		Cmrb:    fd.cmrb,
	}, nil
}

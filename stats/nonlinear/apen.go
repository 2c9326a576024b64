package nonlinear

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrZeroCorrelation indicates a row with no neighbour within the tolerance,
// which leaves the logarithm of its correlation sum undefined.
var ErrZeroCorrelation = errors.New("nonlinear: zero correlation sum")

// ApproximateEntropy returns Phi(m) - Phi(m+1) for the lag-tau embeddings of x
// with tolerance r times the sample standard deviation of x.
func ApproximateEntropy(x []float64, m, tau int, r float64) (float64, error) {
	if _, err := Embed(x, m+1, tau); err != nil {
		return 0, err
	}

	tol := r * stat.StdDev(x, nil)

	phiM, err := averageLogCorrelation(x, m, tau, tol)
	if err != nil {
		return 0, err
	}
	phiM1, err := averageLogCorrelation(x, m+1, tau, tol)
	if err != nil {
		return 0, err
	}
	return phiM - phiM1, nil
}

// averageLogCorrelation returns the mean over rows i of log(C_i), where C_i is
// the fraction of rows (row i included) within Chebyshev distance tol.
func averageLogCorrelation(x []float64, m, tau int, tol float64) (float64, error) {
	e, err := Embed(x, m, tau)
	if err != nil {
		return 0, err
	}

	n := e.Rows()
	nf := float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		count := 0
		for j := 0; j < n; j++ {
			if e.Chebyshev(i, j) <= tol {
				count++
			}
		}
		if count == 0 {
			return 0, fmt.Errorf("%w: row %d at m=%d", ErrZeroCorrelation, i, m)
		}
		sum += math.Log(float64(count) / nf)
	}
	return sum / nf, nil
}

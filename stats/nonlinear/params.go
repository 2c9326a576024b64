package nonlinear

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams indicates parameters outside their valid ranges.
var ErrInvalidParams = errors.New("nonlinear: invalid parameters")

// Params configures [Analyze].
type Params struct {
	M   int     // approximate entropy embedding dimension
	Tau int     // approximate entropy lag
	R   float64 // tolerance as a fraction of the sample standard deviation
	N   int     // maximum number of samples analysed

	Cra        float64 // lower distance quantile for the fractal dimension
	Crb        float64 // upper distance quantile for the fractal dimension
	FracDimM   int     // fractal dimension embedding dimension
	FracDimTau int     // fractal dimension lag
}

// DefaultParams returns m=2, tau=1, r=0.2, N=1000, Cra=0.005, Crb=0.75 and a
// 10-dimensional lag-3 embedding for the fractal dimension.
func DefaultParams() Params {
	return Params{
		M:          2,
		Tau:        1,
		R:          0.2,
		N:          1000,
		Cra:        0.005,
		Crb:        0.75,
		FracDimM:   10,
		FracDimTau: 3,
	}
}

// Validate reports the first out-of-range parameter.
func (p Params) Validate() error {
	switch {
	case p.M < 1:
		return fmt.Errorf("%w: m must be >= 1, got %d", ErrInvalidParams, p.M)
	case p.Tau < 1:
		return fmt.Errorf("%w: tau must be >= 1, got %d", ErrInvalidParams, p.Tau)
	case !(p.R >= 0) || math.IsInf(p.R, 0):
		return fmt.Errorf("%w: r must be finite and >= 0, got %v", ErrInvalidParams, p.R)
	case p.N < 2:
		return fmt.Errorf("%w: N must be >= 2, got %d", ErrInvalidParams, p.N)
	case !(p.Cra > 0 && p.Cra < p.Crb && p.Crb < 1):
		return fmt.Errorf("%w: need 0 < Cra < Crb < 1, got %v, %v", ErrInvalidParams, p.Cra, p.Crb)
	case p.FracDimM < 1:
		return fmt.Errorf("%w: fractal dimension m must be >= 1, got %d", ErrInvalidParams, p.FracDimM)
	case p.FracDimTau < 1:
		return fmt.Errorf("%w: fractal dimension tau must be >= 1, got %d", ErrInvalidParams, p.FracDimTau)
	}
	return nil
}

package nonlinear

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrDegenerateRadius indicates distance quantiles that do not bound a
// positive, non-empty radius interval.
var ErrDegenerateRadius = errors.New("nonlinear: degenerate correlation radius")

// Plotting positions of the distance quantile estimator.
const (
	quantileAlpha = 0.4
	quantileBeta  = 0.4
)

// FractalDimension estimates the correlation dimension of the lag-tau,
// m-dimensional embedding of x from the slope of log C(r) against log r
// between the cra and crb quantiles of the pairwise distances.
func FractalDimension(x []float64, m, tau int, cra, crb float64) (float64, error) {
	d, err := fractalDimension(x, m, tau, cra, crb)
	return d.dim, err
}

type fracDimResult struct {
	dim        float64
	ra, rb     float64
	cmra, cmrb float64
}

func fractalDimension(x []float64, m, tau int, cra, crb float64) (fracDimResult, error) {
	e, err := Embed(x, m, tau)
	if err != nil {
		return fracDimResult{}, err
	}
	if e.Rows() < 2 {
		return fracDimResult{}, fmt.Errorf("%w: %d row, need 2 for a distance", ErrDegenerateEmbedding, e.Rows())
	}

	dist := e.PairwiseDistances()
	sort.Float64s(dist)

	ra := quantile(dist, cra)
	rb := quantile(dist, crb)
	if !(ra > 0) || ra == rb {
		return fracDimResult{}, fmt.Errorf("%w: ra=%v rb=%v", ErrDegenerateRadius, ra, rb)
	}

	n := float64(len(dist))
	res := fracDimResult{
		ra:   ra,
		rb:   rb,
		cmra: float64(countAtMost(dist, ra)) / n,
		cmrb: float64(countAtMost(dist, rb)) / n,
	}
	res.dim = (math.Log(res.cmrb) - math.Log(res.cmra)) / (math.Log(rb) - math.Log(ra))
	return res, nil
}

// quantile returns the p-quantile of sorted using plotting positions
// (i - alpha)/(n + 1 - alpha - beta), clipped to the sample range.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	m := quantileAlpha + p*(1-quantileAlpha-quantileBeta)
	aleph := float64(n)*p + m
	k := int(math.Floor(math.Min(math.Max(aleph, 1), float64(n-1))))
	gamma := math.Min(math.Max(aleph-float64(k), 0), 1)
	return (1-gamma)*sorted[k-1] + gamma*sorted[k]
}

// countAtMost returns the number of values in sorted that are <= r.
func countAtMost(sorted []float64, r float64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] > r })
}

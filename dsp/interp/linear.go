package interp

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrTooFewKnots indicates fewer than two knots were supplied.
	ErrTooFewKnots = errors.New("interp: at least 2 knots required")
	// ErrOutOfRange indicates a query outside the knot span.
	ErrOutOfRange = errors.New("interp: query outside knot span")
)

// Linear is a piecewise-linear interpolant through (x[i], y[i]).
type Linear struct {
	x []float64
	y []float64
}

// NewLinear builds an interpolant. x must be strictly increasing and have the
// same length as y. The slices are copied.
func NewLinear(x, y []float64) (*Linear, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("interp: x/y length mismatch: %d != %d", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewKnots, len(x))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("interp: x must be strictly increasing at index %d", i)
		}
	}

	l := &Linear{
		x: make([]float64, len(x)),
		y: make([]float64, len(y)),
	}
	copy(l.x, x)
	copy(l.y, y)
	return l, nil
}

// Len returns the knot count.
func (l *Linear) Len() int { return len(l.x) }

// Span returns the first and last knot abscissae.
func (l *Linear) Span() (lo, hi float64) {
	return l.x[0], l.x[len(l.x)-1]
}

// At evaluates the interpolant at q. Queries outside the knot span are
// clamped to the nearest end value.
func (l *Linear) At(q float64) float64 {
	n := len(l.x)
	if q <= l.x[0] {
		return l.y[0]
	}
	if q >= l.x[n-1] {
		return l.y[n-1]
	}

	j := sort.SearchFloat64s(l.x, q)
	if l.x[j] == q {
		return l.y[j]
	}
	return l.segment(j-1, q)
}

// Sample evaluates the interpolant at every query. Queries must lie inside
// the knot span. Non-decreasing queries are evaluated with a moving cursor
// instead of a binary search per point.
func (l *Linear) Sample(queries []float64) ([]float64, error) {
	lo, hi := l.Span()
	out := make([]float64, len(queries))

	j := 0
	prev := lo
	for i, q := range queries {
		if q < lo || q > hi {
			return nil, fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, q, lo, hi)
		}
		if q < prev {
			// Unordered query, restart the cursor.
			j = 0
		}
		prev = q

		for j < len(l.x)-2 && l.x[j+1] <= q {
			j++
		}
		if l.x[j+1] == q {
			out[i] = l.y[j+1]
			continue
		}
		out[i] = l.segment(j, q)
	}
	return out, nil
}

// segment interpolates inside [x[j], x[j+1]].
func (l *Linear) segment(j int, q float64) float64 {
	x0, x1 := l.x[j], l.x[j+1]
	t := (q - x0) / (x1 - x0)
	return l.y[j] + t*(l.y[j+1]-l.y[j])
}

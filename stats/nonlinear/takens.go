package nonlinear

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateEmbedding indicates an embedding with no usable rows.
var ErrDegenerateEmbedding = errors.New("nonlinear: embedding has no rows")

// Embedding is a delay-coordinate embedding of a series. Row i is
// (x[i], x[i+tau], ..., x[i+(m-1)*tau]). It references the series it was
// built from without copying.
type Embedding struct {
	x    []float64
	dim  int
	lag  int
	rows int
}

// Embed builds the m-dimensional lag-tau embedding of x, which has
// len(x)-(m-1)*tau rows.
func Embed(x []float64, m, tau int) (*Embedding, error) {
	if m < 1 || tau < 1 {
		return nil, fmt.Errorf("%w: m=%d tau=%d", ErrInvalidParams, m, tau)
	}
	rows := len(x) - (m-1)*tau
	if rows <= 0 {
		return nil, fmt.Errorf("%w: %d samples, m=%d tau=%d", ErrDegenerateEmbedding, len(x), m, tau)
	}
	return &Embedding{x: x, dim: m, lag: tau, rows: rows}, nil
}

// Rows returns the number of embedded vectors.
func (e *Embedding) Rows() int { return e.rows }

// Dim returns the embedding dimension m.
func (e *Embedding) Dim() int { return e.dim }

// At returns component j of row i.
func (e *Embedding) At(i, j int) float64 { return e.x[i+j*e.lag] }

// Row copies row i into dst, growing it if needed.
func (e *Embedding) Row(i int, dst []float64) []float64 {
	if cap(dst) < e.dim {
		dst = make([]float64, e.dim)
	}
	dst = dst[:e.dim]
	for j := range dst {
		dst[j] = e.At(i, j)
	}
	return dst
}

// Chebyshev returns the maximum componentwise distance between rows i and j.
func (e *Embedding) Chebyshev(i, j int) float64 {
	d := 0.0
	for k := 0; k < e.dim; k++ {
		off := k * e.lag
		if v := math.Abs(e.x[i+off] - e.x[j+off]); v > d {
			d = v
		}
	}
	return d
}

// PairwiseDistances returns the Chebyshev distance of every row pair i < j in
// row-major order, rows*(rows-1)/2 values.
func (e *Embedding) PairwiseDistances() []float64 {
	out := make([]float64, 0, e.rows*(e.rows-1)/2)
	for i := 0; i < e.rows; i++ {
		for j := i + 1; j < e.rows; j++ {
			out = append(out, e.Chebyshev(i, j))
		}
	}
	return out
}

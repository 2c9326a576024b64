// Package interp provides interpolation over irregularly spaced knots.
//
// [Linear] is a piecewise-linear interpolant built from strictly increasing
// abscissae. It reproduces its knots exactly and never extrapolates: queries
// outside the knot span are rejected by [Linear.Sample] and clamped by
// [Linear.At].
package interp

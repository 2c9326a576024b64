// Package nonlinear implements experimental nonlinear heart rate variability
// measures on a delay-coordinate (Takens) embedding of a scalar series:
// approximate entropy and a correlation-sum fractal dimension estimate.
//
// Both measures compare every pair of embedded vectors, so inputs longer than
// [Params.N] are reduced to their central window first ([CentralWindow]).
// Nothing in this package is used unless a caller asks for it explicitly.
package nonlinear

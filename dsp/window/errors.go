package window

import "errors"

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroPowerGain    = errors.New("window power gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
	errUnknownType      = errors.New("unknown window type")
)

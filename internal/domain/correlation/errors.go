package correlation

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrLengthMismatch = errors.New("sequences must have equal length")
	ErrTooFewValues   = errors.New("correlation needs at least two observations")
	ErrZeroVariance   = errors.New("correlation undefined for zero variance input")
)

package sample

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrTooSmall       = errors.New("sample needs at least two observations")
	ErrLengthMismatch = errors.New("sequences must have equal length")
)

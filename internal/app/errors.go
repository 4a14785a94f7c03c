package app

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrDegenerateSample = errors.New("could not generate a sample with usable variance")
)

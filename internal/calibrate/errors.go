package calibrate

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrCalibrationDrift = errors.New("generator drifted from target correlation")
	ErrBadSweep         = errors.New("invalid sweep configuration")
)

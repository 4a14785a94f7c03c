package round

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrIncompleteGuess = errors.New("fill in all fields")
)

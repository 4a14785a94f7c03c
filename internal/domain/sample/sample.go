// Package sample generates paired observations with a prescribed population
// correlation. A Sample is owned by exactly one round and is replaced
// wholesale when a new round begins; nothing in this package mutates a
// Sample after it is built.
package sample

import (
	"fmt"
)

// Sample holds two sequences paired by index: (X[i], Y[i]) is one observation.
type Sample struct {
	X []float64
	Y []float64
}

// New builds a Sample from two equal-length sequences of at least two
// observations.
func New(x, y []float64) (Sample, error) {
	if len(x) != len(y) {
		return Sample{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < minObservations {
		return Sample{}, fmt.Errorf("%w: got %d", ErrTooSmall, len(x))
	}
	return Sample{X: x, Y: y}, nil
}

// Len returns the number of observations.
func (s Sample) Len() int {
	return len(s.X)
}

// Bounds returns the min and max of each axis, used for plotting.
func (s Sample) Bounds() (minX, maxX, minY, maxY float64) {
	minX, maxX = s.X[0], s.X[0]
	minY, maxY = s.Y[0], s.Y[0]
	for i := 1; i < len(s.X); i++ {
		if s.X[i] < minX {
			minX = s.X[i]
		}
		if s.X[i] > maxX {
			maxX = s.X[i]
		}
		if s.Y[i] < minY {
			minY = s.Y[i]
		}
		if s.Y[i] > maxY {
			maxY = s.Y[i]
		}
	}
	return minX, maxX, minY, maxY
}

package calibrate

// Defaults for the calibration sweep.
const (
	DefaultReps       = 200
	DefaultSampleSize = 500
	DefaultWorkers    = 8
	DefaultDrift      = 0.05
)

// Config holds configuration for one calibration sweep.
type Config struct {
	Targets    []float64 // target correlations to sweep
	Reps       int       // samples generated per target
	SampleSize int       // observations per sample
	Workers    int       // concurrent generation workers
	Drift      float64   // maximum tolerated |mean realized - target|
	Seed       int64     // base seed; each worker derives its own
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Targets:    []float64{-0.9, -0.5, 0, 0.5, 0.9},
		Reps:       DefaultReps,
		SampleSize: DefaultSampleSize,
		Workers:    DefaultWorkers,
		Drift:      DefaultDrift,
		Seed:       1,
	}
}

// Result aggregates the realized sample correlations for one target.
type Result struct {
	Target float64
	Reps   int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Drifted reports whether the mean realized correlation strays further from
// the target than the tolerated drift.
func (r Result) Drifted(drift float64) bool {
	diff := r.Mean - r.Target
	if diff < 0 {
		diff = -diff
	}
	return diff > drift
}

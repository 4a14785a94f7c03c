// Package config defines game configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Out-of-range values are clamped, not rejected: play is never interrupted
//   by strict validation.
// - External errors must be wrapped via this package's error helpers.
package config

// Clamping bounds for user-supplied settings.
const (
	MinSampleSize = 10
	MaxSampleSize = 1000
	// MaxTargetCorrelation bounds |target| so jitter cannot push the
	// generator onto the degenerate +-1 boundary.
	MaxTargetCorrelation = 0.95
	DefaultTolerance     = 0.1
	DefaultJitter        = 0.09
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SampleSize is the number of points per generated sample.
	SampleSize int `koanf:"sample_size"`

	// TargetCorrelation is the population correlation baked into generation,
	// before the per-round jitter.
	TargetCorrelation float64 `koanf:"target_correlation"`

	// Tolerance is the maximum absolute guess error that still passes.
	Tolerance float64 `koanf:"tolerance"`

	// Jitter is the amplitude of the uniform perturbation applied to the
	// target each round so rounds are not exactly reproducible.
	Jitter float64 `koanf:"jitter"`

	// Seed fixes the random source when nonzero; zero means time-seeded.
	Seed int64 `koanf:"seed"`

	// Rounds limits the session length; zero means play until quit.
	Rounds int `koanf:"rounds"`
}

// New creates a Config with game defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		SampleSize:        75,
		TargetCorrelation: 0.6,
		Tolerance:         DefaultTolerance,
		Jitter:            DefaultJitter,
		Seed:              0,
		Rounds:            0,
	}
}

// Normalize silently clamps out-of-range settings into their playable
// ranges. It reports whether anything was adjusted.
func (c *Config) Normalize() bool {
	adjusted := false

	if c.SampleSize < MinSampleSize {
		c.SampleSize = MinSampleSize
		adjusted = true
	}
	if c.SampleSize > MaxSampleSize {
		c.SampleSize = MaxSampleSize
		adjusted = true
	}

	if c.TargetCorrelation > MaxTargetCorrelation {
		c.TargetCorrelation = MaxTargetCorrelation
		adjusted = true
	}
	if c.TargetCorrelation < -MaxTargetCorrelation {
		c.TargetCorrelation = -MaxTargetCorrelation
		adjusted = true
	}

	if c.Tolerance < 0 {
		c.Tolerance = DefaultTolerance
		adjusted = true
	}

	if c.Jitter < 0 {
		c.Jitter = 0
		adjusted = true
	}

	if c.Rounds < 0 {
		c.Rounds = 0
		adjusted = true
	}

	return adjusted
}

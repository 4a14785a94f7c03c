package sample

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Generation constants.
const (
	minObservations = 2
	// defaultRhoClamp keeps sqrt(1-rho^2) away from zero so generated plots
	// never fully collapse onto a line.
	defaultRhoClamp = 0.98
)

// Generator produces correlated samples. Implementations are not required to
// be safe for concurrent use; callers that fan out own one generator each.
type Generator interface {
	// Generate returns a sample of n observations whose population
	// correlation is targetRho. The realized sample correlation fluctuates
	// around the target; that variance is intentional.
	Generate(ctx context.Context, n int, targetRho float64) (Sample, error)
}

// gaussianGenerator implements Generator with the linear Gaussian mixing
// construction: y = rho*x + sqrt(1-rho^2)*e for independent standard
// normals x and e.
type gaussianGenerator struct {
	rng      *rand.Rand
	rhoClamp float64
}

// NewGaussianGenerator creates a generator with configuration options. The
// default source is time-seeded; inject a fixed source for reproducible
// draws.
func NewGaussianGenerator(opts ...Option) Generator {
	g := &gaussianGenerator{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // game randomness, not security
		rhoClamp: defaultRhoClamp,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns a fresh sample of n observations.
func (g *gaussianGenerator) Generate(ctx context.Context, n int, targetRho float64) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, fmt.Errorf("generation cancelled: %w", err)
	}
	if n < minObservations {
		return Sample{}, fmt.Errorf("%w: got %d", ErrTooSmall, n)
	}

	rho := clamp(targetRho, -g.rhoClamp, g.rhoClamp)
	noise := math.Sqrt(1 - rho*rho)

	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = g.normal()
		y[i] = rho*x[i] + noise*g.normal()
	}

	return Sample{X: x, Y: y}, nil
}

// normal draws one standard-normal variate from two uniform(0,1) draws via
// the trigonometric Box-Muller transform. A uniform draw of exactly 0 is
// redrawn: log(0) is -Inf.
func (g *gaussianGenerator) normal() float64 {
	u1 := g.rng.Float64()
	for u1 == 0 {
		u1 = g.rng.Float64()
	}
	u2 := g.rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

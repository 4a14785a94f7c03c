// Package metrics provides Prometheus metrics for the correlation game.
//
// The game has no network surface, so metrics are never scraped; they are
// collected on a custom registry and rendered as a text report at the end of
// a session.
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Statistic label values for the guess error histogram.
const (
	StatPearson  = "pearson"
	StatSpearman = "spearman"
	StatKendall  = "kendall"
)

// Manager manages all Prometheus metrics for the game session.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer
	gatherer         prometheus.Gatherer

	// Round lifecycle
	roundsStarted      prometheus.Counter
	roundsWon          prometheus.Counter
	samplesRegenerated prometheus.Counter
	roundDuration      prometheus.Histogram

	// Guess quality
	guessesTotal   prometheus.Counter
	guessesInvalid prometheus.Counter
	guessError     *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "corrgame",
		subsystem: "session",
		// Guess errors live in [0, 2]; buckets resolve around the default 0.1 tolerance.
		histogramBuckets: []float64{0.01, 0.02, 0.05, 0.1, 0.15, 0.25, 0.5, 1, 2},
		registry:         prometheus.DefaultRegisterer,
		gatherer:         prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.roundsStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rounds_started_total",
		Help:      "Total number of rounds started",
	})

	m.roundsWon = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rounds_won_total",
		Help:      "Total number of rounds where all three guesses were within tolerance",
	})

	m.samplesRegenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "samples_regenerated_total",
		Help:      "Total number of degenerate (zero variance) samples that were regenerated",
	})

	m.roundDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "round_duration_seconds",
		Help:      "Time from round start to a settled verdict",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	m.guessesTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "guesses_total",
		Help:      "Total number of submitted guesses, including invalid ones",
	})

	m.guessesInvalid = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "guesses_invalid_total",
		Help:      "Total number of guesses rejected for missing or non-numeric fields",
	})

	m.guessError = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "guess_error",
		Help:      "Absolute difference between guess and actual value per statistic",
		Buckets:   m.histogramBuckets,
	}, []string{"statistic"})
}

// RecordRoundStarted increments the started-rounds counter.
func (m *Manager) RecordRoundStarted() { m.roundsStarted.Inc() }

// RecordRoundWon increments the won-rounds counter.
func (m *Manager) RecordRoundWon() { m.roundsWon.Inc() }

// RecordRegeneratedSample increments the degenerate-sample counter.
func (m *Manager) RecordRegeneratedSample() { m.samplesRegenerated.Inc() }

// RecordGuess increments the guess counter.
func (m *Manager) RecordGuess() { m.guessesTotal.Inc() }

// RecordInvalidGuess increments the invalid-guess counter.
func (m *Manager) RecordInvalidGuess() { m.guessesInvalid.Inc() }

// ObserveGuessError records the absolute guess error for one statistic.
func (m *Manager) ObserveGuessError(statistic string, diff float64) {
	m.guessError.WithLabelValues(statistic).Observe(diff)
}

// ObserveRoundDuration records how long a round took to settle.
func (m *Manager) ObserveRoundDuration(d time.Duration) {
	m.roundDuration.Observe(d.Seconds())
}

// Report renders a plain-text summary of all collected metrics, one line per
// series, sorted by name. Histograms are reported as count and mean.
func (m *Manager) Report() (string, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGather, err)
	}

	lines := make([]string, 0, len(families))
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			name := fam.GetName()
			for _, lp := range metric.GetLabel() {
				name += fmt.Sprintf("{%s=%s}", lp.GetName(), lp.GetValue())
			}
			switch fam.GetType() {
			case dto.MetricType_COUNTER:
				lines = append(lines, fmt.Sprintf("%s %.0f", name, metric.GetCounter().GetValue()))
			case dto.MetricType_GAUGE:
				lines = append(lines, fmt.Sprintf("%s %g", name, metric.GetGauge().GetValue()))
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				count := h.GetSampleCount()
				mean := 0.0
				if count > 0 {
					mean = h.GetSampleSum() / float64(count)
				}
				lines = append(lines, fmt.Sprintf("%s count=%d mean=%.3f", name, count, mean))
			default:
				// untyped families are not produced by this package
			}
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), nil
}

// Package-level helpers operating on the global manager.

// RecordRoundStarted increments the started-rounds counter.
func RecordRoundStarted() { globalManager.RecordRoundStarted() }

// RecordRoundWon increments the won-rounds counter.
func RecordRoundWon() { globalManager.RecordRoundWon() }

// RecordRegeneratedSample increments the degenerate-sample counter.
func RecordRegeneratedSample() { globalManager.RecordRegeneratedSample() }

// RecordGuess increments the guess counter.
func RecordGuess() { globalManager.RecordGuess() }

// RecordInvalidGuess increments the invalid-guess counter.
func RecordInvalidGuess() { globalManager.RecordInvalidGuess() }

// ObserveGuessError records the absolute guess error for one statistic.
func ObserveGuessError(statistic string, diff float64) {
	globalManager.ObserveGuessError(statistic, diff)
}

// ObserveRoundDuration records how long a round took to settle.
func ObserveRoundDuration(d time.Duration) { globalManager.ObserveRoundDuration(d) }

// Report renders the global session metrics summary.
func Report() (string, error) { return globalManager.Report() }

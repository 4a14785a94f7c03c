// Package history keeps the in-memory record of settled rounds for one
// session. Nothing is persisted; the store dies with the process.
package history

import (
	"sync"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/st-1989/Correlation-game/internal/domain/correlation"
	"github.com/st-1989/Correlation-game/internal/domain/round"
)

// Result is one settled round.
type Result struct {
	RoundID  string
	Target   float64
	Actual   correlation.Triple
	Verdict  round.Verdict
	Duration time.Duration
}

// Summary aggregates a session.
type Summary struct {
	Rounds  int
	Wins    int
	WinRate float64
	// MeanAbsError holds the mean absolute guess error per statistic.
	MeanAbsError correlation.Triple
}

// Store records settled rounds in order. Safe for concurrent use, although
// the game itself settles rounds one at a time.
type Store struct {
	mu      sync.Mutex
	results []Result
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Add appends one settled round.
func (s *Store) Add(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
}

// Len returns the number of settled rounds.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// Results returns a copy of all settled rounds in play order.
func (s *Store) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Summary aggregates the session so far. An empty store yields a zero
// summary.
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{Rounds: len(s.results)}
	if sum.Rounds == 0 {
		return sum
	}

	pearson := make([]float64, 0, sum.Rounds)
	spearman := make([]float64, 0, sum.Rounds)
	kendall := make([]float64, 0, sum.Rounds)
	for _, r := range s.results {
		if r.Verdict.Win {
			sum.Wins++
		}
		pearson = append(pearson, r.Verdict.Pearson.Diff)
		spearman = append(spearman, r.Verdict.Spearman.Diff)
		kendall = append(kendall, r.Verdict.Kendall.Diff)
	}
	sum.WinRate = float64(sum.Wins) / float64(sum.Rounds)
	sum.MeanAbsError = correlation.Triple{
		Pearson:  mean(pearson),
		Spearman: mean(spearman),
		Kendall:  mean(kendall),
	}
	return sum
}

func mean(v []float64) float64 {
	m, err := stats.Mean(v)
	if err != nil {
		return 0
	}
	return m
}

// Package game implements the interactive terminal consumer of the round
// service: it renders each generated sample as a scatter plot, collects the
// player's three guesses and reports the verdict.
package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/st-1989/Correlation-game/internal/app"
	"github.com/st-1989/Correlation-game/internal/domain/round"
	"github.com/st-1989/Correlation-game/pkg/logger"
	"github.com/st-1989/Correlation-game/pkg/metrics"
)

// Runner drives the round loop over a reader/writer pair. The defaults are
// stdin/stdout; tests inject buffers.
type Runner struct {
	svc    *app.Service
	in     *bufio.Reader
	out    io.Writer
	rounds int // 0 = play until the player quits
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithInput sets the reader guesses are read from.
func WithInput(r io.Reader) Option {
	return func(g *Runner) {
		if r != nil {
			g.in = bufio.NewReader(r)
		}
	}
}

// WithOutput sets the writer the game renders to.
func WithOutput(w io.Writer) Option {
	return func(g *Runner) {
		if w != nil {
			g.out = w
		}
	}
}

// WithRounds limits the session length; zero plays until quit.
func WithRounds(n int) Option {
	return func(g *Runner) {
		if n >= 0 {
			g.rounds = n
		}
	}
}

// NewRunner creates a Runner for the given round service.
func NewRunner(svc *app.Service, opts ...Option) *Runner {
	g := &Runner{
		svc: svc,
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Run plays rounds until the configured count is reached, the player quits,
// or input is exhausted. It always prints the session report on the way out.
func (g *Runner) Run(ctx context.Context) error {
	defer g.printSessionReport()

	for played := 0; g.rounds == 0 || played < g.rounds; played++ {
		r, err := g.svc.NewRound(ctx)
		if err != nil {
			return fmt.Errorf("start round: %w", err)
		}

		fmt.Fprintf(g.out, "\n🎯 Round %d - guess the correlation of this sample\n\n", played+1)
		fmt.Fprint(g.out, renderScatter(r.Sample))
		fmt.Fprintf(g.out, "  %s\n\n", summarize(r.Sample))

		quit, err := g.playRound(ctx, r)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}

// playRound prompts until the round settles or the player quits. Invalid
// guesses re-prompt without ending the round.
func (g *Runner) playRound(ctx context.Context, r *round.Round) (quit bool, err error) {
	for {
		guess, quit, err := g.promptGuess()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return false, fmt.Errorf("read guess: %w", err)
		}
		if quit {
			return true, nil
		}

		verdict, err := g.svc.SubmitGuess(ctx, r, guess)
		if errors.Is(err, round.ErrIncompleteGuess) {
			fmt.Fprintf(g.out, "  ⚠️  %v - try again\n", err)
			continue
		}
		if err != nil {
			return false, fmt.Errorf("submit guess: %w", err)
		}

		fmt.Fprint(g.out, "\n", formatVerdict(verdict, g.svc.Tolerance()))
		return false, nil
	}
}

// promptGuess reads the three guess fields. Entering q on any prompt quits.
func (g *Runner) promptGuess() (round.Guess, bool, error) {
	fields := [3]string{}
	prompts := [3]string{"Pearson r", "Spearman rho", "Kendall tau"}
	for i, name := range prompts {
		fmt.Fprintf(g.out, "  %s guess (or q to quit): ", name)
		line, err := g.in.ReadString('\n')
		if err != nil && (line == "" || err != io.EOF) {
			return round.Guess{}, false, err
		}
		line = strings.TrimSpace(line)
		if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
			return round.Guess{}, true, nil
		}
		fields[i] = line
	}
	return round.Guess{Pearson: fields[0], Spearman: fields[1], Kendall: fields[2]}, false, nil
}

func (g *Runner) printSessionReport() {
	fmt.Fprint(g.out, "\n📊 Session summary\n")
	fmt.Fprint(g.out, formatSessionSummary(g.svc.History().Summary()))

	report, err := metrics.Report()
	if err != nil {
		logger.Get().Warn(context.Background(), "metrics report failed", logger.Error(err))
		return
	}
	fmt.Fprintf(g.out, "\n%s\n", report)
}

package game

import (
	"fmt"
	"strings"

	"github.com/st-1989/Correlation-game/internal/domain/round"
	"github.com/st-1989/Correlation-game/internal/history"
)

// formatVerdict renders the per-statistic outcome and the overall result.
// Actual values are shown at three decimal places.
func formatVerdict(v round.Verdict, tolerance float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  tolerance: %.3f\n", tolerance)
	b.WriteString(formatScore("Pearson r     ", v.Pearson))
	b.WriteString(formatScore("Spearman rho  ", v.Spearman))
	b.WriteString(formatScore("Kendall tau   ", v.Kendall))
	if v.Win {
		b.WriteString("  🎉 All three within tolerance - you win this round!\n")
	} else {
		b.WriteString("  ❌ Out of tolerance - better luck next round.\n")
	}
	return b.String()
}

func formatScore(label string, s round.Score) string {
	mark := "FAIL"
	if s.Pass {
		mark = "PASS"
	}
	return fmt.Sprintf("  %s actual %.3f  guess %.3f  diff %.3f  %s\n",
		label, s.Actual, s.Guess, s.Diff, mark)
}

// formatSessionSummary renders the end-of-session report.
func formatSessionSummary(sum history.Summary) string {
	if sum.Rounds == 0 {
		return "  No rounds settled this session.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  Rounds played: %d, won: %d (%.0f%%)\n",
		sum.Rounds, sum.Wins, sum.WinRate*100)
	fmt.Fprintf(&b, "  Mean absolute error: pearson %.3f, spearman %.3f, kendall %.3f\n",
		sum.MeanAbsError.Pearson, sum.MeanAbsError.Spearman, sum.MeanAbsError.Kendall)
	return b.String()
}

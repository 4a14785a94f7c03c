package game

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/st-1989/Correlation-game/internal/domain/sample"
)

// Plot dimensions. Wide enough that a few hundred points stay readable on a
// standard terminal.
const (
	plotWidth  = 60
	plotHeight = 20
)

// renderScatter draws the sample as a bordered character grid. Points map
// onto cells by linear scaling of each axis; overlapping points collapse
// into one mark.
func renderScatter(s sample.Sample) string {
	minX, maxX, minY, maxY := s.Bounds()
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	grid := make([][]byte, plotHeight)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", plotWidth))
	}

	for i := range s.X {
		col := int((s.X[i] - minX) / spanX * float64(plotWidth-1))
		row := int((s.Y[i] - minY) / spanY * float64(plotHeight-1))
		// row 0 is the top of the plot; high y plots high
		grid[plotHeight-1-row][col] = '*'
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  y: [%.2f, %.2f]\n", minY, maxY)
	border := "  +" + strings.Repeat("-", plotWidth) + "+\n"
	b.WriteString(border)
	for _, line := range grid {
		b.WriteString("  |")
		b.Write(line)
		b.WriteString("|\n")
	}
	b.WriteString(border)
	fmt.Fprintf(&b, "  x: [%.2f, %.2f]\n", minX, maxX)
	return b.String()
}

// summarize describes the sample in one line: size plus mean and sample
// standard deviation of each axis.
func summarize(s sample.Sample) string {
	meanX, _ := stats.Mean(s.X)
	meanY, _ := stats.Mean(s.Y)
	sdX, _ := stats.StandardDeviationSample(s.X)
	sdY, _ := stats.StandardDeviationSample(s.Y)
	return fmt.Sprintf("n=%d  x: mean %.2f sd %.2f  y: mean %.2f sd %.2f",
		s.Len(), meanX, sdX, meanY, sdY)
}

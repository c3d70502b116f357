// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wenhao/airecruit/internal/recruit"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDashboard outputs a human-readable summary of the dashboard.
func (p *Printer) PrintDashboard(stats *recruit.DashboardStats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates:   %d\n", stats.TotalCandidates))
	sb.WriteString(fmt.Sprintf("Positions:    %d active\n", stats.ActivePositions))
	sb.WriteString(fmt.Sprintf("Interviews:   %d completed, %d in progress\n",
		stats.CompletedInterviews, stats.InProgressInterviews))
	sb.WriteString(fmt.Sprintf("Completion:   %.1f%%\n", stats.CompletionRate))
	sb.WriteString(fmt.Sprintf("Scores:       avg %.1f / max %.1f / min %.1f",
		stats.AverageScore, stats.MaxScore, stats.MinScore))
	p.printBox("Pipeline Overview", sb.String())

	sb.Reset()
	for _, dim := range recruit.Dimensions {
		sb.WriteString(fmt.Sprintf("%-12s %.1f\n", dim, stats.DimensionAverages[dim]))
	}
	p.printBox("Dimension Averages", strings.TrimRight(sb.String(), "\n"))

	if len(stats.BestCandidates) > 0 {
		sb.Reset()
		for i, pick := range stats.BestCandidates {
			if i > 0 {
				sb.WriteString("\n")
			}
			score := "unscored"
			if pick.Candidate.TotalScore != nil {
				score = strconv.Itoa(recruit.DisplayScore(*pick.Candidate.TotalScore))
			}
			sb.WriteString(fmt.Sprintf("%s: %s (%s, %s)", pick.Position, pick.Candidate.Name, score, pick.Reason))
		}
		p.printBox("Best Candidates", sb.String())
	}

	if len(stats.LowestSalaryCandidates) > 0 {
		sb.Reset()
		for i, pick := range stats.LowestSalaryCandidates {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(fmt.Sprintf("%s: %s (%.0f)", pick.Position, pick.Candidate.Name, pick.Salary))
		}
		p.printBox("Lowest Expected Salary", sb.String())
	}
}

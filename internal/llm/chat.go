package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/wenhao/airecruit/internal/prompts"
	"github.com/wenhao/airecruit/internal/recruit"
)

// Analyst answers recruiter questions and writes reports over the
// dashboard statistics. When the model is unreachable it degrades to a
// plain rendering of the numbers.
type Analyst struct {
	client Client
}

// NewAnalyst wraps a client.
func NewAnalyst(client Client) *Analyst {
	return &Analyst{client: client}
}

// Chat answers one free-form question grounded in the current stats.
func (a *Analyst) Chat(ctx context.Context, question string, stats *recruit.DashboardStats) (string, error) {
	template, err := prompts.Get("interview.json", "analytics_chat")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"Stats":    FormatStats(stats),
		"Question": question,
	})

	answer, err := a.client.GenerateContent(ctx, prompt, TierStandard)
	if err != nil {
		log.Printf("analytics chat failed, answering with raw statistics: %v", err)
		return "The analytics assistant is unavailable. Current statistics:\n" + FormatStats(stats), nil
	}
	return answer, nil
}

// Report writes a summary report over the current stats.
func (a *Analyst) Report(ctx context.Context, stats *recruit.DashboardStats) (string, error) {
	template, err := prompts.Get("interview.json", "analytics_report")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"Stats": FormatStats(stats),
	})

	report, err := a.client.GenerateContent(ctx, prompt, TierAdvanced)
	if err != nil {
		log.Printf("report generation failed, emitting raw statistics: %v", err)
		return "Recruitment summary (automatic narrative unavailable):\n" + FormatStats(stats), nil
	}
	return report, nil
}

// FormatStats renders dashboard statistics as prompt-ready plain text.
func FormatStats(stats *recruit.DashboardStats) string {
	if stats == nil {
		return "no statistics available"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total candidates: %d\n", stats.TotalCandidates)
	fmt.Fprintf(&sb, "Active positions: %d\n", stats.ActivePositions)
	fmt.Fprintf(&sb, "Completed interviews: %d\n", stats.CompletedInterviews)
	fmt.Fprintf(&sb, "In-progress interviews: %d\n", stats.InProgressInterviews)
	fmt.Fprintf(&sb, "Completion rate: %.1f%%\n", stats.CompletionRate)
	fmt.Fprintf(&sb, "Scores: avg %.1f, max %.1f, min %.1f\n", stats.AverageScore, stats.MaxScore, stats.MinScore)

	sb.WriteString("Dimension averages:\n")
	for _, dim := range recruit.Dimensions {
		fmt.Fprintf(&sb, "  %s: %.1f\n", dim, stats.DimensionAverages[dim])
	}

	if len(stats.BestCandidates) > 0 {
		sb.WriteString("Best candidate per position:\n")
		for _, pick := range stats.BestCandidates {
			score := "unscored"
			if pick.Candidate.TotalScore != nil {
				score = fmt.Sprintf("%.1f", *pick.Candidate.TotalScore)
			}
			fmt.Fprintf(&sb, "  %s: %s (score %s, %s)\n", pick.Position, pick.Candidate.Name, score, pick.Reason)
		}
	}
	if len(stats.LowestSalaryCandidates) > 0 {
		sb.WriteString("Lowest expected salary per position:\n")
		for _, pick := range stats.LowestSalaryCandidates {
			fmt.Fprintf(&sb, "  %s: %s (%.0f)\n", pick.Position, pick.Candidate.Name, pick.Salary)
		}
	}
	return sb.String()
}

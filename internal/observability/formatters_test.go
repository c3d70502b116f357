package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wenhao/airecruit/internal/recruit"
)

func TestPrintDashboard(t *testing.T) {
	score := 85.4
	stats := &recruit.DashboardStats{
		TotalCandidates:     3,
		CompletedInterviews: 2,
		CompletionRate:      66.7,
		AverageScore:        80,
		DimensionAverages:   map[recruit.Dimension]float64{recruit.DimensionSkill: 75.5},
		BestCandidates: []recruit.PositionPick{
			{Position: "eng", Candidate: recruit.CandidateRecord{Name: "high", TotalScore: &score}, Reason: recruit.ReasonHighestScore},
		},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDashboard(stats)

	out := buf.String()
	assert.Contains(t, out, "Pipeline Overview")
	assert.Contains(t, out, "Candidates:   3")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "skill")
	assert.Contains(t, out, "high (85,") // displayed scores are rounded to whole numbers
}

func TestPrintDashboard_NilStats(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDashboard(nil)

	assert.Empty(t, buf.String())
}

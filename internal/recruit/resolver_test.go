package recruit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestResolve_ExplicitTotalWins(t *testing.T) {
	rec := CandidateRecord{
		Name:          "A",
		ExplicitTotal: floatPtr(85),
		Dimensions: DimensionScores{
			Knowledge: floatPtr(10),
			Skill:     floatPtr(20),
		},
		Interviewed: true,
	}

	out := Resolve(rec)

	require.NotNil(t, out.TotalScore)
	assert.Equal(t, StatusCompleted, out.Status)
	assert.Equal(t, 85.0, *out.TotalScore)
	assert.Equal(t, SourceSpreadsheet, out.Source)
}

func TestResolve_DimensionMean(t *testing.T) {
	rec := CandidateRecord{
		Name: "B",
		Dimensions: DimensionScores{
			Knowledge: floatPtr(70),
			Skill:     floatPtr(80),
		},
	}

	out := Resolve(rec)

	require.NotNil(t, out.TotalScore)
	assert.Equal(t, StatusCompleted, out.Status)
	assert.Equal(t, 75.0, *out.TotalScore)
}

func TestResolve_MeanIgnoresAbsentDimensions(t *testing.T) {
	// A single present dimension is averaged over a count of one, not six.
	rec := CandidateRecord{
		Dimensions: DimensionScores{Motivation: floatPtr(90)},
	}

	out := Resolve(rec)

	require.NotNil(t, out.TotalScore)
	assert.Equal(t, 90.0, *out.TotalScore)
}

func TestResolve_InterviewedWithoutScores(t *testing.T) {
	out := Resolve(CandidateRecord{Name: "C", Interviewed: true})

	assert.Equal(t, StatusInProgress, out.Status)
	assert.Nil(t, out.TotalScore)
}

func TestResolve_DefaultPending(t *testing.T) {
	out := Resolve(CandidateRecord{Name: "nobody"})

	assert.Equal(t, StatusPending, out.Status)
	assert.Nil(t, out.TotalScore)
}

func TestResolve_ZeroDimensionStillCountsAsPresent(t *testing.T) {
	// The resolver treats a stored zero as a present signal; only the
	// dashboard's dimension averages exclude zeros.
	rec := CandidateRecord{
		Dimensions: DimensionScores{Knowledge: floatPtr(0)},
	}

	out := Resolve(rec)

	require.NotNil(t, out.TotalScore)
	assert.Equal(t, StatusCompleted, out.Status)
	assert.Equal(t, 0.0, *out.TotalScore)
}

func TestResolve_OutOfRangeScorePropagatesUnclamped(t *testing.T) {
	rec := CandidateRecord{ExplicitTotal: floatPtr(140)}

	out := Resolve(rec)

	require.NotNil(t, out.TotalScore)
	assert.Equal(t, 140.0, *out.TotalScore)
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	rec := CandidateRecord{Name: "D", Interviewed: true}

	_ = Resolve(rec)

	assert.Equal(t, Status(""), rec.Status)
}

func TestResolve_CompletedIffScored(t *testing.T) {
	records := []CandidateRecord{
		{ExplicitTotal: floatPtr(50)},
		{Dimensions: DimensionScores{Value: floatPtr(33)}},
		{Interviewed: true},
		{},
	}

	for _, out := range ResolveAll(records) {
		assert.Equal(t, out.Status == StatusCompleted, out.TotalScore != nil)
	}
}

// The three-candidate scenario: explicit total, dimension mean, and bare
// interviewed flag resolve independently; the dashboard averages only the
// two scored records.
func TestResolve_EndToEndScenario(t *testing.T) {
	a := Resolve(CandidateRecord{Name: "A", Position: "eng", ExplicitTotal: floatPtr(85)})
	b := Resolve(CandidateRecord{Name: "B", Position: "eng", Dimensions: DimensionScores{
		Knowledge: floatPtr(70),
		Skill:     floatPtr(80),
	}})
	c := Resolve(CandidateRecord{Name: "C", Position: "eng", Interviewed: true})

	require.NotNil(t, a.TotalScore)
	require.NotNil(t, b.TotalScore)
	assert.Equal(t, 85.0, *a.TotalScore)
	assert.Equal(t, 75.0, *b.TotalScore)
	assert.Equal(t, StatusInProgress, c.Status)
	assert.Nil(t, c.TotalScore)

	stats := BuildDashboard([]CandidateRecord{a, b, c})
	assert.Equal(t, 80.0, stats.AverageScore)
}

func TestDisplayScore_RoundsToNearest(t *testing.T) {
	assert.Equal(t, 63, DisplayScore(62.7))
	assert.Equal(t, 62, DisplayScore(62.4))
}

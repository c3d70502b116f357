package recruit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEvaluations_TotalBecomesExplicit(t *testing.T) {
	total := 88.0
	recs := ApplyEvaluations(
		[]CandidateRecord{{Name: "Ada", Email: "ada@example.com"}},
		[]EvaluationRecord{{Name: "Ada", TotalScore: &total}},
	)

	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].ExplicitTotal)
	assert.Equal(t, 88.0, *recs[0].ExplicitTotal)
}

func TestApplyEvaluations_MatchesByEmailWhenNameDiffers(t *testing.T) {
	total := 72.0
	recs := ApplyEvaluations(
		[]CandidateRecord{{Name: "A. Lovelace", Email: "ada@example.com"}},
		[]EvaluationRecord{{Name: "Ada", Email: "ada@example.com", TotalScore: &total}},
	)

	require.NotNil(t, recs[0].ExplicitTotal)
	assert.Equal(t, 72.0, *recs[0].ExplicitTotal)
}

func TestApplyEvaluations_DimensionsReplaceSpreadsheet(t *testing.T) {
	old, updated := 50.0, 95.0
	recs := ApplyEvaluations(
		[]CandidateRecord{{Name: "Ada", Dimensions: DimensionScores{Skill: &old}}},
		[]EvaluationRecord{{Name: "Ada", Dimensions: DimensionScores{Skill: &updated}}},
	)

	require.NotNil(t, recs[0].Dimensions.Skill)
	assert.Equal(t, 95.0, *recs[0].Dimensions.Skill)
}

func TestApplyEvaluations_UnmatchedEvaluationIgnored(t *testing.T) {
	total := 88.0
	recs := ApplyEvaluations(
		[]CandidateRecord{{Name: "Ada"}},
		[]EvaluationRecord{{Name: "Grace", TotalScore: &total}},
	)

	assert.Nil(t, recs[0].ExplicitTotal)
}

func TestApplyEvaluations_NoEvaluationsReturnsInput(t *testing.T) {
	in := []CandidateRecord{{Name: "Ada"}}

	assert.Equal(t, in, ApplyEvaluations(in, nil))
}

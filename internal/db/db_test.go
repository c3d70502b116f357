package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenhao/airecruit/internal/recruit"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateCandidate_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.CreateCandidate(ctx, "a", "a@example.com", "", "eng")
	require.NoError(t, err)

	_, err = db.CreateCandidate(ctx, "other", "a@example.com", "", "ops")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterCandidate_ReturnsExistingRow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	first, created, err := db.RegisterCandidate(ctx, "a", "a@example.com", "123", "eng")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := db.RegisterCandidate(ctx, "renamed", "a@example.com", "", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "a", second.Name)
}

func TestGetCandidateByEmail_AbsentIsNil(t *testing.T) {
	db := openTestDB(t)

	c, err := db.GetCandidateByEmail(context.Background(), "ghost@example.com")

	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	s, err := db.StartSession(ctx, "D", "d@example.com", "eng")
	require.NoError(t, err)
	assert.Equal(t, SessionActive, s.Status)
	assert.NotEmpty(t, s.ID)

	_, err = db.RecordAnswer(ctx, s.ID, "q1", "a1", "knowledge", floatPtr(60))
	require.NoError(t, err)
	_, err = db.RecordAnswer(ctx, s.ID, "q2", "a2", "skill", floatPtr(65.4))
	require.NoError(t, err)

	require.NoError(t, db.CompleteSession(ctx, s.ID))

	got, err := db.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, SessionCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)

	answers, err := db.ListAnswers(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "q1", answers[0].Question)
	assert.Equal(t, "knowledge", answers[0].Dimension)
}

func TestRecordAnswer_UnknownSession(t *testing.T) {
	db := openTestDB(t)

	_, err := db.RecordAnswer(context.Background(), "missing", "q", "a", "", nil)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteSession_UnknownSession(t *testing.T) {
	db := openTestDB(t)

	err := db.CompleteSession(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionSummaries_AveragesScoredAnswers(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	s, err := db.StartSession(ctx, "D", "d@example.com", "eng")
	require.NoError(t, err)
	_, err = db.RecordAnswer(ctx, s.ID, "q1", "a1", "knowledge", floatPtr(60))
	require.NoError(t, err)
	_, err = db.RecordAnswer(ctx, s.ID, "q2", "a2", "skill", floatPtr(65.4))
	require.NoError(t, err)
	_, err = db.RecordAnswer(ctx, s.ID, "q3", "a3", "ability", nil) // unscored, excluded
	require.NoError(t, err)

	summaries, err := db.SessionSummaries(ctx)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	sum := summaries[0]
	assert.Equal(t, s.ID, sum.SessionID)
	assert.Equal(t, "D", sum.Name)
	assert.Equal(t, 2, sum.AnswerCount)
	assert.InDelta(t, 62.7, sum.AverageScore, 0.001)
	assert.False(t, sum.LastAnswerAt.IsZero())
}

func TestSessionSummaries_EmptySessionHasZeroCount(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.StartSession(ctx, "E", "e@example.com", "ops")
	require.NoError(t, err)

	summaries, err := db.SessionSummaries(ctx)

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 0, summaries[0].AnswerCount)
	assert.Equal(t, 0.0, summaries[0].AverageScore)
}

func TestUpsertEvaluation_ReplacesScores(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	eval := &Evaluation{
		Name:     "B",
		Email:    "b@example.com",
		Position: "eng",
		Dimensions: recruit.DimensionScores{
			Knowledge: floatPtr(70),
			Skill:     floatPtr(80),
		},
		TotalScore: floatPtr(75),
	}
	require.NoError(t, db.UpsertEvaluation(ctx, eval))

	eval.TotalScore = floatPtr(82)
	require.NoError(t, db.UpsertEvaluation(ctx, eval))

	got, err := db.GetEvaluation(ctx, "B")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 82.0, *got.TotalScore)
	assert.Equal(t, 70.0, *got.Dimensions.Knowledge)
	assert.Nil(t, got.Dimensions.Ability)

	all, err := db.ListEvaluations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateTotalScore_CreatesRowWhenAbsent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.UpdateTotalScore(ctx, "new hire", 88))

	got, err := db.GetEvaluation(ctx, "new hire")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 88.0, *got.TotalScore)
}

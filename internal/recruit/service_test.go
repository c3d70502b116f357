package recruit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSources struct {
	candidates  []CandidateRecord
	jobs        []JobRecord
	sessions    []SessionSummary
	evaluations []EvaluationRecord

	candidateErr error
	jobErr       error
	sessionErr   error
	evalErr      error

	candidateLoads int
}

func (s *stubSources) LoadCandidates(context.Context) ([]CandidateRecord, error) {
	s.candidateLoads++
	return s.candidates, s.candidateErr
}

func (s *stubSources) LoadJobs(context.Context) ([]JobRecord, error) {
	return s.jobs, s.jobErr
}

func (s *stubSources) SessionSummaries(context.Context) ([]SessionSummary, error) {
	return s.sessions, s.sessionErr
}

func (s *stubSources) LoadEvaluations(context.Context) ([]EvaluationRecord, error) {
	return s.evaluations, s.evalErr
}

func TestService_ResolvesAndMerges(t *testing.T) {
	src := &stubSources{
		candidates: []CandidateRecord{
			{Name: "D", Email: "d@example.com"}, // pending on the spreadsheet
		},
		sessions: []SessionSummary{
			{SessionID: "s1", Name: "D", AnswerCount: 2, AverageScore: 62.7},
		},
	}
	svc := NewService(src, src, src, src, nil)

	candidates, err := svc.Candidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, StatusCompleted, candidates[0].Status)
	assert.Equal(t, 62.0, *candidates[0].TotalScore)
	assert.Equal(t, SourceRelationalOverride, candidates[0].Source)
}

func TestService_AppliesStoredEvaluations(t *testing.T) {
	total := 91.0
	skill := 78.0
	src := &stubSources{
		candidates: []CandidateRecord{
			{Name: "Ada", Email: "ada@example.com"}, // pending on the spreadsheet
		},
		evaluations: []EvaluationRecord{
			{Name: "Ada", TotalScore: &total, Dimensions: DimensionScores{Skill: &skill}},
		},
	}
	svc := NewService(src, src, src, src, nil)

	candidates, err := svc.Candidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, StatusCompleted, candidates[0].Status)
	require.NotNil(t, candidates[0].TotalScore)
	assert.Equal(t, 91.0, *candidates[0].TotalScore)
	require.NotNil(t, candidates[0].Dimensions.Skill)
	assert.Equal(t, 78.0, *candidates[0].Dimensions.Skill)
}

func TestService_SessionOverrideOutranksStoredEvaluation(t *testing.T) {
	total := 91.0
	src := &stubSources{
		candidates: []CandidateRecord{
			{Name: "Ada", Email: "ada@example.com"},
		},
		evaluations: []EvaluationRecord{
			{Name: "Ada", TotalScore: &total},
		},
		sessions: []SessionSummary{
			{SessionID: "s1", Name: "Ada", AnswerCount: 3, AverageScore: 70.4},
		},
	}
	svc := NewService(src, src, src, src, nil)

	candidates, err := svc.Candidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 70.0, *candidates[0].TotalScore)
	assert.Equal(t, SourceRelationalOverride, candidates[0].Source)
}

func TestService_NilEvaluationSource(t *testing.T) {
	src := &stubSources{candidates: []CandidateRecord{{Name: "a"}}}
	svc := NewService(src, src, src, nil, nil)

	candidates, err := svc.Candidates(context.Background())

	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestService_DegradesFailedSourceToEmpty(t *testing.T) {
	src := &stubSources{
		candidateErr: errors.New("xlsx missing"),
		jobs:         []JobRecord{{Title: "engineer"}},
	}
	svc := NewService(src, src, src, src, nil)

	snap, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snap.Candidates)
	assert.Len(t, snap.Jobs, 1)
}

func TestService_AllSourcesDownStillServes(t *testing.T) {
	src := &stubSources{
		candidateErr: errors.New("down"),
		jobErr:       errors.New("down"),
		sessionErr:   errors.New("down"),
		evalErr:      errors.New("down"),
	}
	svc := NewService(src, src, src, src, nil)

	stats, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalCandidates)
	assert.Equal(t, 0.0, stats.CompletionRate)
}

func TestService_CachesWithinTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 25, 9, 0, 0, 0, time.UTC)}
	src := &stubSources{candidates: []CandidateRecord{{Name: "a"}}}
	svc := NewService(src, src, src, src, NewSnapshotCache(5*time.Minute, clock.Now))

	_, err := svc.Candidates(context.Background())
	require.NoError(t, err)
	_, err = svc.Candidates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, src.candidateLoads)

	clock.Advance(6 * time.Minute)
	_, err = svc.Candidates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.candidateLoads)
}

func TestService_InvalidateForcesReload(t *testing.T) {
	src := &stubSources{}
	svc := NewService(src, src, src, src, NewSnapshotCache(time.Hour, nil))

	_, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	svc.Invalidate()

	_, err = svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.candidateLoads)
}

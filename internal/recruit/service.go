package recruit

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// CandidateSource loads raw candidate records from a spreadsheet or
// equivalent tabular source. Records are unresolved: derived fields are
// computed by the service.
type CandidateSource interface {
	LoadCandidates(ctx context.Context) ([]CandidateRecord, error)
}

// JobSource loads normalized job records.
type JobSource interface {
	LoadJobs(ctx context.Context) ([]JobRecord, error)
}

// SessionSource reports, per candidate identity, the most recent interview
// session and its submitted-answer aggregate.
type SessionSource interface {
	SessionSummaries(ctx context.Context) ([]SessionSummary, error)
}

// EvaluationSource loads persisted reviewer evaluations so manual score
// corrections reach the merged view.
type EvaluationSource interface {
	LoadEvaluations(ctx context.Context) ([]EvaluationRecord, error)
}

// Service runs the reconciliation pipeline: load every source, resolve
// status/score, apply relational overrides, and aggregate. A failing
// source degrades to an empty result; one missing spreadsheet never aborts
// the whole request.
type Service struct {
	candidates  CandidateSource
	jobs        JobSource
	sessions    SessionSource
	evaluations EvaluationSource
	cache       *SnapshotCache
}

// NewService wires the pipeline's data sources together. The evaluation
// source may be nil when no store is attached; the cache may be nil, in
// which case every call re-reads the sources.
func NewService(candidates CandidateSource, jobs JobSource, sessions SessionSource, evaluations EvaluationSource, cache *SnapshotCache) *Service {
	if cache == nil {
		cache = NewSnapshotCache(0, nil)
	}
	return &Service{candidates: candidates, jobs: jobs, sessions: sessions, evaluations: evaluations, cache: cache}
}

// Snapshot returns the current merged view, serving from cache when fresh.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snap, ok := s.cache.Get(); ok {
		return snap, nil
	}

	var (
		rawCandidates []CandidateRecord
		jobs          []JobRecord
		summaries     []SessionSummary
		evaluations   []EvaluationRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := s.candidates.LoadCandidates(gctx)
		if err != nil {
			log.Printf("candidate source unavailable, degrading to empty: %v", err)
			return nil
		}
		rawCandidates = recs
		return nil
	})
	g.Go(func() error {
		recs, err := s.jobs.LoadJobs(gctx)
		if err != nil {
			log.Printf("job source unavailable, degrading to empty: %v", err)
			return nil
		}
		jobs = recs
		return nil
	})
	g.Go(func() error {
		recs, err := s.sessions.SessionSummaries(gctx)
		if err != nil {
			log.Printf("session source unavailable, degrading to empty: %v", err)
			return nil
		}
		summaries = recs
		return nil
	})
	if s.evaluations != nil {
		g.Go(func() error {
			recs, err := s.evaluations.LoadEvaluations(gctx)
			if err != nil {
				log.Printf("evaluation source unavailable, degrading to empty: %v", err)
				return nil
			}
			evaluations = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := MergeSessions(ResolveAll(ApplyEvaluations(rawCandidates, evaluations)), summaries)
	snap := &Snapshot{Candidates: merged, Jobs: jobs}
	s.cache.Put(snap)
	return snap, nil
}

// Candidates returns the resolved, merged candidate set.
func (s *Service) Candidates(ctx context.Context) ([]CandidateRecord, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Candidates, nil
}

// Jobs returns the normalized job set.
func (s *Service) Jobs(ctx context.Context) ([]JobRecord, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Jobs, nil
}

// Dashboard recomputes summary statistics from the current candidate set.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDashboard(snap.Candidates), nil
}

// Invalidate drops the cached snapshot so the next read reflects a write.
func (s *Service) Invalidate() {
	s.cache.Invalidate()
}

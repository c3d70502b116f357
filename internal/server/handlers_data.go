package server

import (
	"net/http"
)

// RegisterCandidateRequest is the request body for POST /api/candidates
type RegisterCandidateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}

// RegisterCandidateResponse reports the registered candidate row.
type RegisterCandidateResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Created bool   `json:"created"`
}

// UpdateScoreRequest is the request body for PUT /api/candidates/{name}/score
type UpdateScoreRequest struct {
	Score float64 `json:"score" validate:"gte=0,lte=100"`
}

// handleListCandidates returns the reconciled candidate set.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.data.Candidates(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to load candidates: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": candidates,
		"total":      len(candidates),
	})
}

// handleRegisterCandidate registers an applicant, idempotent on email.
func (s *Server) handleRegisterCandidate(w http.ResponseWriter, r *http.Request) {
	var req RegisterCandidateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	c, created, err := s.store.RegisterCandidate(r.Context(), req.Name, req.Email, req.Phone, req.Position)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to register candidate: "+err.Error())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	s.jsonResponse(w, status, RegisterCandidateResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Created: created,
	})
}

// handleUpdateScore persists a manual total-score correction and drops
// the cached snapshot so the next read reflects it.
func (s *Server) handleUpdateScore(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Candidate name is required")
		return
	}

	var req UpdateScoreRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if err := s.store.UpdateTotalScore(r.Context(), name, req.Score); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to update score: "+err.Error())
		return
	}
	s.data.Invalidate()

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"name":  name,
		"score": req.Score,
	})
}

// handleListJobs returns the normalized job postings.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.data.Jobs(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to load jobs: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// handleDashboardStats returns the derived dashboard view.
func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.data.Dashboard(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to build dashboard: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// handleRefresh drops the cached snapshot.
func (s *Server) handleRefresh(w http.ResponseWriter, _ *http.Request) {
	s.data.Invalidate()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "refreshed"})
}

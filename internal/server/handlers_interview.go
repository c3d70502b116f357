package server

import (
	"net/http"

	"github.com/wenhao/airecruit/internal/llm"
	"github.com/wenhao/airecruit/internal/recruit"
)

// QuestionsRequest is the request body for POST /api/interview/questions
type QuestionsRequest struct {
	Position     string `json:"position" validate:"required"`
	Requirements string `json:"requirements"`
	Description  string `json:"description"`
}

// RegenerateRequest is the request body for questions/regenerate
type RegenerateRequest struct {
	Position     string           `json:"position" validate:"required"`
	Requirements string           `json:"requirements"`
	Previous     *llm.QuestionSet `json:"previous" validate:"required"`
	Feedback     string           `json:"feedback" validate:"required"`
}

// StartInterviewRequest is the request body for POST /api/interview/start
type StartInterviewRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Position     string `json:"position"`
	Requirements string `json:"requirements"`
	Description  string `json:"description"`
}

// StartInterviewResponse carries the new session and its questions.
type StartInterviewResponse struct {
	SessionID         string         `json:"session_id"`
	Questions         []llm.Question `json:"questions"`
	InterviewStrategy string         `json:"interview_strategy"`
}

// AnswerRequest is the request body for POST /api/interview/{session_id}/answer
type AnswerRequest struct {
	Question  string `json:"question" validate:"required"`
	Dimension string `json:"dimension" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
}

// AnswerResponse reports the stored answer's evaluation.
type AnswerResponse struct {
	SessionID    string   `json:"session_id"`
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

// handleGenerateQuestions generates a question set for a position.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req QuestionsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	set, err := s.interviewer.GenerateQuestions(r.Context(), llm.JobContext{
		Position:     req.Position,
		Requirements: req.Requirements,
		Description:  req.Description,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to generate questions: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, set)
}

// handleRegenerateQuestions revises a set from recruiter feedback.
func (s *Server) handleRegenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req RegenerateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	set, err := s.interviewer.RegenerateQuestions(r.Context(), llm.JobContext{
		Position:     req.Position,
		Requirements: req.Requirements,
	}, req.Previous, req.Feedback)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to regenerate questions: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, set)
}

// handleStartInterview registers the candidate, opens a session, and
// returns its question set. Registration is idempotent on email, so a
// returning candidate starting a second interview is not an error.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req StartInterviewRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if req.Email != "" {
		if _, _, err := s.store.RegisterCandidate(r.Context(), req.Name, req.Email, "", req.Position); err != nil {
			s.errorResponse(w, HTTPStatus(err), "Failed to register candidate: "+err.Error())
			return
		}
	}

	session, err := s.store.StartSession(r.Context(), req.Name, req.Email, req.Position)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to start session: "+err.Error())
		return
	}

	set, err := s.interviewer.GenerateQuestions(r.Context(), llm.JobContext{
		Position:     req.Position,
		Requirements: req.Requirements,
		Description:  req.Description,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to generate questions: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, StartInterviewResponse{
		SessionID:         session.ID,
		Questions:         set.Questions,
		InterviewStrategy: set.InterviewStrategy,
	})
}

// handleSubmitAnswer scores an answer and records it on the session.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	var req AnswerRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	dimension := recruit.Dimension(req.Dimension)
	if !recruit.IsValidDimension(dimension) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown dimension: "+req.Dimension)
		return
	}

	eval := s.interviewer.ScoreAnswer(r.Context(), llm.Question{
		Text:      req.Question,
		Dimension: dimension,
	}, req.Answer)

	if _, err := s.store.RecordAnswer(r.Context(), sessionID, req.Question, req.Answer, req.Dimension, &eval.Score); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to record answer: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnswerResponse{
		SessionID:    sessionID,
		Score:        eval.Score,
		Feedback:     eval.Feedback,
		Strengths:    eval.Strengths,
		Improvements: eval.Improvements,
	})
}

// handleCompleteInterview closes a session. The merged candidate view
// picks the new summary up on the next snapshot, so the cache is dropped.
func (s *Server) handleCompleteInterview(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	if err := s.store.CompleteSession(r.Context(), sessionID); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to complete session: "+err.Error())
		return
	}
	s.data.Invalidate()

	session, err := s.store.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to load session: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, session)
}

// handleGetSession returns a session and its recorded answers.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	session, err := s.store.GetSession(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to load session: "+err.Error())
		return
	}
	answers, err := s.store.ListAnswers(r.Context(), sessionID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to load answers: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session": session,
		"answers": answers,
	})
}

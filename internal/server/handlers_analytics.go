package server

import (
	"net/http"
	"time"
)

// ChatRequest is the request body for POST /api/chat
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// EmailReportRequest is the request body for POST /api/report/email
type EmailReportRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,dive,email"`
	Subject    string   `json:"subject"`
}

// handleChat answers a recruiter question over the current stats.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	stats, err := s.data.Dashboard(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to build dashboard: "+err.Error())
		return
	}

	answer, err := s.analyst.Chat(r.Context(), req.Message, stats)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to answer: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ChatResponse{Answer: answer})
}

// handleEmailReport generates a summary report and mails it.
func (s *Server) handleEmailReport(w http.ResponseWriter, r *http.Request) {
	if s.mailer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Email delivery is not configured")
		return
	}

	var req EmailReportRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if req.Subject == "" {
		req.Subject = "Recruitment summary " + time.Now().Format("2006-01-02")
	}

	stats, err := s.data.Dashboard(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to build dashboard: "+err.Error())
		return
	}

	body, err := s.analyst.Report(r.Context(), stats)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to generate report: "+err.Error())
		return
	}

	if err := s.mailer.Send(req.Recipients, req.Subject, body); err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to send report: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":     "sent",
		"recipients": req.Recipients,
	})
}

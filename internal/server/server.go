// Package server provides the HTTP REST API for the recruitment backend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/wenhao/airecruit/internal/db"
	"github.com/wenhao/airecruit/internal/llm"
	"github.com/wenhao/airecruit/internal/recruit"
)

// QuestionGenerator produces and scores interview questions.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, job llm.JobContext) (*llm.QuestionSet, error)
	RegenerateQuestions(ctx context.Context, job llm.JobContext, previous *llm.QuestionSet, feedback string) (*llm.QuestionSet, error)
	ScoreAnswer(ctx context.Context, question llm.Question, answer string) *llm.AnswerEvaluation
}

// ChatAnalyst answers analytics questions and writes reports.
type ChatAnalyst interface {
	Chat(ctx context.Context, question string, stats *recruit.DashboardStats) (string, error)
	Report(ctx context.Context, stats *recruit.DashboardStats) (string, error)
}

// ReportMailer delivers report emails.
type ReportMailer interface {
	Send(to []string, subject, body string) error
}

// Config holds server configuration
type Config struct {
	Port int
}

// Deps are the collaborators the handlers dispatch to.
type Deps struct {
	Data        *recruit.Service
	Store       *db.DB
	Interviewer QuestionGenerator
	Analyst     ChatAnalyst
	Mailer      ReportMailer
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	data        *recruit.Service
	store       *db.DB
	interviewer QuestionGenerator
	analyst     ChatAnalyst
	mailer      ReportMailer
	validate    *validator.Validate
}

// New creates a new server instance
func New(cfg Config, deps Deps) *Server {
	s := &Server{
		data:        deps.Data,
		store:       deps.Store,
		interviewer: deps.Interviewer,
		analyst:     deps.Analyst,
		mailer:      deps.Mailer,
		validate:    validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Reconciled data endpoints
	mux.HandleFunc("GET /api/candidates", s.handleListCandidates)
	mux.HandleFunc("POST /api/candidates", s.handleRegisterCandidate)
	mux.HandleFunc("PUT /api/candidates/{name}/score", s.handleUpdateScore)
	mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	mux.HandleFunc("GET /api/dashboard/stats", s.handleDashboardStats)
	mux.HandleFunc("POST /api/dashboard/refresh", s.handleRefresh)

	// Interview lifecycle endpoints
	mux.HandleFunc("POST /api/interview/questions", s.handleGenerateQuestions)
	mux.HandleFunc("POST /api/interview/questions/regenerate", s.handleRegenerateQuestions)
	mux.HandleFunc("POST /api/interview/start", s.handleStartInterview)
	mux.HandleFunc("POST /api/interview/{session_id}/answer", s.handleSubmitAnswer)
	mux.HandleFunc("POST /api/interview/{session_id}/complete", s.handleCompleteInterview)
	mux.HandleFunc("GET /api/interview/{session_id}", s.handleGetSession)

	// Analytics endpoints
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("POST /api/report/email", s.handleEmailReport)
	mux.HandleFunc("GET /api/export/evaluations.csv", s.handleExportEvaluations)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation endpoints wait on the model
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.store != nil {
		s.store.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// decodeAndValidate decodes a JSON body into req and runs struct
// validation, writing the error response itself on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}

package server

import (
	"log"
	"net/http"

	"github.com/wenhao/airecruit/internal/report"
)

// handleExportEvaluations streams the evaluation table as CSV.
func (s *Server) handleExportEvaluations(w http.ResponseWriter, r *http.Request) {
	evals, err := s.store.ListEvaluations(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Failed to list evaluations: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="evaluations.csv"`)
	if err := report.WriteEvaluationsCSV(w, evals); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("Failed to write evaluations csv: %v", err)
	}
}

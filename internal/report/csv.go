// Package report produces recruiter-facing artifacts: the evaluation CSV
// export and emailed summary reports.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/wenhao/airecruit/internal/db"
	"github.com/wenhao/airecruit/internal/recruit"
)

// Score level bands for the exported total score.
const (
	LevelOutstanding = "outstanding"
	LevelExcellent   = "excellent"
	LevelGood        = "good"
	LevelPoor        = "poor"
)

// ScoreLevel maps a total score to its band. Boundaries are
// right-inclusive: 60 is still poor, 75 still good, 85 still excellent.
func ScoreLevel(score float64) string {
	switch {
	case score > 85:
		return LevelOutstanding
	case score > 75:
		return LevelExcellent
	case score > 60:
		return LevelGood
	default:
		return LevelPoor
	}
}

// WriteEvaluationsCSV writes all evaluations as CSV. Unscored dimensions
// export as 0 so the sheet stays rectangular for spreadsheet tooling.
func WriteEvaluationsCSV(w io.Writer, evals []db.Evaluation) error {
	cw := csv.NewWriter(w)

	header := []string{"name", "email", "position"}
	for _, dim := range recruit.Dimensions {
		header = append(header, string(dim))
	}
	header = append(header, "total_score", "score_level")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, e := range evals {
		row := []string{e.Name, e.Email, e.Position}
		for _, dim := range recruit.Dimensions {
			row = append(row, formatScore(e.Dimensions.Get(dim)))
		}
		row = append(row, formatScore(e.TotalScore), levelFor(e.TotalScore))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", e.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func formatScore(score *float64) string {
	if score == nil {
		return "0"
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}

func levelFor(score *float64) string {
	if score == nil {
		return LevelPoor
	}
	return ScoreLevel(*score)
}

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wenhao/airecruit/internal/recruit"
)

// Evaluation is one candidate's persisted dimension scores and total.
type Evaluation struct {
	ID         int64                   `json:"id"`
	Name       string                  `json:"name"`
	Email      string                  `json:"email"`
	Position   string                  `json:"position"`
	Dimensions recruit.DimensionScores `json:"dimensions"`
	TotalScore *float64                `json:"total_score,omitempty"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// UpsertEvaluation writes a candidate's evaluation, replacing any
// previous scores for the same name.
func (db *DB) UpsertEvaluation(ctx context.Context, eval *Evaluation) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO candidate_evaluations
		   (name, email, position, knowledge, skill, ability, personality, motivation, value, total_score, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (name) DO UPDATE SET
		   email = excluded.email,
		   position = excluded.position,
		   knowledge = excluded.knowledge,
		   skill = excluded.skill,
		   ability = excluded.ability,
		   personality = excluded.personality,
		   motivation = excluded.motivation,
		   value = excluded.value,
		   total_score = excluded.total_score,
		   updated_at = CURRENT_TIMESTAMP`,
		eval.Name, eval.Email, eval.Position,
		eval.Dimensions.Knowledge, eval.Dimensions.Skill, eval.Dimensions.Ability,
		eval.Dimensions.Personality, eval.Dimensions.Motivation, eval.Dimensions.Value,
		eval.TotalScore)
	if err != nil {
		return fmt.Errorf("failed to upsert evaluation: %w", err)
	}
	return nil
}

// UpdateTotalScore sets just the total score for a candidate, creating
// the evaluation row if necessary. Returns ErrNotFound never; absent
// candidates get a fresh row so a manual correction is never lost.
func (db *DB) UpdateTotalScore(ctx context.Context, name string, score float64) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO candidate_evaluations (name, total_score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (name) DO UPDATE SET
		   total_score = excluded.total_score,
		   updated_at = CURRENT_TIMESTAMP`,
		name, score)
	if err != nil {
		return fmt.Errorf("failed to update total score: %w", err)
	}
	return nil
}

// GetEvaluation retrieves a candidate's evaluation by name, or nil when
// absent.
func (db *DB) GetEvaluation(ctx context.Context, name string) (*Evaluation, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, email, position, knowledge, skill, ability, personality, motivation, value, total_score, updated_at
		 FROM candidate_evaluations WHERE name = ?`,
		name)
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	defer rows.Close()

	evals, err := scanEvaluations(rows)
	if err != nil {
		return nil, err
	}
	if len(evals) == 0 {
		return nil, nil
	}
	return &evals[0], nil
}

// ListEvaluations returns all evaluations ordered by name.
func (db *DB) ListEvaluations(ctx context.Context) ([]Evaluation, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, email, position, knowledge, skill, ability, personality, motivation, value, total_score, updated_at
		 FROM candidate_evaluations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	return scanEvaluations(rows)
}

// LoadEvaluations adapts the stored evaluations to the reconciliation
// pipeline's shape so manual corrections feed the merged view.
func (db *DB) LoadEvaluations(ctx context.Context) ([]recruit.EvaluationRecord, error) {
	evals, err := db.ListEvaluations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recruit.EvaluationRecord, len(evals))
	for i, e := range evals {
		out[i] = recruit.EvaluationRecord{
			Name:       e.Name,
			Email:      e.Email,
			Dimensions: e.Dimensions,
			TotalScore: e.TotalScore,
		}
	}
	return out, nil
}

func scanEvaluations(rows *sql.Rows) ([]Evaluation, error) {
	var evals []Evaluation
	for rows.Next() {
		var e Evaluation
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Position,
			&e.Dimensions.Knowledge, &e.Dimensions.Skill, &e.Dimensions.Ability,
			&e.Dimensions.Personality, &e.Dimensions.Motivation, &e.Dimensions.Value,
			&e.TotalScore, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		evals = append(evals, e)
	}
	return evals, rows.Err()
}

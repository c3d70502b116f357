package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wenhao/airecruit/internal/recruit"
)

// Session statuses.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// Session is one interview session row.
type Session struct {
	ID             string     `json:"id"`
	CandidateName  string     `json:"candidate_name"`
	CandidateEmail string     `json:"candidate_email"`
	Position       string     `json:"position"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Answer is one recorded question/answer pair with its score.
type Answer struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Dimension string    `json:"dimension"`
	AIScore   *float64  `json:"ai_score,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StartSession creates a new active interview session and returns it.
func (db *DB) StartSession(ctx context.Context, name, email, position string) (*Session, error) {
	s := Session{
		ID:             uuid.NewString(),
		CandidateName:  name,
		CandidateEmail: email,
		Position:       position,
		Status:         SessionActive,
	}
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO interview_sessions (id, candidate_name, candidate_email, position, status)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING created_at`,
		s.ID, s.CandidateName, s.CandidateEmail, s.Position, s.Status,
	).Scan(&s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return &s, nil
}

// GetSession retrieves a session by ID. Returns ErrNotFound when absent.
func (db *DB) GetSession(ctx context.Context, id string) (*Session, error) {
	var s Session
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, candidate_name, candidate_email, position, status, created_at, completed_at
		 FROM interview_sessions WHERE id = ?`,
		id,
	).Scan(&s.ID, &s.CandidateName, &s.CandidateEmail, &s.Position, &s.Status, &s.CreatedAt, &s.CompletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: session %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// RecordAnswer stores a scored answer against a session.
func (db *DB) RecordAnswer(ctx context.Context, sessionID, question, answer, dimension string, aiScore *float64) (*Answer, error) {
	if _, err := db.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	a := Answer{
		SessionID: sessionID,
		Question:  question,
		Answer:    answer,
		Dimension: dimension,
		AIScore:   aiScore,
	}
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO interview_qa (session_id, question, answer, dimension, ai_score)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING id, created_at`,
		a.SessionID, a.Question, a.Answer, a.Dimension, a.AIScore,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}
	return &a, nil
}

// CompleteSession marks a session as completed.
func (db *DB) CompleteSession(ctx context.Context, id string) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE interview_sessions SET status = ?, completed_at = CURRENT_TIMESTAMP WHERE id = ?`,
		SessionCompleted, id)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: session %s", ErrNotFound, id)
	}
	return nil
}

// ListAnswers returns a session's answers in submission order.
func (db *DB) ListAnswers(ctx context.Context, sessionID string) ([]Answer, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, session_id, question, answer, dimension, ai_score, created_at
		 FROM interview_qa WHERE session_id = ? ORDER BY id`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Question, &a.Answer, &a.Dimension, &a.AIScore, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// SessionSummaries aggregates every session's scored answers into the
// per-session summaries consumed by the merger. Sessions with no scored
// answers are reported with a zero count and never override anything.
func (db *DB) SessionSummaries(ctx context.Context) ([]recruit.SessionSummary, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT s.id, s.candidate_name, s.candidate_email,
		        COUNT(q.ai_score), COALESCE(AVG(q.ai_score), 0),
		        COALESCE(MAX(q.created_at), s.created_at)
		 FROM interview_sessions s
		 LEFT JOIN interview_qa q ON q.session_id = s.id AND q.ai_score IS NOT NULL
		 GROUP BY s.id, s.candidate_name, s.candidate_email, s.created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize sessions: %w", err)
	}
	defer rows.Close()

	var summaries []recruit.SessionSummary
	for rows.Next() {
		var s recruit.SessionSummary
		var last string // expression column, comes back as text
		if err := rows.Scan(&s.SessionID, &s.Name, &s.Email, &s.AnswerCount, &s.AverageScore, &last); err != nil {
			return nil, fmt.Errorf("failed to scan session summary: %w", err)
		}
		s.LastAnswerAt = parseStoredTime(last)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// parseStoredTime parses a timestamp as SQLite renders it, both the
// CURRENT_TIMESTAMP text form and the driver's bound time.Time form.
func parseStoredTime(v string) time.Time {
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999999999-07:00",
		time.RFC3339Nano,
	} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

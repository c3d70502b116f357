package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Candidate is one registered applicant row.
type Candidate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCandidate inserts a new candidate. Returns ErrDuplicateEmail when
// the email is already registered.
func (db *DB) CreateCandidate(ctx context.Context, name, email, phone, position string) (*Candidate, error) {
	var c Candidate
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO candidates (name, email, phone, position)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, name, email, phone, position, created_at`,
		name, email, phone, position,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Position, &c.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
		}
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return &c, nil
}

// GetCandidateByEmail retrieves a candidate by email, or nil when absent.
func (db *DB) GetCandidateByEmail(ctx context.Context, email string) (*Candidate, error) {
	var c Candidate
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, name, email, phone, position, created_at
		 FROM candidates WHERE email = ?`,
		email,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Position, &c.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &c, nil
}

// RegisterCandidate creates the candidate, or returns the existing row
// when the email is already registered. The bool reports whether a new
// row was created.
func (db *DB) RegisterCandidate(ctx context.Context, name, email, phone, position string) (*Candidate, bool, error) {
	existing, err := db.GetCandidateByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}
	c, err := db.CreateCandidate(ctx, name, email, phone, position)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// ListCandidates returns all registered candidates, newest first.
func (db *DB) ListCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, email, phone, position, created_at
		 FROM candidates ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fintrack/internal/models"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ Sessions = (*SessionRepository)(nil)

const (
	insertSessionSQL        = `INSERT INTO sessions (token, user_id) VALUES (?, ?)`
	selectSessionByTokenSQL = `SELECT token, user_id FROM sessions WHERE token = ?`
	deleteSessionSQL        = `DELETE FROM sessions WHERE token = ?`
)

// Create persists a (token, user) pair. Multiple live sessions per user are
// allowed; the token is the primary key.
func (r *SessionRepository) Create(ctx context.Context, userID int, token string) error {
	if _, err := r.db.ExecContext(ctx, insertSessionSQL, token, userID); err != nil {
		return fmt.Errorf("insert session for user %d: %w", userID, err)
	}
	return nil
}

// GetByToken looks a session up by exact token match. Returns (nil, nil) if
// not found.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, selectSessionByTokenSQL, token).Scan(&s.Token, &s.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	return &s, nil
}

// Delete removes the matching session. Deleting an absent token is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSQL, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

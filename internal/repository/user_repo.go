package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, name, email, password_hash FROM users WHERE email = ?`
)

// Create inserts a new user and returns its ID. A unique-index violation on
// email is reported as ErrDuplicateEmail so callers need no driver knowledge.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, name, email, passwordHash)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user by email, case-insensitively (the email column
// carries NOCASE collation). Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return &u, nil
}

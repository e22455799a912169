package repository

import (
	"context"
	"database/sql"

	"fintrack/internal/models"
	"fintrack/internal/repository/db"
)

type Users interface {
	Create(ctx context.Context, name, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Sessions interface {
	Create(ctx context.Context, userID int, token string) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

type Transactions interface {
	Create(ctx context.Context, t models.Transaction) (int64, error)
	ListByUser(ctx context.Context, userID int) ([]models.Transaction, error)
}

type Repository struct {
	Users        Users
	Sessions     Sessions
	Transactions Transactions
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users:        NewUserRepository(conn),
		Sessions:     NewSessionRepository(conn),
		Transactions: NewTransactionRepository(conn),
	}
}

// InitDB opens the SQLite database and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}

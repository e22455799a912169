package service

import (
	"context"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// Authorization covers the account and session lifecycle: sign-up, sign-in
// (which mints a bearer token), token resolution and sign-out.
type Authorization interface {
	SignUp(ctx context.Context, name, email, password string) (int, error)
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (int, error)
	SignOut(ctx context.Context, token string) error
}

// Ledger records signed monetary entries and aggregates them per user.
type Ledger interface {
	Record(ctx context.Context, userID int, description string, value int64, entryType string) (int64, error)
	Summarize(ctx context.Context, userID int) (Summary, error)
}

type Service struct {
	Authorization
	Ledger
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Sessions, UUIDTokenSource{}),
		Ledger:        NewLedgerService(repos.Transactions),
	}
}

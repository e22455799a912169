package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the fixed bcrypt cost factor for stored hashes.
const passwordHashCost = 12

// Domain errors for auth flows.
var (
	// ErrEmailTaken signals a sign-up against an already registered email
	// (compared case-insensitively).
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken signals a syntactically present token with no live session.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthService handles accounts and sessions.
type AuthService struct {
	users    repository.Users
	sessions repository.Sessions
	tokens   TokenSource
}

func NewAuthService(users repository.Users, sessions repository.Sessions, tokens TokenSource) *AuthService {
	return &AuthService{users: users, sessions: sessions, tokens: tokens}
}

// SignUp hashes the password and creates a new user. The existence pre-check
// gives a clean conflict error; the unique index on email is what actually
// prevents duplicates under concurrent sign-ups.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (int, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}

	id, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return id, nil
}

// SignIn validates credentials, mints a fresh token and persists the session.
// Every successful sign-in produces a new token; earlier sessions stay valid.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := s.tokens.NewToken()
	if err := s.sessions.Create(ctx, u.ID, token); err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate resolves a bearer token to a user ID. Read-only.
func (s *AuthService) Authenticate(ctx context.Context, token string) (int, error) {
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return 0, err
	}
	if sess == nil {
		return 0, ErrInvalidToken
	}
	return sess.UserID, nil
}

// SignOut removes the session. An unknown token is a no-op, not an error.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

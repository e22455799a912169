package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// Validation errors for ledger entries. All of them mean the request was
// rejected before anything was persisted.
var (
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrNonPositiveValue = errors.New("value must be a positive whole number")
	ErrInvalidType      = errors.New(`type must be "in" or "out"`)
)

// IsInvalidEntry reports whether err is one of the entry validation errors.
func IsInvalidEntry(err error) bool {
	return errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrNonPositiveValue) ||
		errors.Is(err, ErrInvalidType)
}

// Entry is one ledger entry as returned to callers, with the date collapsed
// to a plain calendar-day string.
type Entry struct {
	ID          int64  `json:"id"`
	UserID      int    `json:"user_id"`
	Description string `json:"description"`
	Value       int64  `json:"value"`
	Date        string `json:"date"`
	Type        string `json:"type"`
}

// Summary is the per-user aggregate: every entry in insertion order plus the
// signed total folded over them.
type Summary struct {
	Total        int64   `json:"total"`
	Transactions []Entry `json:"transactions"`
}

const dateLayout = "2006-01-02"

// LedgerService records and aggregates transactions.
type LedgerService struct {
	transactions repository.Transactions
}

func NewLedgerService(transactions repository.Transactions) *LedgerService {
	return &LedgerService{transactions: transactions}
}

// Record validates and persists one entry for the given (already
// authenticated) user, stamped with today's calendar date on the server's
// local clock. Nothing is stored when validation fails.
func (s *LedgerService) Record(ctx context.Context, userID int, description string, value int64, entryType string) (int64, error) {
	if strings.TrimSpace(description) == "" {
		return 0, ErrEmptyDescription
	}
	if value <= 0 {
		return 0, ErrNonPositiveValue
	}
	if entryType != models.TypeIn && entryType != models.TypeOut {
		return 0, ErrInvalidType
	}

	return s.transactions.Create(ctx, models.Transaction{
		UserID:      userID,
		Description: description,
		Value:       value,
		Date:        time.Now(),
		Type:        entryType,
	})
}

// Summarize fetches the user's entries in insertion order and folds the
// signed total: add for "in", subtract for "out", starting from zero. An
// empty ledger yields total 0 and an empty list.
func (s *LedgerService) Summarize(ctx context.Context, userID int) (Summary, error) {
	list, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Transactions: make([]Entry, 0, len(list))}
	for _, t := range list {
		if t.Type == models.TypeIn {
			summary.Total += t.Value
		} else {
			summary.Total -= t.Value
		}
		summary.Transactions = append(summary.Transactions, Entry{
			ID:          t.ID,
			UserID:      t.UserID,
			Description: t.Description,
			Value:       t.Value,
			Date:        t.Date.Format(dateLayout),
			Type:        t.Type,
		})
	}
	return summary, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fintrack/internal/models"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ Transactions = (*TransactionRepository)(nil)

// Dates are stored as calendar-day text; no time component.
const dateLayout = "2006-01-02"

const (
	insertTransactionSQL = `INSERT INTO transactions (user_id, description, value, date, type) VALUES (?, ?, ?, ?, ?)`
	selectByUserSQL      = `SELECT id, user_id, description, value, date, type FROM transactions WHERE user_id = ? ORDER BY id`
)

// Create appends one ledger entry and returns its ID. Entries are never
// updated or deleted afterwards.
func (r *TransactionRepository) Create(ctx context.Context, t models.Transaction) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertTransactionSQL,
		t.UserID,
		t.Description,
		t.Value,
		t.Date.Format(dateLayout),
		t.Type,
	)
	if err != nil {
		return 0, fmt.Errorf("insert transaction for user %d: %w", t.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for transaction: %w", err)
	}
	return lastID, nil
}

// ListByUser returns every entry belonging to the user in insertion order.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID int) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, selectByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select transactions for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Transaction
	for rows.Next() {
		var (
			t       models.Transaction
			rawDate string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Value, &rawDate, &t.Type); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Date, err = time.Parse(dateLayout, rawDate)
		if err != nil {
			return nil, fmt.Errorf("parse transaction date %q: %w", rawDate, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

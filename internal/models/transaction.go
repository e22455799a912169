package models

import "time"

// Transaction directions.
const (
	TypeIn  = "in"  // credit
	TypeOut = "out" // debit
)

// Transaction is a single immutable ledger entry. Value is a whole amount
// in minor units; Date carries day granularity only.
type Transaction struct {
	ID          int64     `json:"id"`
	UserID      int       `json:"user_id"`
	Description string    `json:"description"`
	Value       int64     `json:"value"`
	Date        time.Time `json:"-"`
	Type        string    `json:"type"`
}

package models

import (
	"time"
)

// TransactionType is the client-supplied direction of a ledger entry.
// It determines the sign applied to the stored amount and is never persisted.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Transaction represents an immutable ledger entry scoped to a session.
// The "amont" spelling is kept as-is for compatibility with existing clients.
type Transaction struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Amont     float64   `json:"amont" db:"amont"`
	SessionID string    `json:"session_id" db:"session_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateTransactionRequest is the body of the create-transaction endpoint.
// Amont is a pointer so that an explicit zero passes the required check.
type CreateTransactionRequest struct {
	Title string   `json:"title" validate:"required"`
	Amont *float64 `json:"amont" validate:"required"`
	Type  string   `json:"type" validate:"required,oneof=credit debit"`
}

// Summary holds the running balance of a session. Amount is nil when the
// session has no transactions, mirroring SQL SUM over zero rows.
type Summary struct {
	Amount *float64 `json:"amount"`
}

// TransactionListResponse is the body of the list endpoint
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// TransactionDetailResponse is the body of the get-by-id endpoint;
// Transaction is null when no row matches the session and id
type TransactionDetailResponse struct {
	Transaction *Transaction `json:"transaction"`
}

// SummaryResponse is the body of the summary endpoint
type SummaryResponse struct {
	Sumary Summary `json:"sumary"`
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/prasetia/dompet/internal/pkg/models"
)

// TransactionRepo is the Postgres-backed transaction store
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// EnsureSchema creates the transactions table and its session index when
// they do not exist yet
func (r *TransactionRepo) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS transactions (
			id uuid PRIMARY KEY,
			title text NOT NULL,
			amont double precision NOT NULL,
			session_id uuid NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return err
	}

	index := `CREATE INDEX IF NOT EXISTS idx_transactions_session_id ON transactions (session_id)`
	_, err := r.db.ExecContext(ctx, index)
	return err
}

// Insert stores a new transaction row
func (r *TransactionRepo) Insert(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, title, amont, session_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		txn.ID,
		txn.Title,
		txn.Amont,
		txn.SessionID,
		txn.CreatedAt,
	)

	return err
}

// ListBySession retrieves all transactions for a session in insertion order
func (r *TransactionRepo) ListBySession(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	query := `
		SELECT id, title, amont, session_id, created_at
		FROM transactions
		WHERE session_id = $1
	`

	txns := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, query, sessionID); err != nil {
		return nil, err
	}
	return txns, nil
}

// GetBySessionAndID retrieves a single transaction scoped to a session.
// A missing row is not an error: the result is nil.
func (r *TransactionRepo) GetBySessionAndID(ctx context.Context, sessionID, id string) (*models.Transaction, error) {
	query := `
		SELECT id, title, amont, session_id, created_at
		FROM transactions
		WHERE session_id = $1 AND id = $2
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, sessionID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// SumBySession returns the signed sum of all amounts in a session.
// SQL SUM over zero rows is NULL, surfaced here as a nil pointer.
func (r *TransactionRepo) SumBySession(ctx context.Context, sessionID string) (*float64, error) {
	query := `SELECT SUM(amont) AS amount FROM transactions WHERE session_id = $1`

	var sum sql.NullFloat64
	if err := r.db.GetContext(ctx, &sum, query, sessionID); err != nil {
		return nil, err
	}

	if !sum.Valid {
		return nil, nil
	}
	return &sum.Float64, nil
}

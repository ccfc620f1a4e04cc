package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prasetia/dompet/internal/pkg/logger"
	"github.com/prasetia/dompet/internal/pkg/models"
	nrpkg "github.com/prasetia/dompet/internal/pkg/newrelic"
	"github.com/prasetia/dompet/services/ledger"
)

// ErrMissingAmont is returned when a create request carries no amount. The
// HTTP layer validates requests before calling the use case, so this guards
// callers that skip validation.
var ErrMissingAmont = errors.New("amont is required")

// ledgerUC implements the ledger.LedgerUC interface
type ledgerUC struct {
	cfg  *models.Config
	repo ledger.TransactionRepo
}

// NewLedgerUC creates a new ledger use case
func NewLedgerUC(cfg *models.Config, repo ledger.TransactionRepo) ledger.LedgerUC {
	return &ledgerUC{
		cfg:  cfg,
		repo: repo,
	}
}

// CreateTransaction stores a new ledger entry. The stored amount carries the
// sign of the direction: credits keep the client magnitude, debits negate it.
// A debit of a negative magnitude therefore flips to positive; that is the
// accepted contract, not an error.
func (uc *ledgerUC) CreateTransaction(ctx context.Context, sessionID string, req models.CreateTransactionRequest) (string, error) {
	if req.Amont == nil {
		return "", ErrMissingAmont
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
		logger.Info("Issued new ledger session",
			logger.String("session_id", sessionID))
	}

	amont := *req.Amont
	if models.TransactionType(req.Type) == models.TransactionTypeDebit {
		amont = amont * -1
	}

	txn := &models.Transaction{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Amont:     amont,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}

	err := nrpkg.WithSegment(ctx, "Ledger.CreateTransaction", func() error {
		return uc.repo.Insert(ctx, txn)
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert transaction: %w", err)
	}

	return sessionID, nil
}

// ListTransactions returns every transaction belonging to the session
func (uc *ledgerUC) ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	txns, err := uc.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// GetTransaction returns the transaction matching both session and id, or nil
// when no such row exists. A wrong session and a nonexistent id are
// indistinguishable, so a caller never learns about other sessions' entries.
func (uc *ledgerUC) GetTransaction(ctx context.Context, sessionID, id string) (*models.Transaction, error) {
	txn, err := uc.repo.GetBySessionAndID(ctx, sessionID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// GetSummary recomputes the session balance from the full set of rows on
// every call; Amount stays nil for a session with no transactions.
func (uc *ledgerUC) GetSummary(ctx context.Context, sessionID string) (models.Summary, error) {
	sum, err := uc.repo.SumBySession(ctx, sessionID)
	if err != nil {
		return models.Summary{}, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return models.Summary{Amount: sum}, nil
}

package ledger

import (
	"context"

	"github.com/prasetia/dompet/internal/pkg/models"
)

// LedgerUC defines the interface for ledger business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prasetia/dompet/services/ledger LedgerUC
type LedgerUC interface {
	// CreateTransaction applies the credit/debit sign convention and inserts
	// the entry. When sessionID is empty a new session is issued; the session
	// actually used is returned so the handler can set the cookie.
	CreateTransaction(ctx context.Context, sessionID string, req models.CreateTransactionRequest) (string, error)
	ListTransactions(ctx context.Context, sessionID string) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, sessionID, id string) (*models.Transaction, error)
	GetSummary(ctx context.Context, sessionID string) (models.Summary, error)
}

package ledger

import (
	"context"

	"github.com/prasetia/dompet/internal/pkg/models"
)

// TransactionRepo defines the interface for transaction data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prasetia/dompet/services/ledger TransactionRepo
type TransactionRepo interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, txn *models.Transaction) error
	ListBySession(ctx context.Context, sessionID string) ([]models.Transaction, error)
	GetBySessionAndID(ctx context.Context, sessionID, id string) (*models.Transaction, error)
	SumBySession(ctx context.Context, sessionID string) (*float64, error)
}

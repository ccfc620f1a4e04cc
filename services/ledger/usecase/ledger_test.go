package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prasetia/dompet/internal/pkg/models"
	"github.com/prasetia/dompet/services/ledger/mocks"
	"github.com/prasetia/dompet/services/ledger/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestCreateTransaction_CreditKeepsSign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := usecase.NewLedgerUC(&models.Config{}, mockRepo)

	sessionID := uuid.NewString()

	var inserted *models.Transaction
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			inserted = txn
			return nil
		})

	got, err := uc.CreateTransaction(context.Background(), sessionID, models.CreateTransactionRequest{
		Title: "Salary",
		Amont: floatPtr(1000),
		Type:  "credit",
	})

	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
	require.NotNil(t, inserted)
	assert.Equal(t, 1000.0, inserted.Amont)
	assert.Equal(t, "Salary", inserted.Title)
	assert.Equal(t, sessionID, inserted.SessionID)

	_, err = uuid.Parse(inserted.ID)
	assert.NoError(t, err)
}

func TestCreateTransaction_DebitFlipsSign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := usecase.NewLedgerUC(&models.Config{}, mockRepo)

	tests := []struct {
		name   string
		amont  float64
		stored float64
	}{
		{"positive magnitude", 300, -300},
		{"zero magnitude", 0, 0},
		{"negative magnitude flips back to positive", -50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inserted *models.Transaction
			mockRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
					inserted = txn
					return nil
				})

			_, err := uc.CreateTransaction(context.Background(), uuid.NewString(), models.CreateTransactionRequest{
				Title: "Rent",
				Amont: floatPtr(tt.amont),
				Type:  "debit",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.stored, inserted.Amont)
		})
	}
}

func TestCreateTransaction_MissingAmountIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Insert expectation: a request without an amount never reaches storage.
	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := usecase.NewLedgerUC(&models.Config{}, mockRepo)

	got, err := uc.CreateTransaction(context.Background(), uuid.NewString(), models.CreateTransactionRequest{
		Title: "Salary",
		Type:  "credit",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrMissingAmont)
	assert.Empty(t, got)
}

func TestCreateTransaction_IssuesSessionWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := usecase.NewLedgerUC(&models.Config{}, mockRepo)

	var inserted *models.Transaction
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			inserted = txn
			return nil
		})

	sessionID, err := uc.CreateTransaction(context.Background(), "", models.CreateTransactionRequest{
		Title: "Salary",
		Amont: floatPtr(10),
		Type:  "credit",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)

	_, err = uuid.Parse(sessionID)
	assert.NoError(t, err)
	assert.Equal(t, sessionID, inserted.SessionID)
}

func TestCreateTransaction_InsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := usecase.NewLedgerUC(&models.Config{}, mockRepo)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	_, err := uc.CreateTransaction(context.Background(), uuid.NewString(), models.CreateTransactionRequest{
		Title: "Salary",
		Amont: floatPtr(10),
		Type:  "credit",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert transaction")
}

func TestListTransactions_ScopedToSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := usecase.NewLedgerUC(&models.Config{}, mockRepo)

	sessionID := uuid.NewString()
	expected := []models.Transaction{
		{ID: uuid.NewString(), Title: "Salary", Amont: 1000, SessionID: sessionID},
		{ID: uuid.NewString(), Title: "Rent", Amont: -300, SessionID: sessionID},
	}

	mockRepo.EXPECT().
		ListBySession(gomock.Any(), sessionID).
		Return(expected, nil)

	got, err := uc.ListTransactions(context.Background(), sessionID)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestGetTransaction_AbsentIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := usecase.NewLedgerUC(&models.Config{}, mockRepo)

	sessionID := uuid.NewString()
	id := uuid.NewString()

	mockRepo.EXPECT().
		GetBySessionAndID(gomock.Any(), sessionID, id).
		Return(nil, nil)

	got, err := uc.GetTransaction(context.Background(), sessionID, id)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetSummary_PassesThroughNilSum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := usecase.NewLedgerUC(&models.Config{}, mockRepo)

	sessionID := uuid.NewString()

	mockRepo.EXPECT().
		SumBySession(gomock.Any(), sessionID).
		Return(nil, nil)

	summary, err := uc.GetSummary(context.Background(), sessionID)

	require.NoError(t, err)
	assert.Nil(t, summary.Amount)
}

func TestGetSummary_ReturnsSum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := usecase.NewLedgerUC(&models.Config{}, mockRepo)

	sessionID := uuid.NewString()

	mockRepo.EXPECT().
		SumBySession(gomock.Any(), sessionID).
		Return(floatPtr(700), nil)

	summary, err := uc.GetSummary(context.Background(), sessionID)

	require.NoError(t, err)
	require.NotNil(t, summary.Amount)
	assert.Equal(t, 700.0, *summary.Amount)
}

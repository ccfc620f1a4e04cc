package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prasetia/dompet/internal/pkg/models"
	"github.com/prasetia/dompet/services/ledger/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestEnsureSchema(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS transactions")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS idx_transactions_session_id")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.EnsureSchema(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	txn := &models.Transaction{
		ID:        uuid.NewString(),
		Title:     "Salary",
		Amont:     1000,
		SessionID: uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(txn.ID, txn.Title, txn.Amont, txn.SessionID, txn.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBySession(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	sessionID := uuid.NewString()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "title", "amont", "session_id", "created_at"}).
		AddRow(uuid.NewString(), "Salary", 1000.0, sessionID, now).
		AddRow(uuid.NewString(), "Rent", -300.0, sessionID, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, amont, session_id, created_at")).
		WithArgs(sessionID).
		WillReturnRows(rows)

	txns, err := repo.ListBySession(context.Background(), sessionID)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, 1000.0, txns[0].Amont)
	assert.Equal(t, -300.0, txns[1].Amont)
	assert.Equal(t, sessionID, txns[0].SessionID)
}

func TestListBySession_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	sessionID := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, amont, session_id, created_at")).
		WithArgs(sessionID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "amont", "session_id", "created_at"}))

	txns, err := repo.ListBySession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
}

func TestGetBySessionAndID_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	sessionID := uuid.NewString()
	id := uuid.NewString()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "title", "amont", "session_id", "created_at"}).
		AddRow(id, "Salary", 1000.0, sessionID, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, amont, session_id, created_at")).
		WithArgs(sessionID, id).
		WillReturnRows(rows)

	txn, err := repo.GetBySessionAndID(context.Background(), sessionID, id)
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, id, txn.ID)
	assert.Equal(t, "Salary", txn.Title)
}

func TestGetBySessionAndID_AbsentYieldsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	sessionID := uuid.NewString()
	id := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, amont, session_id, created_at")).
		WithArgs(sessionID, id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "amont", "session_id", "created_at"}))

	txn, err := repo.GetBySessionAndID(context.Background(), sessionID, id)
	assert.NoError(t, err)
	assert.Nil(t, txn)
}

func TestGetBySessionAndID_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, amont, session_id, created_at")).
		WithArgs("session", "id").
		WillReturnError(assert.AnError)

	_, err := repo.GetBySessionAndID(context.Background(), "session", "id")
	assert.Error(t, err)
}

func TestSumBySession_Sum(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	sessionID := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT SUM(amont)")).
		WithArgs(sessionID).
		WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow(700.0))

	sum, err := repo.SumBySession(context.Background(), sessionID)
	require.NoError(t, err)
	require.NotNil(t, sum)
	assert.Equal(t, 700.0, *sum)
}

func TestSumBySession_EmptySessionYieldsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(&models.Config{}, db)

	sessionID := uuid.NewString()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT SUM(amont)")).
		WithArgs(sessionID).
		WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow(nil))

	sum, err := repo.SumBySession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Nil(t, sum)
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prasetia/dompet/internal/pkg/logger"
	"github.com/prasetia/dompet/internal/pkg/middleware"
	"github.com/prasetia/dompet/internal/pkg/models"
	nrpkg "github.com/prasetia/dompet/internal/pkg/newrelic"
	"github.com/prasetia/dompet/internal/pkg/validation"
	"github.com/prasetia/dompet/internal/utils"
	"github.com/prasetia/dompet/services/ledger"
)

// LedgerHandler handles HTTP requests for ledger operations
type LedgerHandler struct {
	ledgerUC ledger.LedgerUC
}

// NewLedgerHandler creates a new ledger HTTP handler
func NewLedgerHandler(ledgerUC ledger.LedgerUC) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
	}
}

// ListTransactions returns every transaction of the caller's session
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.ListTransactions")

	sessionID := middleware.SessionID(c)

	txns, err := h.ledgerUC.ListTransactions(c.Request().Context(), sessionID)
	if err != nil {
		logger.Error("Failed to list transactions",
			logger.String("session_id", sessionID),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return c.JSON(http.StatusOK, models.TransactionListResponse{Transactions: txns})
}

// GetTransaction returns a single transaction by id, or null when no row
// matches the session and id
func (h *LedgerHandler) GetTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.GetTransaction")

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid transaction id", []utils.FieldError{
			{Field: "id", Rule: "uuid"},
		})
	}

	sessionID := middleware.SessionID(c)

	result, err := h.ledgerUC.GetTransaction(c.Request().Context(), sessionID, id)
	if err != nil {
		logger.Error("Failed to get transaction",
			logger.String("session_id", sessionID),
			logger.String("transaction_id", id),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to get transaction")
	}

	return c.JSON(http.StatusOK, models.TransactionDetailResponse{Transaction: result})
}

// GetSummary returns the running balance of the caller's session
func (h *LedgerHandler) GetSummary(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.GetSummary")

	sessionID := middleware.SessionID(c)

	summary, err := h.ledgerUC.GetSummary(c.Request().Context(), sessionID)
	if err != nil {
		logger.Error("Failed to compute summary",
			logger.String("session_id", sessionID),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to compute summary")
	}

	return c.JSON(http.StatusOK, models.SummaryResponse{Sumary: summary})
}

// CreateTransaction validates the body, resolves or issues the session and
// inserts the entry. The created row is not returned; a new session is
// announced through the Set-Cookie header only.
func (h *LedgerHandler) CreateTransaction(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Ledger.CreateTransaction")

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	// Validation happens before session resolution and persistence
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid request body", validation.Problems(err))
	}

	cookieSession := middleware.OptionalSessionID(c)

	sessionID, err := h.ledgerUC.CreateTransaction(c.Request().Context(), cookieSession, req)
	if err != nil {
		logger.Error("Failed to create transaction",
			logger.String("session_id", cookieSession),
			logger.ErrorField(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c, "Failed to create transaction")
	}

	if cookieSession == "" {
		middleware.SetSessionCookie(c, sessionID)
	}

	return c.NoContent(http.StatusCreated)
}

package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prasetia/dompet/internal/pkg/middleware"
	"github.com/prasetia/dompet/internal/pkg/models"
	"github.com/prasetia/dompet/services/ledger"
	httpHandler "github.com/prasetia/dompet/services/ledger/handler/http"
)

// Handler combines all handlers for the ledger service
type Handler struct {
	ledgerHTTP *httpHandler.LedgerHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(ledgerUC ledger.LedgerUC, cfg *models.Config) *Handler {
	return &Handler{
		ledgerHTTP: httpHandler.NewLedgerHandler(ledgerUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Read routes require an existing
// session cookie; the create route issues one when absent. The "/sumary"
// path keeps the original spelling for client compatibility.
func (h *Handler) RegisterRoutes(e *echo.Echo, extra ...echo.MiddlewareFunc) {
	group := e.Group("/transactions", extra...)

	group.POST("", h.ledgerHTTP.CreateTransaction)

	group.GET("", h.ledgerHTTP.ListTransactions, middleware.RequireSession())
	group.GET("/sumary", h.ledgerHTTP.GetSummary, middleware.RequireSession())
	group.GET("/:id", h.ledgerHTTP.GetTransaction, middleware.RequireSession())
}

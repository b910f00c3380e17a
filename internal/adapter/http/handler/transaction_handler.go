package handler

import (
	"strconv"

	"virtual-payment-gateway/internal/adapter/http/dto"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"
	"virtual-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles transaction status and history endpoints.
type TransactionHandler struct {
	ledger ports.TransactionLedger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger ports.TransactionLedger) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// GetStatus handles GET /api/v1/transactions/:reference/status. It
// reconciles pending records against the gateway before answering.
func (h *TransactionHandler) GetStatus(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		response.Error(c, apperror.Validation("transaction reference is required"))
		return
	}

	record, err := h.ledger.Reconcile(c.Request.Context(), reference)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransaction(record))
}

// Get handles GET /api/v1/transactions/:reference, serving the stored
// record without contacting the gateway.
func (h *TransactionHandler) Get(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		response.Error(c, apperror.Validation("transaction reference is required"))
		return
	}

	record, err := h.ledger.GetByReference(c.Request.Context(), reference)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransaction(record))
}

// List handles GET /api/v1/transactions?wallet_id=&limit=&offset=.
func (h *TransactionHandler) List(c *gin.Context) {
	walletID, err := uuid.Parse(c.Query("wallet_id"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet_id must be a valid UUID"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.ledger.ListByWallet(c.Request.Context(), walletID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.FromTransaction(&records[i]))
	}

	response.OK(c, dto.TransactionListResponse{
		Items:  items,
		Limit:  limit,
		Offset: offset,
	})
}

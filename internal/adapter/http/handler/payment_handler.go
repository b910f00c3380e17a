package handler

import (
	"virtual-payment-gateway/internal/adapter/http/dto"
	"virtual-payment-gateway/internal/adapter/http/middleware"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"
	"virtual-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles the payment endpoint.
type PaymentHandler struct {
	orchestrator ports.PaymentOrchestrator
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(orchestrator ports.PaymentOrchestrator) *PaymentHandler {
	return &PaymentHandler{orchestrator: orchestrator}
}

// MakePayment handles POST /api/v1/payments.
func (h *PaymentHandler) MakePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	var walletID *uuid.UUID
	if req.WalletID != nil && *req.WalletID != "" {
		id, err := uuid.Parse(*req.WalletID)
		if err != nil {
			response.Error(c, apperror.Validation("wallet_id must be a valid UUID"))
			return
		}
		walletID = &id
	}

	result, err := h.orchestrator.MakePayment(c.Request.Context(), ports.PaymentRequest{
		WalletID:           walletID,
		Amount:             req.Amount,
		DestinationBank:    req.DestinationBank,
		DestinationAccount: req.DestinationAccount,
		Narration:          req.Narration,
		Pin:                req.Pin,
		CallerRoles:        middleware.CallerRoles(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKMessage(c, result.Message, dto.PaymentResponse{
		Message:    result.Message,
		Reference:  result.Record.Reference,
		Status:     string(result.Record.Status),
		NewBalance: result.NewBalance,
		WalletUsed: result.WalletUsed,
		Transfer:   dto.FromTransaction(result.Record),
	})
}

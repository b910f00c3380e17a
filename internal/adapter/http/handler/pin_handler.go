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

// PinHandler handles transaction PIN endpoints.
type PinHandler struct {
	pinAuth ports.PinAuthorizer
}

// NewPinHandler creates a new PinHandler.
func NewPinHandler(pinAuth ports.PinAuthorizer) *PinHandler {
	return &PinHandler{pinAuth: pinAuth}
}

// Verify handles POST /api/v1/pins/verify.
func (h *PinHandler) Verify(c *gin.Context) {
	var req dto.PinVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		response.Error(c, apperror.Validation("wallet_id must be a valid UUID"))
		return
	}

	if err := h.pinAuth.Verify(c.Request.Context(), walletID, req.Pin, middleware.CallerRoles(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OKMessage(c, "PIN verified", nil)
}

// Change handles POST /api/v1/pins/change.
func (h *PinHandler) Change(c *gin.Context) {
	var req dto.PinChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		response.Error(c, apperror.Validation("wallet_id must be a valid UUID"))
		return
	}

	if err := h.pinAuth.VerifyAndUpdate(c.Request.Context(), walletID, req.CurrentPin, req.NewPin, middleware.CallerRoles(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OKMessage(c, "PIN updated", nil)
}

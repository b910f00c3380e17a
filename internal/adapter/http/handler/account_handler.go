package handler

import (
	"virtual-payment-gateway/internal/adapter/http/dto"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"
	"virtual-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles destination account verification.
type AccountHandler struct {
	resolver ports.AccountResolver
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(resolver ports.AccountResolver) *AccountHandler {
	return &AccountHandler{resolver: resolver}
}

// Verify handles POST /api/v1/accounts/verify.
func (h *AccountHandler) Verify(c *gin.Context) {
	var req dto.VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	resolution, err := h.resolver.ResolveAccount(c.Request.Context(), req.BankName, req.AccountNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.VerifyAccountResponse{
		AccountName:   resolution.AccountName,
		BankName:      resolution.BankName,
		AccountNumber: req.AccountNumber,
	})
}

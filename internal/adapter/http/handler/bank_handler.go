package handler

import (
	"virtual-payment-gateway/internal/adapter/http/dto"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"
	"virtual-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// BankHandler handles bank directory endpoints.
type BankHandler struct {
	directory ports.BankDirectory
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(directory ports.BankDirectory) *BankHandler {
	return &BankHandler{directory: directory}
}

// Upsert handles POST /api/v1/banks.
func (h *BankHandler) Upsert(c *gin.Context) {
	var req dto.UpsertBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	bank, err := h.directory.Upsert(c.Request.Context(), req.Name, req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BankResponse{
		ID:   bank.ID.String(),
		Name: bank.Name,
		Code: bank.Code,
	})
}

// Sync handles POST /api/v1/banks/sync, pulling the provider's directory.
func (h *BankHandler) Sync(c *gin.Context) {
	count, err := h.directory.Sync(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BankSyncResponse{BanksStored: count})
}

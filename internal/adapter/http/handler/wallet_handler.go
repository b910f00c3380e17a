package handler

import (
	"virtual-payment-gateway/internal/adapter/http/dto"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"
	"virtual-payment-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet balance, lifecycle, and inflow endpoints.
type WalletHandler struct {
	ledger    ports.WalletLedger
	lifecycle ports.WalletLifecycle
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.WalletLedger, lifecycle ports.WalletLifecycle) *WalletHandler {
	return &WalletHandler{ledger: ledger, lifecycle: lifecycle}
}

// GetBalance handles GET /api/v1/wallets/balance. An optional wallet_id
// query selects a specific wallet; otherwise the first wallet is used.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	var walletID *uuid.UUID
	if raw := c.Query("wallet_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("wallet_id must be a valid UUID"))
			return
		}
		walletID = &id
	}

	wallet, err := h.ledger.GetBalance(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromWallet(wallet))
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.lifecycle.CreateWallet(c.Request.Context(), req.Name, req.BVN, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromWallet(wallet))
}

// Delete handles DELETE /api/v1/wallets/:id.
func (h *WalletHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet id must be a valid UUID"))
		return
	}

	if err := h.lifecycle.DeleteWallet(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OKMessage(c, "Wallet deleted", nil)
}

// Inflow handles POST /api/v1/wallets/inflow, crediting funds received on
// the wallet's backing account.
func (h *WalletHandler) Inflow(c *gin.Context) {
	var req dto.InflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		response.Error(c, apperror.Validation("wallet_id must be a valid UUID"))
		return
	}

	newBalance, err := h.ledger.Credit(c.Request.Context(), walletID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.InflowResponse{
		WalletID:   req.WalletID,
		NewBalance: newBalance,
	})
}

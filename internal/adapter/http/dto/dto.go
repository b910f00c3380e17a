package dto

import (
	"virtual-payment-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// TokenRequest is the request body for operator token issuance.
type TokenRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
	Secret    string `json:"secret" binding:"required"`
}

// TokenResponse is the response body for successful token issuance.
type TokenResponse struct {
	Token  string   `json:"token"`
	Expiry int64    `json:"expiry"` // Unix timestamp
	Roles  []string `json:"roles"`
}

// VerifyAccountRequest is the request body for destination account lookup.
type VerifyAccountRequest struct {
	BankName      string `json:"bank_name" binding:"required,min=2,max=100"`
	AccountNumber string `json:"account_number" binding:"required,account_number"`
}

// VerifyAccountResponse carries the resolved account holder.
type VerifyAccountResponse struct {
	AccountName   string `json:"account_name"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
}

// PaymentRequest is the request body for making a payment.
type PaymentRequest struct {
	WalletID           *string         `json:"wallet_id,omitempty"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	DestinationBank    string          `json:"destination_bank" binding:"required,min=2,max=100"`
	DestinationAccount string          `json:"destination_account" binding:"required"`
	Narration          string          `json:"narration,omitempty"`
	Pin                string          `json:"pin" binding:"required"`
}

// PaymentResponse is the response body for a completed payment.
type PaymentResponse struct {
	Message    string              `json:"message"`
	Reference  string              `json:"transaction_reference"`
	Status     string              `json:"status"`
	NewBalance decimal.Decimal     `json:"new_balance"`
	WalletUsed string              `json:"wallet_used"`
	Transfer   TransactionResponse `json:"transaction"`
}

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	Name        string `json:"name" binding:"required,wallet_name"`
	BVN         string `json:"bvn" binding:"required,len=11,numeric"`
	Description string `json:"description,omitempty" binding:"max=200"`
}

// WalletResponse is the serialized wallet view.
type WalletResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	AccountNumber string          `json:"account_number"`
	BankName      string          `json:"bank_name,omitempty"`
	BankCode      string          `json:"bank_code,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// InflowRequest is the request body for the inflow webhook.
type InflowRequest struct {
	WalletID string          `json:"wallet_id" binding:"required,uuid"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// InflowResponse is the response body for a credited inflow.
type InflowResponse struct {
	WalletID   string          `json:"wallet_id"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// PinVerifyRequest is the request body for PIN verification.
type PinVerifyRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
	Pin      string `json:"pin" binding:"required"`
}

// PinChangeRequest is the request body for a PIN change.
type PinChangeRequest struct {
	WalletID   string `json:"wallet_id" binding:"required,uuid"`
	CurrentPin string `json:"current_pin" binding:"required"`
	NewPin     string `json:"new_pin" binding:"required"`
}

// TransactionResponse is the serialized transaction record view.
type TransactionResponse struct {
	ID                     string          `json:"id"`
	Reference              string          `json:"transaction_reference"`
	WalletID               string          `json:"wallet_id"`
	Amount                 decimal.Decimal `json:"amount"`
	DestinationBank        string          `json:"destination_bank"`
	DestinationAccount     string          `json:"destination_account_number"`
	DestinationAccountName string          `json:"destination_account_name"`
	SourceAccount          string          `json:"source_account_number"`
	Narration              string          `json:"narration"`
	Status                 string          `json:"status"`
	CreatedAt              string          `json:"created_at"`
	UpdatedAt              string          `json:"updated_at"`
}

// TransactionListResponse wraps a wallet's paginated history.
type TransactionListResponse struct {
	Items  []TransactionResponse `json:"items"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// BankSyncResponse reports the outcome of a directory sync.
type BankSyncResponse struct {
	BanksStored int `json:"banks_stored"`
}

// UpsertBankRequest is the request body for a manual directory entry.
type UpsertBankRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Code string `json:"code" binding:"required,min=3,max=10"`
}

// BankResponse is the serialized bank view.
type BankResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// FromTransaction converts a domain record to its wire view.
func FromTransaction(tr *domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		ID:                     tr.ID.String(),
		Reference:              tr.Reference,
		WalletID:               tr.WalletID.String(),
		Amount:                 tr.Amount,
		DestinationBank:        tr.DestinationBank,
		DestinationAccount:     tr.DestinationAccountNumber,
		DestinationAccountName: tr.DestinationAccountName,
		SourceAccount:          tr.SourceAccountNumber,
		Narration:              tr.Narration,
		Status:                 string(tr.Status),
		CreatedAt:              tr.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:              tr.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromWallet converts a domain wallet to its wire view.
func FromWallet(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:            w.ID.String(),
		Name:          w.Name,
		Balance:       w.Balance,
		Currency:      w.Currency,
		AccountNumber: w.AccountNumber,
		BankName:      w.BankName,
		BankCode:      w.BankCode,
		CreatedAt:     w.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

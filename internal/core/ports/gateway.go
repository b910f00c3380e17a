package ports

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockgen -source=gateway.go -destination=mocks/gateway_mock.go -package=mocks

// GatewayErrorKind classifies a failed gateway call for retry decisions.
type GatewayErrorKind int

const (
	// GatewayErrTimeout is a request timeout (retryable).
	GatewayErrTimeout GatewayErrorKind = iota
	// GatewayErrConnection is a connection-level fault (retryable).
	GatewayErrConnection
	// GatewayErrStatus is a non-200 HTTP response. Retryable only for 502.
	GatewayErrStatus
	// GatewayErrBadBody is a 200 response whose body could not be parsed.
	GatewayErrBadBody
)

// GatewayError is the discriminated failure of one gateway call.
type GatewayError struct {
	Kind    GatewayErrorKind
	Status  int    // HTTP status for GatewayErrStatus
	Message string // provider's error message when it supplied one
	Err     error
}

func (e *GatewayError) Error() string {
	switch e.Kind {
	case GatewayErrTimeout:
		return "gateway request timed out"
	case GatewayErrConnection:
		return fmt.Sprintf("gateway connection error: %v", e.Err)
	case GatewayErrStatus:
		if e.Message != "" {
			return fmt.Sprintf("gateway returned status %d: %s", e.Status, e.Message)
		}
		return fmt.Sprintf("gateway returned status %d", e.Status)
	default:
		return fmt.Sprintf("gateway response unusable: %v", e.Err)
	}
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Retryable reports whether the failed call may be reattempted under the
// bounded retry policy: timeouts, connection faults, and HTTP 502 only.
func (e *GatewayError) Retryable() bool {
	switch e.Kind {
	case GatewayErrTimeout, GatewayErrConnection:
		return true
	case GatewayErrStatus:
		return e.Status == 502
	}
	return false
}

// BankEntry is one bank in the gateway's directory listing.
type BankEntry struct {
	Name  string `json:"bankName"`
	Code  string `json:"bankCode"`
	IsNew bool   `json:"isNew"`
}

// AccountResolution is the gateway's answer for a destination account lookup.
type AccountResolution struct {
	AccountName string `json:"accountName"`
	BankName    string `json:"bankName"`
}

// TransferRequest is the outbound transfer payload.
type TransferRequest struct {
	DestinationBankCode      string `json:"destinationBankCode"`
	DestinationAccountNumber string `json:"destinationAccountNumber"`
	Amount                   string `json:"amount"`
	SourceAccountNumber      string `json:"sourceAccountNumber"`
	Narration                string `json:"narration"`
}

// TransferResponse is the parsed success payload of a transfer call.
type TransferResponse struct {
	Reference                string          `json:"transactionReference"`
	Amount                   string          `json:"amount"`
	DestinationBankName      string          `json:"destinationBankName"`
	DestinationAccountNumber string          `json:"destinationAccountNumber"`
	DestinationAccountName   string          `json:"destinationAccountName"`
	SourceAccountNumber      string          `json:"sourceAccountNumber"`
	Narration                string          `json:"narration"`
	Raw                      json.RawMessage `json:"-"`
}

// TransferStatusResponse is the parsed payload of a status-check call.
type TransferStatusResponse struct {
	Status string          `json:"status"`
	Raw    json.RawMessage `json:"-"`
}

// ReservedAccountRequest creates a wallet's backing account at the gateway.
type ReservedAccountRequest struct {
	ExRef       string `json:"exRef"`
	Name        string `json:"name"`
	BVN         string `json:"bvn"`
	Description string `json:"description"`
	AccountType string `json:"accountType"`
}

// ReservedAccountResponse is the gateway's account reservation payload.
type ReservedAccountResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	Description   string `json:"description"`
	BVN           string `json:"bvn"`
	AccountNumber string `json:"accountNumber"`
	ExchangeRef   string `json:"exchangeRef"`
	BusinessID    string `json:"businessId"`
	AccountType   string `json:"accountType"`
	BankCode      string `json:"bankCode"`
	BankName      string `json:"bankName"`
}

// GatewayClient talks to the settlement gateway. Every call authenticates
// with the bearer token resolved immediately before the call; each method
// performs exactly one HTTP request; retry policy belongs to callers.
type GatewayClient interface {
	ListBanks(ctx context.Context, token string) ([]BankEntry, error)
	ResolveAccount(ctx context.Context, token, bankCode, accountNumber string) (*AccountResolution, error)
	Transfer(ctx context.Context, token string, req TransferRequest) (*TransferResponse, error)
	TransferStatus(ctx context.Context, token, reference string) (*TransferStatusResponse, error)
	CreateReservedAccount(ctx context.Context, token string, req ReservedAccountRequest) (*ReservedAccountResponse, error)
}

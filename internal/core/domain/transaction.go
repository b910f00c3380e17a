package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a transfer record.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "Pending"
	StatusProcessing TransactionStatus = "Processing"
	StatusSuccessful TransactionStatus = "Successful"
	StatusFailed     TransactionStatus = "Failed"
	StatusCancelled  TransactionStatus = "Cancelled"
)

// statusTransitions is the monotonic transition table. Terminal states have
// no outgoing edges; corrections go through an explicit force-update path.
var statusTransitions = map[TransactionStatus][]TransactionStatus{
	StatusPending:    {StatusProcessing, StatusSuccessful, StatusFailed, StatusCancelled},
	StatusProcessing: {StatusSuccessful, StatusFailed, StatusCancelled},
}

// CanTransition reports whether moving from s to next is a forward move.
// Setting the same status again is allowed (reconciliation is re-runnable).
func (s TransactionStatus) CanTransition(next TransactionStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true for states reconciliation can no longer advance.
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case StatusSuccessful, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// MapGatewayStatus converts the gateway's status vocabulary onto the
// internal enum. Unrecognized values default to Pending.
func MapGatewayStatus(raw string) TransactionStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SUCCESSFUL", "SUCCESS":
		return StatusSuccessful
	case "PENDING":
		return StatusPending
	case "PROCESSING":
		return StatusProcessing
	case "FAILED":
		return StatusFailed
	case "CANCELLED":
		return StatusCancelled
	default:
		return StatusPending
	}
}

// TransactionRecord is the idempotent ledger entry for one transfer
// attempt, keyed by the gateway-assigned external reference.
type TransactionRecord struct {
	ID                       uuid.UUID         `json:"id"`
	Reference                string            `json:"transaction_reference"`
	WalletID                 uuid.UUID         `json:"wallet_id"`
	Amount                   decimal.Decimal   `json:"amount"`
	DestinationBank          string            `json:"destination_bank"`
	DestinationAccountNumber string            `json:"destination_account_number"`
	DestinationAccountName   string            `json:"destination_account_name"`
	SourceAccountNumber      string            `json:"source_account_number"`
	Narration                string            `json:"narration"`
	Status                   TransactionStatus `json:"status"`
	RawResponse              json.RawMessage   `json:"api_response,omitempty"`
	CreatedAt                time.Time         `json:"created_at"`
	UpdatedAt                time.Time         `json:"updated_at"`
}

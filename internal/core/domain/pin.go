package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentPin stores a wallet's transaction PIN, exactly one per wallet.
// The secret is always AES-256-GCM encrypted at rest; plaintext storage
// is not supported.
type PaymentPin struct {
	ID           uuid.UUID `json:"id"`
	WalletID     uuid.UUID `json:"wallet_id"`
	EncryptedPin string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

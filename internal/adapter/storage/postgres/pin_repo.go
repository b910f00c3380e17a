package postgres

import (
	"context"
	"errors"
	"fmt"

	"virtual-payment-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PinRepo implements ports.PinRepository.
type PinRepo struct {
	pool Pool
}

// NewPinRepo creates a new PinRepo.
func NewPinRepo(pool Pool) *PinRepo {
	return &PinRepo{pool: pool}
}

// Upsert creates or replaces the payment PIN for a wallet. A wallet holds
// at most one PIN row.
func (r *PinRepo) Upsert(ctx context.Context, pin *domain.PaymentPin) error {
	query := `INSERT INTO payment_pins (id, wallet_id, encrypted_pin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (wallet_id) DO UPDATE SET encrypted_pin = EXCLUDED.encrypted_pin, updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, pin.ID, pin.WalletID, pin.EncryptedPin, pin.CreatedAt, pin.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert payment pin: %w", err)
	}
	return nil
}

// GetByWalletID fetches a wallet's PIN row, nil when none is configured.
func (r *PinRepo) GetByWalletID(ctx context.Context, walletID uuid.UUID) (*domain.PaymentPin, error) {
	query := `SELECT id, wallet_id, encrypted_pin, created_at, updated_at
		FROM payment_pins WHERE wallet_id = $1`

	p := &domain.PaymentPin{}
	err := r.pool.QueryRow(ctx, query, walletID).Scan(
		&p.ID, &p.WalletID, &p.EncryptedPin, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment pin: %w", err)
	}
	return p, nil
}

// DeleteByWalletID removes a wallet's PIN row if present.
func (r *PinRepo) DeleteByWalletID(ctx context.Context, walletID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM payment_pins WHERE wallet_id = $1`, walletID)
	if err != nil {
		return fmt.Errorf("delete payment pin: %w", err)
	}
	return nil
}

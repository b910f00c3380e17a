package postgres

import (
	"context"
	"errors"
	"fmt"

	"virtual-payment-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const walletColumns = `id, name, balance, currency, account_number, required_role, bvn,
		external_id, exchange_ref, business_id, account_type, bank_code, bank_name, description,
		created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.Name, &w.Balance, &w.Currency, &w.AccountNumber, &w.RequiredRole, &w.BVN,
		&w.ExternalID, &w.ExchangeRef, &w.BusinessID, &w.AccountType, &w.BankCode, &w.BankName, &w.Description,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Create inserts a new wallet.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, name, balance, currency, account_number, required_role, bvn,
		external_id, exchange_ref, business_id, account_type, bank_code, bank_name, description,
		created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Name, w.Balance, w.Currency, w.AccountNumber, w.RequiredRole, w.BVN,
		w.ExternalID, w.ExchangeRef, w.BusinessID, w.AccountType, w.BankCode, w.BankName, w.Description,
		w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID (without locking).
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetFirst returns the oldest wallet, used when a caller names none.
func (r *WalletRepo) GetFirst(ctx context.Context) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets ORDER BY created_at LIMIT 1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get first wallet: %w", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a wallet by ID with pessimistic locking.
// Must be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// UpdateBalance writes a wallet's balance within a transaction. The caller
// must hold the row lock acquired by GetByIDForUpdate.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	query := `UPDATE wallets SET balance = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, walletID)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

// UpdateReservation persists the fields assigned by the gateway's account
// reservation response.
func (r *WalletRepo) UpdateReservation(ctx context.Context, w *domain.Wallet) error {
	query := `UPDATE wallets SET name = $1, currency = $2, account_number = $3,
		external_id = $4, exchange_ref = $5, business_id = $6, account_type = $7,
		bank_code = $8, bank_name = $9, description = $10, updated_at = NOW()
		WHERE id = $11`

	tag, err := r.pool.Exec(ctx, query,
		w.Name, w.Currency, w.AccountNumber,
		w.ExternalID, w.ExchangeRef, w.BusinessID, w.AccountType,
		w.BankCode, w.BankName, w.Description, w.ID,
	)
	if err != nil {
		return fmt.Errorf("update wallet reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", w.ID)
	}
	return nil
}

// Delete removes a wallet. Transaction records keep their wallet reference
// for audit; only the PIN row is cascaded (by the lifecycle service).
func (r *WalletRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wallets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", id)
	}
	return nil
}

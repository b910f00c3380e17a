package ports

import (
	"context"

	"virtual-payment-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// BankRepository defines persistence operations for the bank directory.
type BankRepository interface {
	Create(ctx context.Context, bank *domain.Bank) error
	Update(ctx context.Context, bank *domain.Bank) error
	GetByName(ctx context.Context, name string) (*domain.Bank, error)
	GetByCode(ctx context.Context, code string) (*domain.Bank, error)
	List(ctx context.Context) ([]domain.Bank, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside transaction blocks so the wallet row
// stays locked between the sufficiency re-check and the balance write.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetFirst(ctx context.Context) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error
	UpdateReservation(ctx context.Context, wallet *domain.Wallet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PinRepository defines persistence for payment PINs (one per wallet).
type PinRepository interface {
	Upsert(ctx context.Context, pin *domain.PaymentPin) error
	GetByWalletID(ctx context.Context, walletID uuid.UUID) (*domain.PaymentPin, error)
	DeleteByWalletID(ctx context.Context, walletID uuid.UUID) error
}

// TransactionRepository defines persistence for transfer records.
type TransactionRepository interface {
	// CreateOrGet inserts the record unless one with the same external
	// reference exists, in which case the existing record is returned.
	// The returned bool is true when the record already existed.
	CreateOrGet(ctx context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, bool, error)
	// CreateOrGetTx is CreateOrGet inside a caller-owned transaction, used
	// to persist the record atomically with the balance debit.
	CreateOrGetTx(ctx context.Context, tx pgx.Tx, record *domain.TransactionRecord) (*domain.TransactionRecord, bool, error)
	GetByReference(ctx context.Context, reference string) (*domain.TransactionRecord, error)
	UpdateStatus(ctx context.Context, reference string, status domain.TransactionStatus, raw []byte) error
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.TransactionRecord, error)
}

// SettingsRepository is the persisted settings store, the last credential
// source in the resolution chain.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Set(ctx context.Context, key, value string) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

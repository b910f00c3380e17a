package postgres

import (
	"context"
	"errors"
	"fmt"

	"virtual-payment-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, reference, wallet_id, amount, destination_bank,
		destination_account_number, destination_account_name, source_account_number,
		narration, status, raw_response, created_at, updated_at`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

func scanTransaction(row pgx.Row) (*domain.TransactionRecord, error) {
	t := &domain.TransactionRecord{}
	err := row.Scan(
		&t.ID, &t.Reference, &t.WalletID, &t.Amount, &t.DestinationBank,
		&t.DestinationAccountNumber, &t.DestinationAccountName, &t.SourceAccountNumber,
		&t.Narration, &t.Status, &t.RawResponse, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateOrGet inserts a transaction record keyed by its external reference.
// If a record with the same reference already exists the stored record is
// returned and existed is true. The reference unique constraint makes
// concurrent inserts safe.
func (r *TransactionRepo) CreateOrGet(ctx context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, bool, error) {
	insert := `INSERT INTO transactions (id, reference, wallet_id, amount, destination_bank,
		destination_account_number, destination_account_name, source_account_number,
		narration, status, raw_response, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (reference) DO NOTHING`

	tag, err := r.pool.Exec(ctx, insert,
		record.ID, record.Reference, record.WalletID, record.Amount, record.DestinationBank,
		record.DestinationAccountNumber, record.DestinationAccountName, record.SourceAccountNumber,
		record.Narration, record.Status, record.RawResponse, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("insert transaction: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return record, false, nil
	}

	existing, err := r.GetByReference(ctx, record.Reference)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("transaction vanished after conflict: %s", record.Reference)
	}
	return existing, true, nil
}

// CreateOrGetTx is CreateOrGet within a caller-owned transaction, used when
// the record must land atomically with the wallet debit.
func (r *TransactionRepo) CreateOrGetTx(ctx context.Context, tx pgx.Tx, record *domain.TransactionRecord) (*domain.TransactionRecord, bool, error) {
	insert := `INSERT INTO transactions (id, reference, wallet_id, amount, destination_bank,
		destination_account_number, destination_account_name, source_account_number,
		narration, status, raw_response, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (reference) DO NOTHING`

	tag, err := tx.Exec(ctx, insert,
		record.ID, record.Reference, record.WalletID, record.Amount, record.DestinationBank,
		record.DestinationAccountNumber, record.DestinationAccountName, record.SourceAccountNumber,
		record.Narration, record.Status, record.RawResponse, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("insert transaction: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return record, false, nil
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1`
	existing, err := scanTransaction(tx.QueryRow(ctx, query, record.Reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, fmt.Errorf("transaction vanished after conflict: %s", record.Reference)
		}
		return nil, false, fmt.Errorf("get transaction by reference: %w", err)
	}
	return existing, true, nil
}

// GetByReference fetches a transaction by its external reference, nil when absent.
func (r *TransactionRepo) GetByReference(ctx context.Context, reference string) (*domain.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by reference: %w", err)
	}
	return t, nil
}

// UpdateStatus writes a transaction's status and raw provider response.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, reference string, status domain.TransactionStatus, rawResponse []byte) error {
	query := `UPDATE transactions SET status = $1, raw_response = $2, updated_at = NOW()
		WHERE reference = $3`

	tag, err := r.pool.Exec(ctx, query, status, rawResponse, reference)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", reference)
	}
	return nil
}

// ListByWallet returns a wallet's transactions, newest first.
func (r *TransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		records = append(records, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return records, nil
}

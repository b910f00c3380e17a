package postgres

import (
	"context"
	"errors"
	"fmt"

	"virtual-payment-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// BankRepo implements ports.BankRepository.
type BankRepo struct {
	pool Pool
}

// NewBankRepo creates a new BankRepo.
func NewBankRepo(pool Pool) *BankRepo {
	return &BankRepo{pool: pool}
}

// Create inserts a new bank into the directory.
func (r *BankRepo) Create(ctx context.Context, b *domain.Bank) error {
	query := `INSERT INTO banks (id, name, code, is_new, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, b.ID, b.Name, b.Code, b.IsNew, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert bank: %w", err)
	}
	return nil
}

// Update rewrites the mutable columns of an existing bank row.
func (r *BankRepo) Update(ctx context.Context, b *domain.Bank) error {
	query := `UPDATE banks SET code = $2, is_new = $3, updated_at = $4 WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, b.ID, b.Code, b.IsNew, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update bank: %w", err)
	}
	return nil
}

// GetByName fetches a bank by its display name. Returns nil, nil when absent.
func (r *BankRepo) GetByName(ctx context.Context, name string) (*domain.Bank, error) {
	query := `SELECT id, name, code, is_new, created_at, updated_at FROM banks WHERE name = $1`

	b := &domain.Bank{}
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&b.ID, &b.Name, &b.Code, &b.IsNew, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank by name: %w", err)
	}
	return b, nil
}

// GetByCode fetches a bank by its settlement code. Returns nil, nil when absent.
func (r *BankRepo) GetByCode(ctx context.Context, code string) (*domain.Bank, error) {
	query := `SELECT id, name, code, is_new, created_at, updated_at FROM banks WHERE code = $1`

	b := &domain.Bank{}
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&b.ID, &b.Name, &b.Code, &b.IsNew, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank by code: %w", err)
	}
	return b, nil
}

// List returns every bank in the directory ordered by name.
func (r *BankRepo) List(ctx context.Context) ([]domain.Bank, error) {
	query := `SELECT id, name, code, is_new, created_at, updated_at FROM banks ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	defer rows.Close()

	var banks []domain.Bank
	for rows.Next() {
		var b domain.Bank
		if err := rows.Scan(&b.ID, &b.Name, &b.Code, &b.IsNew, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		banks = append(banks, b)
	}
	return banks, rows.Err()
}

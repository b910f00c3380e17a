package postgres

import (
	"context"
	"errors"
	"fmt"

	"virtual-payment-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SettingsRepo implements ports.SettingsRepository over a simple key/value table.
type SettingsRepo struct {
	pool Pool
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(pool Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Get fetches a setting by key, nil when absent.
func (r *SettingsRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	query := `SELECT key, value, updated_at FROM settings WHERE key = $1`

	s := &domain.Setting{}
	err := r.pool.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return s, nil
}

// Set creates or replaces a setting.
func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bank maps a bank's display name to its gateway settlement code.
type Bank struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	IsNew     bool      `json:"is_new"` // flag carried through from directory sync
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeBankName trims surrounding whitespace from a display name.
func NormalizeBankName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeBankCode trims and upper-cases a settlement code.
func NormalizeBankCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

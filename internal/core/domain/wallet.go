package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is the internal ledger entity holding a spendable balance tied to
// a reserved bank account. Balance is mutated only through the wallet
// ledger's debit/credit operations, never written directly.
type Wallet struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	AccountNumber string          `json:"account_number"`
	RequiredRole  string          `json:"required_role,omitempty"` // empty = no role restriction
	BVN           string          `json:"-"`

	// Fields assigned by the gateway's account reservation response.
	ExternalID  string `json:"external_id,omitempty"`
	ExchangeRef string `json:"exchange_ref,omitempty"`
	BusinessID  string `json:"business_id,omitempty"`
	AccountType string `json:"account_type,omitempty"`
	BankCode    string `json:"bank_code,omitempty"`
	BankName    string `json:"bank_name,omitempty"`
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsReserved reports whether the gateway has already assigned an account.
func (w *Wallet) IsReserved() bool {
	return w.ExternalID != ""
}

// FormatMoney renders an amount for user-facing messages, e.g. "NGN 5,000.00".
func FormatMoney(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := fmt.Sprintf("%s %s.%s", currency, b.String(), frac)
	if neg {
		out = fmt.Sprintf("%s -%s.%s", currency, b.String(), frac)
	}
	return out
}

// ValidateWalletName checks the naming rules applied before account reservation.
func ValidateWalletName(name string) []string {
	var errs []string
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		errs = append(errs, "Wallet name is required")
	case len(trimmed) < 2:
		errs = append(errs, "Wallet name must be at least 2 characters")
	case len(trimmed) > 50:
		errs = append(errs, "Wallet name must be less than 50 characters")
	default:
		stripped := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(trimmed)
		for _, r := range stripped {
			if !isAlnum(r) {
				errs = append(errs, "Wallet name should contain only letters, numbers, spaces, hyphens, and underscores")
				break
			}
		}
	}
	return errs
}

// ValidateBVN checks that a bank verification number is exactly 11 digits.
func ValidateBVN(bvn string) []string {
	var errs []string
	trimmed := strings.TrimSpace(bvn)
	if trimmed == "" {
		return append(errs, "BVN is required")
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return append(errs, "BVN must contain only digits")
		}
	}
	if len(trimmed) != 11 {
		errs = append(errs, fmt.Sprintf("BVN must be exactly 11 digits (provided: %d)", len(trimmed)))
	}
	return errs
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

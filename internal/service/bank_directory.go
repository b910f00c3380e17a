package service

import (
	"context"
	"fmt"
	"time"

	"virtual-payment-gateway/internal/core/domain"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BankDirectoryImpl implements ports.BankDirectory. Bank names are unique
// after normalization, and a settlement code belongs to at most one bank.
type BankDirectoryImpl struct {
	bankRepo ports.BankRepository
	gateway  ports.GatewayClient
	creds    ports.CredentialResolver
	log      zerolog.Logger
}

// NewBankDirectory creates a new BankDirectoryImpl.
func NewBankDirectory(bankRepo ports.BankRepository, gateway ports.GatewayClient, creds ports.CredentialResolver, log zerolog.Logger) *BankDirectoryImpl {
	return &BankDirectoryImpl{
		bankRepo: bankRepo,
		gateway:  gateway,
		creds:    creds,
		log:      log.With().Str("component", "bank_directory").Logger(),
	}
}

// Upsert registers or updates a bank entry. A code already assigned to a
// different bank is rejected, naming the current owner.
func (s *BankDirectoryImpl) Upsert(ctx context.Context, name, code string) (*domain.Bank, error) {
	name = domain.NormalizeBankName(name)
	code = domain.NormalizeBankCode(code)
	if name == "" || code == "" {
		return nil, apperror.Validation("bank name and code are required")
	}

	owner, err := s.bankRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check bank code: %w", err))
	}
	if owner != nil && owner.Name != name {
		return nil, apperror.ErrDuplicateCode(code, owner.Name)
	}
	if owner != nil {
		return owner, nil
	}

	existing, err := s.bankRepo.GetByName(ctx, name)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check bank name: %w", err))
	}
	if existing != nil {
		existing.Code = code
		existing.UpdatedAt = time.Now().UTC()
		if err := s.bankRepo.Update(ctx, existing); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update bank: %w", err))
		}
		s.log.Info().Str("bank", name).Str("code", code).Msg("Bank code corrected")
		return existing, nil
	}

	now := time.Now().UTC()
	bank := &domain.Bank{
		ID:        uuid.New(),
		Name:      name,
		Code:      code,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.bankRepo.Create(ctx, bank); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create bank: %w", err))
	}

	s.log.Info().Str("bank", name).Str("code", code).Msg("Bank registered")
	return bank, nil
}

// LookupCode maps a bank display name to its settlement code.
func (s *BankDirectoryImpl) LookupCode(ctx context.Context, name string) (string, error) {
	name = domain.NormalizeBankName(name)
	bank, err := s.bankRepo.GetByName(ctx, name)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("get bank: %w", err))
	}
	if bank == nil || bank.Code == "" {
		return "", apperror.ErrBankCodeUnresolved(name)
	}
	return bank.Code, nil
}

// Sync pulls the gateway's bank listing into the local directory and returns
// the number of entries stored. Entries whose code collides with another
// bank are skipped and logged rather than failing the whole sync.
func (s *BankDirectoryImpl) Sync(ctx context.Context) (int, error) {
	token, err := s.creds.ResolveToken(ctx)
	if err != nil {
		return 0, err
	}

	entries, err := s.gateway.ListBanks(ctx, token)
	if err != nil {
		return 0, mapGatewayError(err)
	}

	stored := 0
	for _, entry := range entries {
		if _, err := s.Upsert(ctx, entry.Name, entry.Code); err != nil {
			s.log.Warn().Str("bank", entry.Name).Str("code", entry.Code).Err(err).Msg("Skipping bank during sync")
			continue
		}
		stored++
	}

	s.log.Info().Int("received", len(entries)).Int("stored", stored).Msg("Bank directory synced")
	return stored, nil
}

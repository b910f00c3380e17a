package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"virtual-payment-gateway/internal/core/domain"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PinServiceImpl implements ports.PinAuthorizer. Stored PINs are always
// AES-256-GCM encrypted; comparison trims surrounding whitespace on both
// sides so a copy-pasted PIN with padding still authorizes.
type PinServiceImpl struct {
	pinRepo    ports.PinRepository
	walletRepo ports.WalletRepository
	encSvc     ports.EncryptionService
	log        zerolog.Logger
}

// NewPinService creates a new PinServiceImpl.
func NewPinService(pinRepo ports.PinRepository, walletRepo ports.WalletRepository, encSvc ports.EncryptionService, log zerolog.Logger) *PinServiceImpl {
	return &PinServiceImpl{
		pinRepo:    pinRepo,
		walletRepo: walletRepo,
		encSvc:     encSvc,
		log:        log.With().Str("component", "pin_service").Logger(),
	}
}

func validatePinFormat(pin string) error {
	pin = strings.TrimSpace(pin)
	if len(pin) < 4 || len(pin) > 6 || !isDigits(pin) {
		return apperror.Validation("PIN must be 4 to 6 digits")
	}
	return nil
}

func hasRole(roles []string, required string) bool {
	for _, r := range roles {
		if r == required {
			return true
		}
	}
	return false
}

// Verify checks a PIN attempt against the wallet's stored PIN. When the
// wallet names a required role the caller must hold it.
func (s *PinServiceImpl) Verify(ctx context.Context, walletID uuid.UUID, attempt string, callerRoles []string) error {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrNotFound("wallet")
	}

	if wallet.RequiredRole != "" && !hasRole(callerRoles, wallet.RequiredRole) {
		s.log.Warn().
			Str("wallet", wallet.Name).
			Str("required_role", wallet.RequiredRole).
			Msg("Caller lacks wallet access role")
		return apperror.ErrPermissionDenied(wallet.RequiredRole)
	}

	pin, err := s.pinRepo.GetByWalletID(ctx, walletID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get pin: %w", err))
	}
	if pin == nil {
		return apperror.ErrNoPinConfigured()
	}

	stored, err := s.encSvc.Decrypt(pin.EncryptedPin)
	if err != nil {
		s.log.Error().Str("wallet", wallet.Name).Err(err).Msg("Stored PIN failed to decrypt")
		return apperror.ErrPinDecryption(err)
	}

	stored = strings.TrimSpace(stored)
	attempt = strings.TrimSpace(attempt)
	if subtle.ConstantTimeCompare([]byte(stored), []byte(attempt)) != 1 {
		return apperror.ErrIncorrectPin()
	}
	return nil
}

// SetPin encrypts and stores a wallet's PIN, replacing any existing one.
func (s *PinServiceImpl) SetPin(ctx context.Context, walletID uuid.UUID, pin string) error {
	if err := validatePinFormat(pin); err != nil {
		return err
	}

	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrNotFound("wallet")
	}

	encrypted, err := s.encSvc.Encrypt(strings.TrimSpace(pin))
	if err != nil {
		return apperror.ErrEncryptionFailure(err)
	}

	now := time.Now().UTC()
	if err := s.pinRepo.Upsert(ctx, &domain.PaymentPin{
		ID:           uuid.New(),
		WalletID:     walletID,
		EncryptedPin: encrypted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return apperror.InternalError(fmt.Errorf("store pin: %w", err))
	}

	s.log.Info().Str("wallet", wallet.Name).Msg("Wallet PIN updated")
	return nil
}

// VerifyAndUpdate rotates a wallet's PIN after verifying the current one.
func (s *PinServiceImpl) VerifyAndUpdate(ctx context.Context, walletID uuid.UUID, currentPin, newPin string, callerRoles []string) error {
	if err := s.Verify(ctx, walletID, currentPin, callerRoles); err != nil {
		return err
	}
	return s.SetPin(ctx, walletID, newPin)
}

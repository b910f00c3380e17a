package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountResolver. A lookup never
// mutates wallet state; it only answers who holds the destination account.
type AccountServiceImpl struct {
	directory ports.BankDirectory
	gateway   ports.GatewayClient
	creds     ports.CredentialResolver
	realtime  ports.RealtimePublisher
	log       zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(directory ports.BankDirectory, gateway ports.GatewayClient, creds ports.CredentialResolver, realtime ports.RealtimePublisher, log zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{
		directory: directory,
		gateway:   gateway,
		creds:     creds,
		realtime:  realtime,
		log:       log.With().Str("component", "account_service").Logger(),
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ResolveAccount verifies the destination account against the named bank.
// The account number must be at least 10 digits before any network call.
func (s *AccountServiceImpl) ResolveAccount(ctx context.Context, bankName, accountNumber string) (*ports.AccountResolution, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if len(accountNumber) < 10 || !isDigits(accountNumber) {
		return nil, apperror.ErrInvalidAccountNumber(accountNumber)
	}

	code, err := s.directory.LookupCode(ctx, bankName)
	if err != nil {
		return nil, err
	}

	token, err := s.creds.ResolveToken(ctx)
	if err != nil {
		return nil, err
	}

	resolution, err := s.gateway.ResolveAccount(ctx, token, code, accountNumber)
	if err != nil {
		var gwErr *ports.GatewayError
		if errors.As(err, &gwErr) && gwErr.Kind == ports.GatewayErrStatus {
			return nil, apperror.ErrResolutionFailed(gwErr.Status)
		}
		return nil, mapGatewayError(err)
	}

	resolution.AccountName = strings.TrimSpace(resolution.AccountName)
	resolution.BankName = strings.TrimSpace(resolution.BankName)
	if resolution.AccountName == "" {
		return nil, apperror.ErrEmptyAccountName()
	}

	s.log.Info().
		Str("bank", bankName).
		Str("account_number", accountNumber).
		Msg("Destination account resolved")

	payload, _ := json.Marshal(map[string]string{"account_name": resolution.AccountName})
	if err := s.realtime.Publish(ctx, ports.RealtimeEvent{
		Event:    "refresh_field",
		Entity:   "virtual_payment",
		EntityID: accountNumber,
		Field:    "destination_account_name",
		Data:     payload,
	}); err != nil {
		s.log.Warn().Err(err).Msg("Realtime publish failed")
	}

	return resolution, nil
}

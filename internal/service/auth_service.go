package service

import (
	"context"
	"fmt"
	"time"

	"virtual-payment-gateway/config"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService. A single configured
// operator identity holds the role set that gates PIN-protected wallets.
type AuthServiceImpl struct {
	cfg      config.AuthConfig
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(cfg config.AuthConfig, hashSvc ports.HashService, tokenSvc ports.TokenService, log zerolog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		cfg:      cfg,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		log:      log.With().Str("component", "auth_service").Logger(),
	}
}

// IssueToken exchanges operator credentials for a signed bearer token
// carrying the operator's roles.
func (s *AuthServiceImpl) IssueToken(ctx context.Context, accessKey, secret string) (string, time.Time, []string, error) {
	if accessKey != s.cfg.AccessKey {
		s.log.Warn().Str("access_key", accessKey).Msg("Unknown access key")
		return "", time.Time{}, nil, apperror.ErrInvalidCredentials()
	}

	ok, err := s.hashSvc.Verify(secret, s.cfg.SecretHash)
	if err != nil {
		return "", time.Time{}, nil, apperror.InternalError(fmt.Errorf("verify secret: %w", err))
	}
	if !ok {
		s.log.Warn().Str("access_key", accessKey).Msg("Secret mismatch")
		return "", time.Time{}, nil, apperror.ErrInvalidCredentials()
	}

	token, expiresAt, err := s.tokenSvc.Generate(accessKey, s.cfg.Roles)
	if err != nil {
		return "", time.Time{}, nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().Str("access_key", accessKey).Time("expires_at", expiresAt).Msg("Operator token issued")
	return token, expiresAt, s.cfg.Roles, nil
}

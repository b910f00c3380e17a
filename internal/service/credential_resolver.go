package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// EnvCredentialProvider resolves the gateway token from an environment variable.
type EnvCredentialProvider struct {
	envVar string
}

// NewEnvCredentialProvider creates a provider reading the named variable.
func NewEnvCredentialProvider(envVar string) *EnvCredentialProvider {
	return &EnvCredentialProvider{envVar: envVar}
}

func (p *EnvCredentialProvider) TryResolve(_ context.Context) (string, bool, error) {
	token := strings.TrimSpace(os.Getenv(p.envVar))
	return token, token != "", nil
}

func (p *EnvCredentialProvider) Name() string {
	return "env:" + p.envVar
}

// ConfigCredentialProvider resolves the token from static configuration.
type ConfigCredentialProvider struct {
	token string
}

// NewConfigCredentialProvider creates a provider over a configured token.
func NewConfigCredentialProvider(token string) *ConfigCredentialProvider {
	return &ConfigCredentialProvider{token: strings.TrimSpace(token)}
}

func (p *ConfigCredentialProvider) TryResolve(_ context.Context) (string, bool, error) {
	return p.token, p.token != "", nil
}

func (p *ConfigCredentialProvider) Name() string {
	return "config"
}

// SettingsCredentialProvider resolves the token from the persisted settings
// store, where it is held encrypted.
type SettingsCredentialProvider struct {
	settings ports.SettingsRepository
	encSvc   ports.EncryptionService
	key      string
}

// NewSettingsCredentialProvider creates a provider over the settings store.
func NewSettingsCredentialProvider(settings ports.SettingsRepository, encSvc ports.EncryptionService, key string) *SettingsCredentialProvider {
	return &SettingsCredentialProvider{settings: settings, encSvc: encSvc, key: key}
}

func (p *SettingsCredentialProvider) TryResolve(ctx context.Context) (string, bool, error) {
	setting, err := p.settings.Get(ctx, p.key)
	if err != nil {
		return "", false, fmt.Errorf("read setting %q: %w", p.key, err)
	}
	if setting == nil || setting.Value == "" {
		return "", false, nil
	}

	token, err := p.encSvc.Decrypt(setting.Value)
	if err != nil {
		return "", false, fmt.Errorf("decrypt setting %q: %w", p.key, err)
	}
	token = strings.TrimSpace(token)
	return token, token != "", nil
}

func (p *SettingsCredentialProvider) Name() string {
	return "settings:" + p.key
}

// ChainCredentialResolver implements ports.CredentialResolver by walking an
// ordered provider chain and returning the first non-empty token.
type ChainCredentialResolver struct {
	providers []ports.CredentialProvider
	log       zerolog.Logger
}

// NewChainCredentialResolver creates a resolver over the given providers, in
// priority order.
func NewChainCredentialResolver(log zerolog.Logger, providers ...ports.CredentialProvider) *ChainCredentialResolver {
	return &ChainCredentialResolver{
		providers: providers,
		log:       log.With().Str("component", "credential_resolver").Logger(),
	}
}

// ResolveToken walks the chain. Every gateway call resolves its token fresh;
// nothing is cached, so a rotated credential takes effect immediately.
func (r *ChainCredentialResolver) ResolveToken(ctx context.Context) (string, error) {
	for _, p := range r.providers {
		token, ok, err := p.TryResolve(ctx)
		if err != nil {
			return "", apperror.InternalError(fmt.Errorf("credential source %s: %w", p.Name(), err))
		}
		if ok {
			r.log.Debug().Str("source", p.Name()).Msg("Gateway credential resolved")
			return token, nil
		}
	}

	r.log.Error().Msg("No gateway credential available from any source")
	return "", apperror.ErrTokenNotFound()
}

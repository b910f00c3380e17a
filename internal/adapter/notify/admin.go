package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"virtual-payment-gateway/config"
	"virtual-payment-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient abstracts the underlying HTTP client for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AdminNotifier posts wallet lifecycle events to the administrative system.
// Delivery is best effort: failures are logged and never block the wallet flow.
type AdminNotifier struct {
	url        string
	secret     string
	siteName   string
	disabled   bool
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewAdminNotifier creates an admin notifier from config.
func NewAdminNotifier(cfg config.AdminConfig, log zerolog.Logger) *AdminNotifier {
	return &AdminNotifier{
		url:        cfg.NotifyURL,
		secret:     cfg.Secret,
		siteName:   cfg.SiteName,
		disabled:   cfg.Disabled,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With().Str("component", "admin_notifier").Logger(),
	}
}

// NewAdminNotifierWithHTTP creates an admin notifier over a caller-supplied HTTP client.
func NewAdminNotifierWithHTTP(url, secret, siteName string, httpClient HTTPClient, log zerolog.Logger) *AdminNotifier {
	return &AdminNotifier{
		url:        url,
		secret:     secret,
		siteName:   siteName,
		httpClient: httpClient,
		log:        log,
	}
}

type adminEvent struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

// WalletCreated announces a newly registered wallet.
func (n *AdminNotifier) WalletCreated(ctx context.Context, wallet *domain.Wallet) error {
	return n.post(ctx, adminEvent{
		Event: "wallet_created",
		Data: map[string]any{
			"wallet_name":    wallet.Name,
			"currency":       wallet.Currency,
			"wallet_id":      wallet.ExternalID,
			"description":    wallet.Description,
			"bvn":            wallet.BVN,
			"account_number": wallet.AccountNumber,
			"exchange_ref":   wallet.ExchangeRef,
			"business_id":    wallet.BusinessID,
			"account_type":   wallet.AccountType,
			"bank_code":      wallet.BankCode,
			"bank_name":      wallet.BankName,
			"site_name":      n.siteName,
		},
	})
}

// WalletDeleted announces a removed wallet.
func (n *AdminNotifier) WalletDeleted(ctx context.Context, wallet *domain.Wallet) error {
	return n.post(ctx, adminEvent{
		Event: "wallet_deleted",
		Data: map[string]any{
			"wallet_name":    wallet.Name,
			"account_number": wallet.AccountNumber,
			"wallet_id":      wallet.ExternalID,
			"site_name":      n.siteName,
		},
	})
}

func (n *AdminNotifier) post(ctx context.Context, event adminEvent) error {
	if n.disabled || n.url == "" {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal admin event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build admin request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if n.secret != "" {
		req.Header.Set("X-Signature", n.sign(payload))
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.log.Warn().Str("event", event.Event).Err(err).Msg("Admin notification failed")
		return fmt.Errorf("post admin event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		n.log.Warn().
			Str("event", event.Event).
			Int("status", resp.StatusCode).
			Msg("Admin system rejected notification")
		return fmt.Errorf("admin system returned status %d", resp.StatusCode)
	}

	n.log.Info().Str("event", event.Event).Msg("Admin system notified")
	return nil
}

// sign computes HMAC-SHA256 of the payload, lowercase hex-encoded.
func (n *AdminNotifier) sign(payload []byte) string {
	mac := hmac.New(sha256.New, []byte(n.secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

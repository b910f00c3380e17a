package notify

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"virtual-payment-gateway/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWallet() *domain.Wallet {
	return &domain.Wallet{
		Name:          "Operations Float",
		Currency:      "NGN",
		ExternalID:    "acc-1",
		BVN:           "12345678901",
		AccountNumber: "9000200011",
		BankCode:      "000017",
		BankName:      "Wema Bank",
	}
}

func TestAdminNotifier_WalletCreated(t *testing.T) {
	var received adminEvent
	var signature string
	var body []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		signature = r.Header.Get("X-Signature")
		body, _ = io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	n := NewAdminNotifierWithHTTP(server.URL, "shh", "pd-site-1",
		&http.Client{Timeout: 2 * time.Second}, zerolog.Nop())

	err := n.WalletCreated(context.Background(), testWallet())
	require.NoError(t, err)

	assert.Equal(t, "wallet_created", received.Event)
	assert.Equal(t, "Operations Float", received.Data["wallet_name"])
	assert.Equal(t, "9000200011", received.Data["account_number"])
	assert.Equal(t, "pd-site-1", received.Data["site_name"])

	mac := hmac.New(sha256.New, []byte("shh"))
	mac.Write(body)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), signature)
}

func TestAdminNotifier_WalletDeleted(t *testing.T) {
	var received adminEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	n := NewAdminNotifierWithHTTP(server.URL, "", "pd-site-1",
		&http.Client{Timeout: 2 * time.Second}, zerolog.Nop())

	err := n.WalletDeleted(context.Background(), testWallet())
	require.NoError(t, err)
	assert.Equal(t, "wallet_deleted", received.Event)
}

func TestAdminNotifier_RejectionReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewAdminNotifierWithHTTP(server.URL, "", "pd-site-1",
		&http.Client{Timeout: 2 * time.Second}, zerolog.Nop())

	err := n.WalletCreated(context.Background(), testWallet())
	assert.Error(t, err)
}

func TestAdminNotifier_DisabledIsNoOp(t *testing.T) {
	n := &AdminNotifier{disabled: true, log: zerolog.Nop()}
	assert.NoError(t, n.WalletCreated(context.Background(), testWallet()))
	assert.NoError(t, n.WalletDeleted(context.Background(), testWallet()))
}

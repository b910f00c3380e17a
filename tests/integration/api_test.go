package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"virtual-payment-gateway/config"
	"virtual-payment-gateway/internal/adapter/gateway"
	httpHandler "virtual-payment-gateway/internal/adapter/http/handler"
	"virtual-payment-gateway/internal/adapter/notify"
	redisStorage "virtual-payment-gateway/internal/adapter/storage/redis"
	"virtual-payment-gateway/internal/core/domain"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/internal/service"
	"virtual-payment-gateway/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessKey = "ops-access-key"
	testSecret    = "operator-secret"
)

// fakeGateway simulates the settlement gateway's banking API so the whole
// stack (HTTP layer, middleware, services, Redis stores, outbound client)
// runs end-to-end without network access.
type fakeGateway struct {
	server      *httptest.Server
	transferSeq atomic.Int64
}

func newFakeGateway() *fakeGateway {
	fg := &fakeGateway{}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /core/banks", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"message": "success",
			"data": []map[string]any{
				{"bankName": "GTBank", "bankCode": "000013"},
				{"bankName": "Access Bank", "bankCode": "000014"},
				{"bankName": "Wema Bank", "bankCode": "000017"},
			},
		})
	})

	mux.HandleFunc("GET /core/bank/resolve", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"message": "success",
			"data": map[string]any{
				"accountName": "JANE A DOE",
				"bankName":    "GTBank",
			},
		})
	})

	mux.HandleFunc("POST /virtual/transfers", func(w http.ResponseWriter, r *http.Request) {
		var req ports.TransferRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		ref := fmt.Sprintf("GW-REF-%06d", fg.transferSeq.Add(1))
		writeJSON(w, map[string]any{
			"message": "success",
			"data": map[string]any{
				"transactionReference":     ref,
				"amount":                   req.Amount,
				"destinationBankName":      "GTBank",
				"destinationAccountNumber": req.DestinationAccountNumber,
				"destinationAccountName":   "JANE A DOE",
				"sourceAccountNumber":      req.SourceAccountNumber,
				"narration":                req.Narration,
			},
		})
	})

	mux.HandleFunc("GET /virtual/transfers/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"message": "success",
			"data":    map[string]any{"status": "SUCCESSFUL"},
		})
	})

	mux.HandleFunc("POST /virtual/accounts/reserved", func(w http.ResponseWriter, r *http.Request) {
		var req ports.ReservedAccountRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "success",
			"data": map[string]any{
				"id":            "acct-" + req.ExRef,
				"name":          req.Name,
				"currency":      "NGN",
				"accountNumber": "9000111222",
				"accountType":   "static",
				"bankCode":      "035",
				"bankName":      "Wema Bank",
			},
		})
	})

	fg.server = httptest.NewServer(mux)
	return fg
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// testApp wires the full application against in-memory repos, miniredis,
// and the fake gateway.
type testApp struct {
	server     *httptest.Server
	redis      *miniredis.Miniredis
	gateway    *fakeGateway
	walletRepo *inMemoryWalletRepo
	pinSvc     ports.PinAuthorizer
	bankSvc    ports.BankDirectory
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	fg := newFakeGateway()
	log := logger.New("error", false)

	// Redis stores
	recordCache := redisStorage.NewRecordCache(rdb)
	realtime := redisStorage.NewRealtimePublisher(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Core services with real implementations
	encSvc, err := service.NewAESEncryptionService("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	hashSvc := service.NewArgon2HashService()
	secretHash, err := hashSvc.Hash(testSecret)
	require.NoError(t, err)
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	authCfg := config.AuthConfig{
		AccessKey:  testAccessKey,
		SecretHash: secretHash,
		Roles:      []string{"operator"},
		JWTSecret:  "test-jwt-secret-key-32bytes!!",
		JWTExpiry:  24 * time.Hour,
		JWTIssuer:  "test-issuer",
	}
	gatewayCfg := config.GatewayConfig{
		BaseURL:          fg.server.URL,
		Timeout:          5 * time.Second,
		SourceAccount:    "9000136910",
		DefaultNarration: "Wallet transfer",
	}

	// In-memory repos
	bankRepo := newInMemoryBankRepo()
	walletRepo := newInMemoryWalletRepo()
	pinRepo := newInMemoryPinRepo()
	txRepo := newInMemoryTransactionRepo()
	settingsRepo := newInMemorySettingsRepo()
	transactor := newInMemoryTransactor()

	creds := service.NewChainCredentialResolver(log,
		service.NewConfigCredentialProvider("test-gateway-token"),
		service.NewSettingsCredentialProvider(settingsRepo, encSvc, "gateway_token"),
	)

	gatewayClient := gateway.NewClientWithHTTP(fg.server.URL, &http.Client{Timeout: 5 * time.Second}, log)
	notifier := notify.NewAdminNotifier(config.AdminConfig{Disabled: true}, log)

	// Business services
	authSvc := service.NewAuthService(authCfg, hashSvc, tokenSvc, log)
	bankSvc := service.NewBankDirectory(bankRepo, gatewayClient, creds, log)
	accountSvc := service.NewAccountService(bankSvc, gatewayClient, creds, realtime, log)
	walletSvc := service.NewWalletService(walletRepo, txRepo, pinRepo, transactor, gatewayClient, creds, notifier, gatewayCfg, log)
	pinSvc := service.NewPinService(pinRepo, walletRepo, encSvc, log)
	transactionSvc := service.NewTransactionService(txRepo, recordCache, gatewayClient, creds, realtime, log)
	paymentSvc := service.NewPaymentService(walletSvc, pinSvc, bankSvc, gatewayClient, creds, realtime, gatewayCfg, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		AccountSvc:     accountSvc,
		PaymentSvc:     paymentSvc,
		WalletLedger:   walletSvc,
		WalletSvc:      walletSvc,
		PinSvc:         pinSvc,
		TransactionSvc: transactionSvc,
		BankSvc:        bankSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)

	app := &testApp{
		server:     server,
		redis:      mr,
		gateway:    fg,
		walletRepo: walletRepo,
		pinSvc:     pinSvc,
		bankSvc:    bankSvc,
	}

	// Seed the bank directory so lookups work without a sync round trip.
	_, err = bankSvc.Upsert(context.Background(), "GTBank", "000013")
	require.NoError(t, err)

	return app
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
	a.gateway.server.Close()
}

// seedWallet registers a funded wallet with a PIN of 1234.
func (a *testApp) seedWallet(t *testing.T, balance int64) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	wallet := &domain.Wallet{
		ID:            uuid.New(),
		Name:          "Operations Float",
		Balance:       decimal.NewFromInt(balance),
		Currency:      "NGN",
		AccountNumber: "9000136910",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, a.walletRepo.Create(ctx, wallet))
	require.NoError(t, a.pinSvc.SetPin(ctx, wallet.ID, "1234"))
	return wallet.ID
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_IssueTokenAndBalance(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	app.seedWallet(t, 250000)

	token := issueToken(t, app)

	req, _ := http.NewRequest(http.MethodGet, app.server.URL+"/api/v1/wallets/balance", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "250000", data["balance"])
	assert.Equal(t, "NGN", data["currency"])
}

func TestIntegration_IssueTokenWrongSecret(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	body, _ := json.Marshal(map[string]string{
		"access_key": testAccessKey,
		"secret":     "not-the-secret",
	})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/token", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_ProtectedRouteWithoutToken(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	req, _ := http.NewRequest(http.MethodGet, app.server.URL+"/api/v1/wallets/balance", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_PaymentEndToEnd(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	app.seedWallet(t, 1000000)

	token := issueToken(t, app)

	payBody, _ := json.Marshal(map[string]interface{}{
		"amount":              250000,
		"destination_bank":    "GTBank",
		"destination_account": "0123456789",
		"narration":           "September invoice",
		"pin":                 "1234",
	})
	resp := doAuthed(t, app, token, http.MethodPost, "/api/v1/payments", payBody)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode, "payment response: %s", string(raw))

	var payResp map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payResp))
	data := payResp["data"].(map[string]interface{})
	reference := data["transaction_reference"].(string)
	assert.NotEmpty(t, reference)
	assert.Equal(t, "Pending", data["status"])
	assert.Equal(t, "750000", data["new_balance"])
	assert.Equal(t, "Operations Float", data["wallet_used"])

	// Status check reconciles the pending record against the gateway.
	respStatus := doAuthed(t, app, token, http.MethodGet, "/api/v1/transactions/"+reference+"/status", nil)
	defer respStatus.Body.Close()
	require.Equal(t, http.StatusOK, respStatus.StatusCode)

	var statusResp map[string]interface{}
	require.NoError(t, json.NewDecoder(respStatus.Body).Decode(&statusResp))
	statusData := statusResp["data"].(map[string]interface{})
	assert.Equal(t, "Successful", statusData["status"])

	// Balance reflects the debit.
	respBal := doAuthed(t, app, token, http.MethodGet, "/api/v1/wallets/balance", nil)
	defer respBal.Body.Close()
	var balResp map[string]interface{}
	require.NoError(t, json.NewDecoder(respBal.Body).Decode(&balResp))
	assert.Equal(t, "750000", balResp["data"].(map[string]interface{})["balance"])
}

func TestIntegration_PaymentWrongPin(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	app.seedWallet(t, 1000000)

	token := issueToken(t, app)

	payBody, _ := json.Marshal(map[string]interface{}{
		"amount":              50000,
		"destination_bank":    "GTBank",
		"destination_account": "0123456789",
		"pin":                 "9999",
	})
	resp := doAuthed(t, app, token, http.MethodPost, "/api/v1/payments", payBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "PIN_001", body["error_code"])
}

func TestIntegration_PaymentInsufficientFunds(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	app.seedWallet(t, 10000)

	token := issueToken(t, app)

	payBody, _ := json.Marshal(map[string]interface{}{
		"amount":              50000,
		"destination_bank":    "GTBank",
		"destination_account": "0123456789",
		"pin":                 "1234",
	})
	resp := doAuthed(t, app, token, http.MethodPost, "/api/v1/payments", payBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "PAY_001", body["error_code"])
}

func TestIntegration_VerifyAccount(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := issueToken(t, app)

	body, _ := json.Marshal(map[string]string{
		"bank_name":      "GTBank",
		"account_number": "0123456789",
	})
	resp := doAuthed(t, app, token, http.MethodPost, "/api/v1/accounts/verify", body)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var verifyResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&verifyResp))
	data := verifyResp["data"].(map[string]interface{})
	assert.Equal(t, "JANE A DOE", data["account_name"])
}

func TestIntegration_BankSync(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := issueToken(t, app)

	resp := doAuthed(t, app, token, http.MethodPost, "/api/v1/banks/sync", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var syncResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&syncResp))
	data := syncResp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["banks_stored"])
}

func TestIntegration_BankCodeCorrection(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := issueToken(t, app)

	// The seeded GTBank entry keeps its row but picks up the corrected code.
	// The in-memory repo rejects duplicate inserts, so this passes only when
	// the directory updates in place.
	body, _ := json.Marshal(map[string]string{"name": "GTBank", "code": "000058"})
	resp := doAuthed(t, app, token, http.MethodPost, "/api/v1/banks", body)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var upsertResp map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&upsertResp))
	data := upsertResp["data"].(map[string]interface{})
	assert.Equal(t, "000058", data["code"])
}

func TestIntegration_WalletLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := issueToken(t, app)

	createBody, _ := json.Marshal(map[string]string{
		"name":        "Settlement Float",
		"bvn":         "12345678901",
		"description": "Float for outbound settlements",
	})
	resp := doAuthed(t, app, token, http.MethodPost, "/api/v1/wallets", createBody)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create response: %s", string(raw))

	var createResp map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &createResp))
	data := createResp["data"].(map[string]interface{})
	assert.Equal(t, "Settlement Float", data["name"])
	assert.Equal(t, "9000111222", data["account_number"])
	walletID := data["id"].(string)

	respDel := doAuthed(t, app, token, http.MethodDelete, "/api/v1/wallets/"+walletID, nil)
	defer respDel.Body.Close()
	assert.Equal(t, http.StatusOK, respDel.StatusCode)
}

func TestIntegration_TokenEndpointRateLimited(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	body, _ := json.Marshal(map[string]string{
		"access_key": testAccessKey,
		"secret":     "wrong-on-purpose",
	})

	// The token endpoint allows 10 requests per fixed minute window. Firing
	// 25 back to back guarantees at least one window sees more than 10 even
	// if the loop straddles a window boundary.
	limited := 0
	for i := 0; i < 25; i++ {
		resp, err := http.Post(app.server.URL+"/api/v1/auth/token", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		if resp.StatusCode == http.StatusTooManyRequests {
			limited++
			assert.NotEmpty(t, resp.Header.Get("Retry-After"))
		}
		resp.Body.Close()
	}

	assert.Greater(t, limited, 0, "expected at least one rate limited response")
}

// --- Helpers ---

func issueToken(t *testing.T, app *testApp) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"access_key": testAccessKey,
		"secret":     testSecret,
	})
	resp, err := http.Post(app.server.URL+"/api/v1/auth/token", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	require.Equal(t, http.StatusOK, resp.StatusCode, "token response: %s", string(raw))

	var tokenResp map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &tokenResp))
	data := tokenResp["data"].(map[string]interface{})
	return data["token"].(string)
}

func doAuthed(t *testing.T, app *testApp, token, method, path string, body []byte) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, app.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

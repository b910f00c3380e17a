package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"virtual-payment-gateway/internal/adapter/http/dto"
	"virtual-payment-gateway/internal/core/domain"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/internal/core/ports/mocks"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Auth Handler Tests ---

func TestIssueToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Now().Add(time.Hour)
	mockAuth.EXPECT().IssueToken(gomock.Any(), "ops-key", "secret-value").
		Return("jwt-token", expiry, []string{"Payment Operator"}, nil)

	w := postJSON(t, h.IssueToken, "/api/v1/auth/token", dto.TokenRequest{
		AccessKey: "ops-key",
		Secret:    "secret-value",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
	assert.Equal(t, []interface{}{"Payment Operator"}, data["roles"])
}

func TestIssueToken_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().IssueToken(gomock.Any(), "ops-key", "wrong").
		Return("", time.Time{}, nil, apperror.ErrInvalidCredentials())

	w := postJSON(t, h.IssueToken, "/api/v1/auth/token", dto.TokenRequest{
		AccessKey: "ops-key",
		Secret:    "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "AUTH_001", resp["error_code"])
}

func TestIssueToken_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	w := postJSON(t, h.IssueToken, "/api/v1/auth/token", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, "VAL_001", resp["error_code"])
}

// --- Account Handler Tests ---

func TestVerifyAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockAccountResolver(ctrl)
	h := NewAccountHandler(mockResolver)

	mockResolver.EXPECT().ResolveAccount(gomock.Any(), "GTBank", "0123456789").
		Return(&ports.AccountResolution{AccountName: "ADAOBI OKEKE", BankName: "GTBank"}, nil)

	w := postJSON(t, h.Verify, "/api/v1/accounts/verify", dto.VerifyAccountRequest{
		BankName:      "GTBank",
		AccountNumber: "0123456789",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "ADAOBI OKEKE", data["account_name"])
}

func TestVerifyAccount_ShortAccountNumberRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockAccountResolver(ctrl)
	h := NewAccountHandler(mockResolver)

	w := postJSON(t, h.Verify, "/api/v1/accounts/verify", dto.VerifyAccountRequest{
		BankName:      "GTBank",
		AccountNumber: "01234",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Payment Handler Tests ---

func TestMakePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrch := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewPaymentHandler(mockOrch)

	record := &domain.TransactionRecord{
		ID:        uuid.New(),
		Reference: "REF-A1B2C3-1756700000",
		WalletID:  uuid.New(),
		Amount:    decimal.NewFromInt(6000),
		Status:    domain.StatusPending,
	}
	mockOrch.EXPECT().MakePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.PaymentRequest) (*ports.PaymentResult, error) {
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(6000)))
			assert.Equal(t, "GTBank", req.DestinationBank)
			return &ports.PaymentResult{
				NewBalance: decimal.NewFromInt(244000),
				Record:     record,
				WalletUsed: "Operations Float",
				Message:    "Payment of NGN 6,000.00 made successfully from wallet Operations Float",
			}, nil
		})

	w := postJSON(t, h.MakePayment, "/api/v1/payments", dto.PaymentRequest{
		Amount:             decimal.NewFromInt(6000),
		DestinationBank:    "GTBank",
		DestinationAccount: "0123456789",
		Pin:                "1234",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "REF-A1B2C3-1756700000", data["transaction_reference"])
}

func TestMakePayment_InsufficientFundsEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrch := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewPaymentHandler(mockOrch)

	mockOrch.EXPECT().MakePayment(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientFunds("Operations Float", "NGN 5,000.00", "NGN 6,000.00"))

	w := postJSON(t, h.MakePayment, "/api/v1/payments", dto.PaymentRequest{
		Amount:             decimal.NewFromInt(6000),
		DestinationBank:    "GTBank",
		DestinationAccount: "0123456789",
		Pin:                "1234",
	})

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, "PAY_001", resp["error_code"])
	assert.Contains(t, resp["error"], "NGN 5,000.00")
}

func TestMakePayment_BadWalletID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOrch := mocks.NewMockPaymentOrchestrator(ctrl)
	h := NewPaymentHandler(mockOrch)

	badID := "not-a-uuid"
	w := postJSON(t, h.MakePayment, "/api/v1/payments", dto.PaymentRequest{
		WalletID:           &badID,
		Amount:             decimal.NewFromInt(6000),
		DestinationBank:    "GTBank",
		DestinationAccount: "0123456789",
		Pin:                "1234",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Wallet Handler Tests ---

func TestGetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLedger := mocks.NewMockWalletLedger(ctrl)
	h := NewWalletHandler(mockLedger, nil)

	wallet := &domain.Wallet{
		ID:            uuid.New(),
		Name:          "Operations Float",
		Balance:       decimal.NewFromInt(250000),
		Currency:      "NGN",
		AccountNumber: "9000136910",
	}
	mockLedger.EXPECT().GetBalance(gomock.Any(), gomock.Nil()).Return(wallet, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/wallets/balance", nil)
	h.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Operations Float", data["name"])
	assert.Equal(t, "250000", data["balance"])
}

func TestGetBalance_NoWallets(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLedger := mocks.NewMockWalletLedger(ctrl)
	h := NewWalletHandler(mockLedger, nil)

	mockLedger.EXPECT().GetBalance(gomock.Any(), gomock.Nil()).Return(nil, apperror.ErrNoWalletFound())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/wallets/balance", nil)
	h.GetBalance(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PAY_003", envelope(t, w)["error_code"])
}

func TestCreateWallet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLifecycle := mocks.NewMockWalletLifecycle(ctrl)
	h := NewWalletHandler(nil, mockLifecycle)

	wallet := &domain.Wallet{
		ID:            uuid.New(),
		Name:          "Operations Float",
		Currency:      "NGN",
		AccountNumber: "9000136910",
	}
	mockLifecycle.EXPECT().CreateWallet(gomock.Any(), "Operations Float", "12345678901", "main float").
		Return(wallet, nil)

	w := postJSON(t, h.Create, "/api/v1/wallets", dto.CreateWalletRequest{
		Name:        "Operations Float",
		BVN:         "12345678901",
		Description: "main float",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateWallet_BadBVNRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLifecycle := mocks.NewMockWalletLifecycle(ctrl)
	h := NewWalletHandler(nil, mockLifecycle)

	w := postJSON(t, h.Create, "/api/v1/wallets", dto.CreateWalletRequest{
		Name: "Operations Float",
		BVN:  "1234",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInflow_CreditsWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLedger := mocks.NewMockWalletLedger(ctrl)
	h := NewWalletHandler(mockLedger, nil)

	walletID := uuid.New()
	mockLedger.EXPECT().Credit(gomock.Any(), walletID, gomock.Any()).
		Return(decimal.NewFromInt(3500), nil)

	w := postJSON(t, h.Inflow, "/api/v1/wallets/inflow", dto.InflowRequest{
		WalletID: walletID.String(),
		Amount:   decimal.NewFromInt(2500),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "3500", data["new_balance"])
}

// --- Pin Handler Tests ---

func TestPinVerify_Incorrect(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPin := mocks.NewMockPinAuthorizer(ctrl)
	h := NewPinHandler(mockPin)

	walletID := uuid.New()
	mockPin.EXPECT().Verify(gomock.Any(), walletID, "0000", gomock.Any()).
		Return(apperror.ErrIncorrectPin())

	w := postJSON(t, h.Verify, "/api/v1/pins/verify", dto.PinVerifyRequest{
		WalletID: walletID.String(),
		Pin:      "0000",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "PIN_001", envelope(t, w)["error_code"])
}

func TestPinChange_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPin := mocks.NewMockPinAuthorizer(ctrl)
	h := NewPinHandler(mockPin)

	walletID := uuid.New()
	mockPin.EXPECT().VerifyAndUpdate(gomock.Any(), walletID, "1234", "5678", gomock.Any()).Return(nil)

	w := postJSON(t, h.Change, "/api/v1/pins/change", dto.PinChangeRequest{
		WalletID:   walletID.String(),
		CurrentPin: "1234",
		NewPin:     "5678",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Transaction Handler Tests ---

func TestGetTransactionStatus_Reconciles(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLedger := mocks.NewMockTransactionLedger(ctrl)
	h := NewTransactionHandler(mockLedger)

	record := &domain.TransactionRecord{
		ID:        uuid.New(),
		Reference: "REF-A1B2C3-1756700000",
		WalletID:  uuid.New(),
		Amount:    decimal.NewFromInt(6000),
		Status:    domain.StatusSuccessful,
	}
	mockLedger.EXPECT().Reconcile(gomock.Any(), "REF-A1B2C3-1756700000").Return(record, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/transactions/REF-A1B2C3-1756700000/status", nil)
	c.Params = gin.Params{{Key: "reference", Value: "REF-A1B2C3-1756700000"}}
	h.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Successful", data["status"])
}

func TestListTransactions_RequiresWalletID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLedger := mocks.NewMockTransactionLedger(ctrl)
	h := NewTransactionHandler(mockLedger)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bank Handler Tests ---

func TestBankSync_ReportsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockBankDirectory(ctrl)
	h := NewBankHandler(mockDirectory)

	mockDirectory.EXPECT().Sync(gomock.Any()).Return(24, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/banks/sync", nil)
	h.Sync(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(24), data["banks_stored"])
}

func TestBankUpsert_DuplicateCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDirectory := mocks.NewMockBankDirectory(ctrl)
	h := NewBankHandler(mockDirectory)

	mockDirectory.EXPECT().Upsert(gomock.Any(), "Zenith Bank", "000013").
		Return(nil, apperror.ErrDuplicateCode("000013", "GTBank"))

	w := postJSON(t, h.Upsert, "/api/v1/banks", dto.UpsertBankRequest{
		Name: "Zenith Bank",
		Code: "000013",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "PAY_005", envelope(t, w)["error_code"])
}

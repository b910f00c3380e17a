package service

import (
	"context"
	"testing"
	"time"

	"virtual-payment-gateway/config"
	"virtual-payment-gateway/internal/core/domain"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/internal/core/ports/mocks"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type walletServiceDeps struct {
	svc        *WalletServiceImpl
	walletRepo *mocks.MockWalletRepository
	txRepo     *mocks.MockTransactionRepository
	pinRepo    *mocks.MockPinRepository
	transactor *mocks.MockDBTransactor
	gateway    *mocks.MockGatewayClient
	creds      *mocks.MockCredentialResolver
	notifier   *mocks.MockAdminNotifier
	ctrl       *gomock.Controller
}

func setupWalletService(t *testing.T) *walletServiceDeps {
	ctrl := gomock.NewController(t)
	d := &walletServiceDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		pinRepo:    mocks.NewMockPinRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		gateway:    mocks.NewMockGatewayClient(ctrl),
		creds:      mocks.NewMockCredentialResolver(ctrl),
		notifier:   mocks.NewMockAdminNotifier(ctrl),
		ctrl:       ctrl,
	}
	cfg := config.GatewayConfig{SourceAccount: "9000136910", DefaultNarration: "Payment Transfer"}
	d.svc = NewWalletService(d.walletRepo, d.txRepo, d.pinRepo, d.transactor,
		d.gateway, d.creds, d.notifier, cfg, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func ledgerWallet(balance int64) *domain.Wallet {
	return &domain.Wallet{
		ID:            uuid.New(),
		Name:          "Operations Float",
		Balance:       decimal.NewFromInt(balance),
		Currency:      "NGN",
		AccountNumber: "9000136910",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
}

func TestWalletService_GetBalance_FirstWalletWhenUnnamed(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := ledgerWallet(5000)
	d.walletRepo.EXPECT().GetFirst(ctx).Return(w, nil)

	result, err := d.svc.GetBalance(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, w.ID, result.ID)
}

func TestWalletService_GetBalance_NoWallets(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	d.walletRepo.EXPECT().GetFirst(gomock.Any()).Return(nil, nil)

	_, err := d.svc.GetBalance(context.Background(), nil)
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "PAY_003", appErr.Code)
}

func TestWalletService_ValidateDebit_InsufficientFundsCitesBothFigures(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	w := ledgerWallet(5000)
	_, err := d.svc.ValidateDebit(context.Background(), w, decimal.NewFromInt(6000))
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "PAY_001", appErr.Code)
	assert.Contains(t, appErr.Message, "NGN 5,000.00")
	assert.Contains(t, appErr.Message, "NGN 6,000.00")
	assert.Contains(t, appErr.Message, "Operations Float")
}

func TestWalletService_ValidateDebit_ZeroAmount(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.ValidateDebit(context.Background(), ledgerWallet(5000), decimal.Zero)
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "PAY_002", appErr.Code)
}

func TestWalletService_ValidateDebit_DefaultSourceAccount(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	w := ledgerWallet(5000)
	w.AccountNumber = ""

	v, err := d.svc.ValidateDebit(context.Background(), w, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "9000136910", v.AccountNumber)
}

func TestWalletService_CommitDebit_Success(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := ledgerWallet(250000)
	amount := decimal.NewFromInt(6000)
	record := &domain.TransactionRecord{
		ID:        uuid.New(),
		Reference: "REF-A1B2C3-1756700000",
		WalletID:  w.ID,
		Amount:    amount,
		Status:    domain.StatusPending,
	}
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, w.ID).Return(w, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, w.ID, decimal.NewFromInt(244000)).Return(nil)
	d.txRepo.EXPECT().CreateOrGetTx(ctx, tx, record).Return(record, false, nil)

	newBalance, stored, err := d.svc.CommitDebit(ctx, w.ID, amount, record)
	require.NoError(t, err)
	assert.True(t, newBalance.Equal(decimal.NewFromInt(244000)))
	assert.Equal(t, record.Reference, stored.Reference)
}

func TestWalletService_CommitDebit_BalanceFellUnderLock(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := ledgerWallet(1000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, w.ID).Return(w, nil)

	_, _, err := d.svc.CommitDebit(ctx, w.ID, decimal.NewFromInt(6000), &domain.TransactionRecord{
		Reference: "REF-A1B2C3-1756700000",
	})
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "PAY_001", appErr.Code)
}

func TestWalletService_CommitDebit_DuplicateReferenceRollsBack(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := ledgerWallet(250000)
	record := &domain.TransactionRecord{Reference: "REF-A1B2C3-1756700000", WalletID: w.ID}
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, w.ID).Return(w, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, w.ID, gomock.Any()).Return(nil)
	d.txRepo.EXPECT().CreateOrGetTx(ctx, tx, record).Return(record, true, nil)

	_, _, err := d.svc.CommitDebit(ctx, w.ID, decimal.NewFromInt(100), record)
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "PAY_007", appErr.Code)
}

func TestWalletService_Credit(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := ledgerWallet(1000)
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, w.ID).Return(w, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, w.ID, decimal.NewFromInt(3500)).Return(nil)

	newBalance, err := d.svc.Credit(ctx, w.ID, decimal.NewFromInt(2500))
	require.NoError(t, err)
	assert.True(t, newBalance.Equal(decimal.NewFromInt(3500)))
}

func TestWalletService_CreateWallet_Success(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.creds.EXPECT().ResolveToken(ctx).Return("tok", nil)
	d.gateway.EXPECT().CreateReservedAccount(ctx, "tok", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req ports.ReservedAccountRequest) (*ports.ReservedAccountResponse, error) {
			assert.Equal(t, "Operations Float", req.Name)
			assert.Equal(t, "12345678901", req.BVN)
			assert.Regexp(t, `^REF-[A-Z0-9]{6}-\d+$`, req.ExRef)
			return &ports.ReservedAccountResponse{
				ID:            "acc-1",
				Name:          "Operations Float",
				Currency:      "NGN",
				AccountNumber: "9000200011",
				BankCode:      "000017",
				BankName:      "Wema Bank",
				AccountType:   "static",
			}, nil
		})
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().WalletCreated(ctx, gomock.Any()).Return(nil)

	wallet, err := d.svc.CreateWallet(ctx, "Operations Float", "12345678901", "ops float")
	require.NoError(t, err)
	assert.Equal(t, "9000200011", wallet.AccountNumber)
	assert.Equal(t, "Wema Bank", wallet.BankName)
	assert.True(t, wallet.Balance.IsZero())
}

func TestWalletService_CreateWallet_InvalidBVN(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateWallet(context.Background(), "Operations Float", "1234", "")
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestWalletService_CreateWallet_AdminFailureDoesNotBlock(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.creds.EXPECT().ResolveToken(ctx).Return("tok", nil)
	d.gateway.EXPECT().CreateReservedAccount(ctx, "tok", gomock.Any()).
		Return(&ports.ReservedAccountResponse{Name: "Operations Float", Currency: "NGN", AccountNumber: "9000200011"}, nil)
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().WalletCreated(ctx, gomock.Any()).Return(assert.AnError)

	wallet, err := d.svc.CreateWallet(ctx, "Operations Float", "12345678901", "")
	require.NoError(t, err)
	assert.NotNil(t, wallet)
}

func TestWalletService_DeleteWallet(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := ledgerWallet(0)
	d.walletRepo.EXPECT().GetByID(ctx, w.ID).Return(w, nil)
	d.pinRepo.EXPECT().DeleteByWalletID(ctx, w.ID).Return(nil)
	d.walletRepo.EXPECT().Delete(ctx, w.ID).Return(nil)
	d.notifier.EXPECT().WalletDeleted(ctx, w).Return(nil)

	err := d.svc.DeleteWallet(ctx, w.ID)
	require.NoError(t, err)
}

func TestWalletService_DeleteWallet_NotFound(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	id := uuid.New()
	d.walletRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

	err := d.svc.DeleteWallet(context.Background(), id)
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "PAY_004", appErr.Code)
}

package service

import (
	"context"
	"testing"

	"virtual-payment-gateway/internal/core/domain"
	"virtual-payment-gateway/internal/core/ports/mocks"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pinServiceDeps struct {
	svc        *PinServiceImpl
	pinRepo    *mocks.MockPinRepository
	walletRepo *mocks.MockWalletRepository
	encSvc     *mocks.MockEncryptionService
	ctrl       *gomock.Controller
}

func setupPinService(t *testing.T) *pinServiceDeps {
	ctrl := gomock.NewController(t)
	d := &pinServiceDeps{
		pinRepo:    mocks.NewMockPinRepository(ctrl),
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		encSvc:     mocks.NewMockEncryptionService(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewPinService(d.pinRepo, d.walletRepo, d.encSvc, zerolog.Nop())
	return d
}

func pinWallet() *domain.Wallet {
	return &domain.Wallet{
		ID:           uuid.New(),
		Name:         "Operations Float",
		RequiredRole: "Payment Operator",
	}
}

func TestPinService_Verify_Success(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := pinWallet()
	d.walletRepo.EXPECT().GetByID(ctx, w.ID).Return(w, nil)
	d.pinRepo.EXPECT().GetByWalletID(ctx, w.ID).
		Return(&domain.PaymentPin{WalletID: w.ID, EncryptedPin: "enc"}, nil)
	d.encSvc.EXPECT().Decrypt("enc").Return("1234", nil)

	err := d.svc.Verify(ctx, w.ID, "1234", []string{"Payment Operator"})
	assert.NoError(t, err)
}

func TestPinService_Verify_PaddedAttemptStillMatches(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := pinWallet()
	d.walletRepo.EXPECT().GetByID(ctx, w.ID).Return(w, nil)
	d.pinRepo.EXPECT().GetByWalletID(ctx, w.ID).
		Return(&domain.PaymentPin{WalletID: w.ID, EncryptedPin: "enc"}, nil)
	d.encSvc.EXPECT().Decrypt("enc").Return(" 1234 ", nil)

	err := d.svc.Verify(ctx, w.ID, "  1234  ", []string{"Payment Operator"})
	assert.NoError(t, err)
}

func TestPinService_Verify_WrongPin(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := pinWallet()
	d.walletRepo.EXPECT().GetByID(ctx, w.ID).Return(w, nil)
	d.pinRepo.EXPECT().GetByWalletID(ctx, w.ID).
		Return(&domain.PaymentPin{WalletID: w.ID, EncryptedPin: "enc"}, nil)
	d.encSvc.EXPECT().Decrypt("enc").Return("1234", nil)

	err := d.svc.Verify(ctx, w.ID, "9999", []string{"Payment Operator"})
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "PIN_001", appErr.Code)
}

func TestPinService_Verify_MissingRole(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := pinWallet()
	d.walletRepo.EXPECT().GetByID(ctx, w.ID).Return(w, nil)

	err := d.svc.Verify(ctx, w.ID, "1234", []string{"Viewer"})
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "PIN_003", appErr.Code)
	assert.Contains(t, appErr.Message, "Payment Operator")
}

func TestPinService_Verify_NoPinConfigured(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := pinWallet()
	w.RequiredRole = ""
	d.walletRepo.EXPECT().GetByID(ctx, w.ID).Return(w, nil)
	d.pinRepo.EXPECT().GetByWalletID(ctx, w.ID).Return(nil, nil)

	err := d.svc.Verify(ctx, w.ID, "1234", nil)
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "PIN_002", appErr.Code)
}

func TestPinService_Verify_DecryptFailure(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := pinWallet()
	w.RequiredRole = ""
	d.walletRepo.EXPECT().GetByID(ctx, w.ID).Return(w, nil)
	d.pinRepo.EXPECT().GetByWalletID(ctx, w.ID).
		Return(&domain.PaymentPin{WalletID: w.ID, EncryptedPin: "corrupt"}, nil)
	d.encSvc.EXPECT().Decrypt("corrupt").Return("", assert.AnError)

	err := d.svc.Verify(ctx, w.ID, "1234", nil)
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "PIN_004", appErr.Code)
}

func TestPinService_SetPin(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := pinWallet()
	d.walletRepo.EXPECT().GetByID(ctx, w.ID).Return(w, nil)
	d.encSvc.EXPECT().Encrypt("1234").Return("enc", nil)
	d.pinRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, pin *domain.PaymentPin) error {
			assert.Equal(t, w.ID, pin.WalletID)
			assert.Equal(t, "enc", pin.EncryptedPin)
			return nil
		})

	err := d.svc.SetPin(ctx, w.ID, "1234")
	assert.NoError(t, err)
}

func TestPinService_SetPin_BadFormat(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()

	for _, pin := range []string{"12", "1234567", "12ab"} {
		err := d.svc.SetPin(context.Background(), uuid.New(), pin)
		require.Error(t, err, "pin %q", pin)

		appErr, ok := apperror.FromError(err)
		require.True(t, ok)
		assert.Equal(t, "VAL_001", appErr.Code)
	}
}

func TestPinService_VerifyAndUpdate(t *testing.T) {
	d := setupPinService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	w := pinWallet()
	w.RequiredRole = ""

	d.walletRepo.EXPECT().GetByID(ctx, w.ID).Return(w, nil)
	d.pinRepo.EXPECT().GetByWalletID(ctx, w.ID).
		Return(&domain.PaymentPin{WalletID: w.ID, EncryptedPin: "enc"}, nil)
	d.encSvc.EXPECT().Decrypt("enc").Return("1234", nil)

	d.walletRepo.EXPECT().GetByID(ctx, w.ID).Return(w, nil)
	d.encSvc.EXPECT().Encrypt("5678").Return("enc2", nil)
	d.pinRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	err := d.svc.VerifyAndUpdate(ctx, w.ID, "1234", "5678", nil)
	assert.NoError(t, err)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"virtual-payment-gateway/config"
	"virtual-payment-gateway/internal/core/domain"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxTransferAttempts = 3

// retryDelays[i] is the wait before attempt i+2.
var retryDelays = [...]time.Duration{2 * time.Second, 5 * time.Second, 10 * time.Second}

// PaymentServiceImpl implements ports.PaymentOrchestrator. The wallet is
// debited strictly after the gateway confirms the transfer; the debit and
// its transaction record land atomically via the wallet ledger.
type PaymentServiceImpl struct {
	ledger    ports.WalletLedger
	pinAuth   ports.PinAuthorizer
	directory ports.BankDirectory
	gateway   ports.GatewayClient
	creds     ports.CredentialResolver
	realtime  ports.RealtimePublisher
	cfg       config.GatewayConfig
	log       zerolog.Logger

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	ledger ports.WalletLedger,
	pinAuth ports.PinAuthorizer,
	directory ports.BankDirectory,
	gateway ports.GatewayClient,
	creds ports.CredentialResolver,
	realtime ports.RealtimePublisher,
	cfg config.GatewayConfig,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		ledger:    ledger,
		pinAuth:   pinAuth,
		directory: directory,
		gateway:   gateway,
		creds:     creds,
		realtime:  realtime,
		cfg:       cfg,
		log:       log.With().Str("component", "payment_service").Logger(),
		sleep:     time.Sleep,
	}
}

// validate covers payload shape only. Amount sign and sufficiency belong to
// the ledger's ValidateDebit, which runs after PIN authorization.
func (s *PaymentServiceImpl) validate(req ports.PaymentRequest) error {
	var violations []string
	if strings.TrimSpace(req.DestinationBank) == "" {
		violations = append(violations, "destination bank is required")
	}
	account := strings.TrimSpace(req.DestinationAccount)
	if len(account) != 10 || !isDigits(account) {
		violations = append(violations, "destination account number must be exactly 10 digits")
	}
	if strings.TrimSpace(req.Pin) == "" {
		violations = append(violations, "transaction PIN is required")
	}
	if len(violations) > 0 {
		return apperror.ErrValidationFailed(violations)
	}
	return nil
}

// MakePayment runs the full transfer flow: validation, PIN authorization,
// funds check, bank code lookup, the external transfer under bounded retry,
// and the atomic debit-plus-record commit.
func (s *PaymentServiceImpl) MakePayment(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	wallet, err := s.ledger.GetBalance(ctx, req.WalletID)
	if err != nil {
		return nil, err
	}

	if err := s.pinAuth.Verify(ctx, wallet.ID, req.Pin, req.CallerRoles); err != nil {
		return nil, err
	}

	validation, err := s.ledger.ValidateDebit(ctx, wallet, req.Amount)
	if err != nil {
		return nil, err
	}

	bankCode, err := s.directory.LookupCode(ctx, req.DestinationBank)
	if err != nil {
		return nil, err
	}

	token, err := s.creds.ResolveToken(ctx)
	if err != nil {
		return nil, err
	}

	narration := strings.TrimSpace(req.Narration)
	if narration == "" {
		narration = s.cfg.DefaultNarration
	}

	transferReq := ports.TransferRequest{
		DestinationBankCode:      bankCode,
		DestinationAccountNumber: strings.TrimSpace(req.DestinationAccount),
		Amount:                   req.Amount.String(),
		SourceAccountNumber:      validation.AccountNumber,
		Narration:                narration,
	}

	s.publishProgress(ctx, wallet.Name, "submitting transfer")

	transfer, err := s.submitWithRetry(ctx, token, transferReq)
	if err != nil {
		return nil, err
	}

	reference := transfer.Reference
	if reference == "" {
		reference = NewReference()
	}

	now := time.Now().UTC()
	record := &domain.TransactionRecord{
		ID:                       uuid.New(),
		Reference:                reference,
		WalletID:                 wallet.ID,
		Amount:                   req.Amount,
		DestinationBank:          req.DestinationBank,
		DestinationAccountNumber: transferReq.DestinationAccountNumber,
		DestinationAccountName:   transfer.DestinationAccountName,
		SourceAccountNumber:      validation.AccountNumber,
		Narration:                narration,
		Status:                   domain.StatusPending,
		RawResponse:              transfer.Raw,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	newBalance, stored, err := s.ledger.CommitDebit(ctx, wallet.ID, req.Amount, record)
	if err != nil {
		return nil, err
	}

	s.publishProgress(ctx, wallet.Name, "payment completed")

	message := fmt.Sprintf("Payment of %s made successfully from wallet %s",
		domain.FormatMoney(req.Amount, wallet.Currency), wallet.Name)

	s.log.Info().
		Str("wallet", wallet.Name).
		Str("reference", stored.Reference).
		Str("amount", req.Amount.String()).
		Str("new_balance", newBalance.String()).
		Msg("Payment completed")

	return &ports.PaymentResult{
		NewBalance: newBalance,
		Record:     stored,
		Transfer:   transfer,
		WalletUsed: wallet.Name,
		Message:    message,
	}, nil
}

// submitWithRetry calls the gateway up to maxTransferAttempts times. Only
// timeouts, connection faults, and HTTP 502 are retried; everything else
// fails immediately.
func (s *PaymentServiceImpl) submitWithRetry(ctx context.Context, token string, req ports.TransferRequest) (*ports.TransferResponse, error) {
	var lastErr *ports.GatewayError

	for attempt := 1; attempt <= maxTransferAttempts; attempt++ {
		transfer, err := s.gateway.Transfer(ctx, token, req)
		if err == nil {
			if attempt > 1 {
				s.log.Info().Int("attempt", attempt).Msg("Transfer succeeded after retry")
			}
			return transfer, nil
		}

		var gwErr *ports.GatewayError
		if !errors.As(err, &gwErr) {
			return nil, apperror.InternalError(err)
		}
		if !gwErr.Retryable() {
			return nil, mapGatewayError(gwErr)
		}

		lastErr = gwErr
		if attempt < maxTransferAttempts {
			delay := retryDelays[attempt-1]
			s.log.Warn().
				Int("attempt", attempt).
				Dur("delay", delay).
				Err(gwErr).
				Msg("Transfer attempt failed, retrying")
			s.sleep(delay)
			if ctx.Err() != nil {
				return nil, apperror.InternalError(ctx.Err())
			}
		}
	}

	s.log.Error().Err(lastErr).Msg("Transfer failed after all attempts")
	switch lastErr.Kind {
	case ports.GatewayErrTimeout:
		return nil, apperror.ErrTimeout()
	default:
		return nil, apperror.ErrMaxRetriesExceeded()
	}
}

func (s *PaymentServiceImpl) publishProgress(ctx context.Context, walletName, stage string) {
	if s.realtime == nil {
		return
	}
	if err := s.realtime.Publish(ctx, ports.RealtimeEvent{
		Event:    "progress",
		Entity:   "wallet_transfer",
		EntityID: walletName,
		Field:    stage,
	}); err != nil {
		s.log.Debug().Err(err).Msg("Realtime publish failed")
	}
}

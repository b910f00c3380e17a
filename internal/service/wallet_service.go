package service

import (
	"context"
	"fmt"
	"time"

	"virtual-payment-gateway/config"
	"virtual-payment-gateway/internal/core/domain"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletLedger and ports.WalletLifecycle.
// Balances change only under a row lock, and debits are committed strictly
// after the external transfer is confirmed.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	pinRepo    ports.PinRepository
	transactor ports.DBTransactor
	gateway    ports.GatewayClient
	creds      ports.CredentialResolver
	notifier   ports.AdminNotifier
	cfg        config.GatewayConfig
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	pinRepo ports.PinRepository,
	transactor ports.DBTransactor,
	gateway ports.GatewayClient,
	creds ports.CredentialResolver,
	notifier ports.AdminNotifier,
	cfg config.GatewayConfig,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		pinRepo:    pinRepo,
		transactor: transactor,
		gateway:    gateway,
		creds:      creds,
		notifier:   notifier,
		cfg:        cfg,
		log:        log.With().Str("component", "wallet_service").Logger(),
	}
}

// GetBalance fetches a wallet by ID, or the first available wallet when the
// caller names none.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, walletID *uuid.UUID) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	var err error

	if walletID != nil {
		wallet, err = s.walletRepo.GetByID(ctx, *walletID)
	} else {
		wallet, err = s.walletRepo.GetFirst(ctx)
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNoWalletFound()
	}
	return wallet, nil
}

// ValidateDebit checks amount and funds ahead of the external transfer. It
// reserves nothing; CommitDebit re-checks under the row lock.
func (s *WalletServiceImpl) ValidateDebit(ctx context.Context, wallet *domain.Wallet, amount decimal.Decimal) (*ports.DebitValidation, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.ErrInvalidAmount()
	}

	if wallet.Balance.LessThan(amount) {
		return nil, apperror.ErrInsufficientFunds(
			wallet.Name,
			domain.FormatMoney(wallet.Balance, wallet.Currency),
			domain.FormatMoney(amount, wallet.Currency),
		)
	}

	source := wallet.AccountNumber
	if source == "" {
		source = s.cfg.SourceAccount
	}
	return &ports.DebitValidation{Wallet: wallet, AccountNumber: source}, nil
}

// CommitDebit applies a confirmed debit and persists the transaction record
// in the same database transaction. The wallet row stays locked between the
// sufficiency re-check and both writes, so a concurrent debit can never
// overdraw and a crash cannot separate the debit from its record.
func (s *WalletServiceImpl) CommitDebit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, record *domain.TransactionRecord) (decimal.Decimal, *domain.TransactionRecord, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return decimal.Zero, nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return decimal.Zero, nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return decimal.Zero, nil, apperror.ErrNotFound("wallet")
	}

	if wallet.Balance.LessThan(amount) {
		// The transfer already went out; surface the anomaly loudly instead
		// of silently overdrawing.
		s.log.Error().
			Str("wallet", wallet.Name).
			Str("balance", wallet.Balance.String()).
			Str("amount", amount.String()).
			Str("reference", record.Reference).
			Msg("Balance fell below confirmed transfer amount before commit")
		return decimal.Zero, nil, apperror.ErrInsufficientFunds(
			wallet.Name,
			domain.FormatMoney(wallet.Balance, wallet.Currency),
			domain.FormatMoney(amount, wallet.Currency),
		)
	}

	newBalance := wallet.Balance.Sub(amount)
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, walletID, newBalance); err != nil {
		return decimal.Zero, nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	stored, existed, err := s.txRepo.CreateOrGetTx(ctx, dbTx, record)
	if err != nil {
		return decimal.Zero, nil, apperror.InternalError(fmt.Errorf("persist transaction: %w", err))
	}
	if existed {
		// A record with this reference already landed; roll the debit back.
		s.log.Warn().Str("reference", record.Reference).Msg("Duplicate transaction reference, debit rolled back")
		return decimal.Zero, stored, apperror.ErrDuplicateReference(record.Reference)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return decimal.Zero, nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("wallet", wallet.Name).
		Str("reference", record.Reference).
		Str("new_balance", newBalance.String()).
		Msg("Debit committed")
	return newBalance, stored, nil
}

// Credit applies an inflow to a wallet under the row lock.
func (s *WalletServiceImpl) Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return decimal.Zero, apperror.ErrNotFound("wallet")
	}

	newBalance := wallet.Balance.Add(amount)
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, walletID, newBalance); err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("wallet", wallet.Name).
		Str("amount", amount.String()).
		Str("new_balance", newBalance.String()).
		Msg("Wallet credited")
	return newBalance, nil
}

// CreateWallet reserves a backing account at the gateway and registers the
// wallet locally. The admin system is informed best effort.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, name, bvn, description string) (*domain.Wallet, error) {
	violations := domain.ValidateWalletName(name)
	violations = append(violations, domain.ValidateBVN(bvn)...)
	if len(violations) > 0 {
		return nil, apperror.ErrValidationFailed(violations)
	}

	token, err := s.creds.ResolveToken(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.gateway.CreateReservedAccount(ctx, token, ports.ReservedAccountRequest{
		ExRef:       NewReference(),
		Name:        name,
		BVN:         bvn,
		Description: description,
		AccountType: "static",
	})
	if err != nil {
		return nil, mapGatewayError(err)
	}

	now := time.Now().UTC()
	wallet := &domain.Wallet{
		ID:            uuid.New(),
		Name:          account.Name,
		Balance:       decimal.Zero,
		Currency:      account.Currency,
		AccountNumber: account.AccountNumber,
		BVN:           bvn,
		ExternalID:    account.ID,
		ExchangeRef:   account.ExchangeRef,
		BusinessID:    account.BusinessID,
		AccountType:   account.AccountType,
		BankCode:      account.BankCode,
		BankName:      account.BankName,
		Description:   description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if wallet.Name == "" {
		wallet.Name = name
	}
	if wallet.Currency == "" {
		wallet.Currency = "NGN"
	}

	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	if err := s.notifier.WalletCreated(ctx, wallet); err != nil {
		s.log.Warn().Str("wallet", wallet.Name).Err(err).Msg("Admin registration failed")
	}

	s.log.Info().
		Str("wallet", wallet.Name).
		Str("account_number", wallet.AccountNumber).
		Str("bank", wallet.BankName).
		Msg("Wallet created")
	return wallet, nil
}

// DeleteWallet removes a wallet and its PIN, then informs the admin system.
func (s *WalletServiceImpl) DeleteWallet(ctx context.Context, id uuid.UUID) error {
	wallet, err := s.walletRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrNotFound("wallet")
	}

	if err := s.pinRepo.DeleteByWalletID(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("delete pin: %w", err))
	}
	if err := s.walletRepo.Delete(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("delete wallet: %w", err))
	}

	if err := s.notifier.WalletDeleted(ctx, wallet); err != nil {
		s.log.Warn().Str("wallet", wallet.Name).Err(err).Msg("Admin deregistration failed")
	}

	s.log.Info().Str("wallet", wallet.Name).Msg("Wallet deleted")
	return nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"virtual-payment-gateway/internal/core/domain"
	"virtual-payment-gateway/internal/core/ports"
	"virtual-payment-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const recordCacheTTL = 5 * time.Minute

// TransactionServiceImpl implements ports.TransactionLedger. Postgres is the
// source of truth; the record cache is a read-through layer keyed on the
// external reference and invalidated on every status write.
type TransactionServiceImpl struct {
	txRepo   ports.TransactionRepository
	cache    ports.RecordCache
	gateway  ports.GatewayClient
	creds    ports.CredentialResolver
	realtime ports.RealtimePublisher
	log      zerolog.Logger
}

// NewTransactionService creates a new TransactionServiceImpl.
func NewTransactionService(
	txRepo ports.TransactionRepository,
	cache ports.RecordCache,
	gateway ports.GatewayClient,
	creds ports.CredentialResolver,
	realtime ports.RealtimePublisher,
	log zerolog.Logger,
) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		txRepo:   txRepo,
		cache:    cache,
		gateway:  gateway,
		creds:    creds,
		realtime: realtime,
		log:      log.With().Str("component", "transaction_service").Logger(),
	}
}

// CreateOrGet records a transfer, deduplicating on the external reference.
func (s *TransactionServiceImpl) CreateOrGet(ctx context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, error) {
	stored, existed, err := s.txRepo.CreateOrGet(ctx, record)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist transaction: %w", err))
	}
	if existed {
		s.log.Info().Str("reference", record.Reference).Msg("Transaction reference already recorded, returning existing record")
	}
	s.cacheRecord(ctx, stored)
	return stored, nil
}

// UpdateStatus moves a record forward through the status lifecycle. Writes
// that would regress a record (Successful back to Pending, or any move out
// of a terminal state) are rejected; re-applying the current status is a
// no-op so reconciliation can run repeatedly.
func (s *TransactionServiceImpl) UpdateStatus(ctx context.Context, reference string, status domain.TransactionStatus, raw []byte) error {
	record, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load transaction: %w", err))
	}
	if record == nil {
		return apperror.ErrNotFound("transaction")
	}
	if record.Status == status {
		return nil
	}
	if !record.Status.CanTransition(status) {
		s.log.Warn().
			Str("reference", reference).
			Str("from", string(record.Status)).
			Str("to", string(status)).
			Msg("Rejected status regression")
		return apperror.ErrInvalidStatusTransition(string(record.Status), string(status))
	}
	return s.writeStatus(ctx, reference, status, raw)
}

// ForceStatus overwrites a record's status without the transition guard.
// It exists for explicit operator corrections only.
func (s *TransactionServiceImpl) ForceStatus(ctx context.Context, reference string, status domain.TransactionStatus) error {
	record, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load transaction: %w", err))
	}
	if record == nil {
		return apperror.ErrNotFound("transaction")
	}
	s.log.Warn().
		Str("reference", reference).
		Str("from", string(record.Status)).
		Str("to", string(status)).
		Msg("Forcing transaction status")
	return s.writeStatus(ctx, reference, status, nil)
}

func (s *TransactionServiceImpl) writeStatus(ctx context.Context, reference string, status domain.TransactionStatus, raw []byte) error {
	if err := s.txRepo.UpdateStatus(ctx, reference, status, raw); err != nil {
		return apperror.InternalError(fmt.Errorf("update status: %w", err))
	}
	if err := s.cache.Invalidate(ctx, reference); err != nil {
		s.log.Warn().Err(err).Str("reference", reference).Msg("Cache invalidation failed")
	}
	s.publishStatus(ctx, reference, status)
	return nil
}

// Reconcile queries the gateway for the transfer's current status and
// applies it to the stored record. Terminal records are returned as-is
// without a gateway call.
func (s *TransactionServiceImpl) Reconcile(ctx context.Context, reference string) (*domain.TransactionRecord, error) {
	record, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load transaction: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	if record.Status.IsTerminal() {
		return record, nil
	}

	token, err := s.creds.ResolveToken(ctx)
	if err != nil {
		return nil, err
	}
	status, err := s.gateway.TransferStatus(ctx, token, reference)
	if err != nil {
		var gwErr *ports.GatewayError
		if errors.As(err, &gwErr) {
			return nil, mapGatewayError(gwErr)
		}
		return nil, apperror.InternalError(err)
	}

	mapped := domain.MapGatewayStatus(status.Status)
	if mapped == record.Status {
		return record, nil
	}
	if !record.Status.CanTransition(mapped) {
		s.log.Warn().
			Str("reference", reference).
			Str("stored", string(record.Status)).
			Str("gateway", string(mapped)).
			Msg("Gateway reported a regressing status, keeping stored state")
		return record, nil
	}
	if err := s.writeStatus(ctx, reference, mapped, status.Raw); err != nil {
		return nil, err
	}

	record.Status = mapped
	if len(status.Raw) > 0 {
		record.RawResponse = status.Raw
	}
	record.UpdatedAt = time.Now().UTC()
	return record, nil
}

// GetByReference serves reads from the cache when possible and falls back
// to Postgres, repopulating the cache on the way out.
func (s *TransactionServiceImpl) GetByReference(ctx context.Context, reference string) (*domain.TransactionRecord, error) {
	if cached, err := s.cache.Get(ctx, reference); err != nil {
		s.log.Warn().Err(err).Str("reference", reference).Msg("Cache read failed")
	} else if cached != nil {
		var record domain.TransactionRecord
		if err := json.Unmarshal(cached, &record); err == nil {
			return &record, nil
		}
		s.log.Warn().Str("reference", reference).Msg("Discarding unreadable cache entry")
	}

	record, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load transaction: %w", err))
	}
	if record == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	s.cacheRecord(ctx, record)
	return record, nil
}

// ListByWallet returns a wallet's transfer history, newest first.
func (s *TransactionServiceImpl) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.TransactionRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	records, err := s.txRepo.ListByWallet(ctx, walletID, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return records, nil
}

func (s *TransactionServiceImpl) cacheRecord(ctx context.Context, record *domain.TransactionRecord) {
	payload, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, record.Reference, payload, recordCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("reference", record.Reference).Msg("Cache write failed")
	}
}

func (s *TransactionServiceImpl) publishStatus(ctx context.Context, reference string, status domain.TransactionStatus) {
	if s.realtime == nil {
		return
	}
	if err := s.realtime.Publish(ctx, ports.RealtimeEvent{
		Event:    "status_changed",
		Entity:   "transaction",
		EntityID: reference,
		Field:    string(status),
	}); err != nil {
		s.log.Debug().Err(err).Msg("Realtime publish failed")
	}
}

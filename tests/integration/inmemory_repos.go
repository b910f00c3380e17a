package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"virtual-payment-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Bank Repo ---

type inMemoryBankRepo struct {
	mu    sync.RWMutex
	banks map[uuid.UUID]*domain.Bank
}

func newInMemoryBankRepo() *inMemoryBankRepo {
	return &inMemoryBankRepo{banks: make(map[uuid.UUID]*domain.Bank)}
}

// Create is insert-only, like the real table's constraints. Reusing an id
// or name is an error so callers cannot lean on upsert behavior.
func (r *inMemoryBankRepo) Create(ctx context.Context, bank *domain.Bank) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.banks[bank.ID]; ok {
		return fmt.Errorf("insert bank: duplicate id %s", bank.ID)
	}
	for _, b := range r.banks {
		if b.Name == bank.Name {
			return fmt.Errorf("insert bank: duplicate name %q", bank.Name)
		}
	}
	r.banks[bank.ID] = bank
	return nil
}

func (r *inMemoryBankRepo) Update(ctx context.Context, bank *domain.Bank) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.banks[bank.ID]; !ok {
		return fmt.Errorf("update bank: no row for id %s", bank.ID)
	}
	r.banks[bank.ID] = bank
	return nil
}

func (r *inMemoryBankRepo) GetByName(ctx context.Context, name string) (*domain.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.banks {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, nil
}

func (r *inMemoryBankRepo) GetByCode(ctx context.Context, code string) (*domain.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.banks {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, nil
}

func (r *inMemoryBankRepo) List(ctx context.Context) ([]domain.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Bank, 0, len(r.banks))
	for _, b := range r.banks {
		out = append(out, *b)
	}
	return out, nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[w.ID] = w
	return nil
}

// Read methods return copies so callers holding a wallet across a balance
// write never observe a concurrent mutation.
func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetFirst(ctx context.Context) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		cp := *w
		return &cp, nil
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.Balance = balance
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryWalletRepo) UpdateReservation(ctx context.Context, wallet *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[wallet.ID]; !ok {
		return fmt.Errorf("wallet not found")
	}
	r.wallets[wallet.ID] = wallet
	return nil
}

func (r *inMemoryWalletRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wallets, id)
	return nil
}

// --- In-Memory Pin Repo ---

type inMemoryPinRepo struct {
	mu   sync.RWMutex
	pins map[uuid.UUID]*domain.PaymentPin // keyed by wallet ID
}

func newInMemoryPinRepo() *inMemoryPinRepo {
	return &inMemoryPinRepo{pins: make(map[uuid.UUID]*domain.PaymentPin)}
}

func (r *inMemoryPinRepo) Upsert(ctx context.Context, pin *domain.PaymentPin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pins[pin.WalletID] = pin
	return nil
}

func (r *inMemoryPinRepo) GetByWalletID(ctx context.Context, walletID uuid.UUID) (*domain.PaymentPin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pins[walletID]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *inMemoryPinRepo) DeleteByWalletID(ctx context.Context, walletID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pins, walletID)
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu      sync.RWMutex
	records []*domain.TransactionRecord
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) CreateOrGet(ctx context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.Reference == record.Reference {
			cp := *existing
			return &cp, true, nil
		}
	}
	stored := *record
	r.records = append(r.records, &stored)
	cp := stored
	return &cp, false, nil
}

func (r *inMemoryTransactionRepo) CreateOrGetTx(ctx context.Context, tx pgx.Tx, record *domain.TransactionRecord) (*domain.TransactionRecord, bool, error) {
	return r.CreateOrGet(ctx, record)
}

func (r *inMemoryTransactionRepo) GetByReference(ctx context.Context, reference string) (*domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.records {
		if t.Reference == reference {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTransactionRepo) UpdateStatus(ctx context.Context, reference string, status domain.TransactionStatus, raw []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.records {
		if t.Reference == reference {
			t.Status = status
			if raw != nil {
				t.RawResponse = raw
			}
			t.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return fmt.Errorf("transaction not found")
}

func (r *inMemoryTransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.TransactionRecord
	for _, t := range r.records {
		if t.WalletID == walletID {
			matched = append(matched, *t)
		}
	}
	if offset >= len(matched) {
		return []domain.TransactionRecord{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

// --- In-Memory Settings Repo ---

type inMemorySettingsRepo struct {
	mu       sync.RWMutex
	settings map[string]*domain.Setting
}

func newInMemorySettingsRepo() *inMemorySettingsRepo {
	return &inMemorySettingsRepo{settings: make(map[string]*domain.Setting)}
}

func (r *inMemorySettingsRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[key]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *inMemorySettingsRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[key] = &domain.Setting{Key: key, Value: value}
	return nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transactions with a single mutex, standing in
// for the row lock PostgreSQL takes on SELECT FOR UPDATE. This keeps the
// concurrency tests deterministic: the sufficiency re-check and balance write
// inside a transaction can never interleave with another transaction's.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockedTx{mu: &t.mu}, nil
}

// lockedTx releases the transactor mutex exactly once, on whichever of
// Commit or Rollback runs first.
type lockedTx struct {
	noopTx
	mu   *sync.Mutex
	once sync.Once
}

func (t *lockedTx) Commit(ctx context.Context) error {
	t.once.Do(t.mu.Unlock)
	return nil
}

func (t *lockedTx) Rollback(ctx context.Context) error {
	t.once.Do(t.mu.Unlock)
	return nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

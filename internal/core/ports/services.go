package ports

import (
	"context"
	"encoding/json"
	"time"

	"virtual-payment-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// EncryptionService handles AES-256-GCM encryption/decryption of PIN
// material and stored secrets.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// HashService handles operator secret hashing (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// TokenService handles JWT token operations for the RPC surface.
type TokenService interface {
	Generate(accessKey string, roles []string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccessKey string
	Roles     []string
}

// CredentialProvider is one source in the layered token lookup.
type CredentialProvider interface {
	// TryResolve returns (token, true) when this source has a non-empty
	// value. A false second return means "not here, try the next source".
	TryResolve(ctx context.Context) (string, bool, error)
	// Name identifies the source in logs.
	Name() string
}

// CredentialResolver walks the provider chain and returns the first hit.
type CredentialResolver interface {
	ResolveToken(ctx context.Context) (string, error)
}

// BankDirectory maps bank display names to settlement codes.
type BankDirectory interface {
	Upsert(ctx context.Context, name, code string) (*domain.Bank, error)
	LookupCode(ctx context.Context, name string) (string, error)
	Sync(ctx context.Context) (int, error)
}

// AccountResolver verifies a destination account against a bank.
type AccountResolver interface {
	ResolveAccount(ctx context.Context, bankName, accountNumber string) (*AccountResolution, error)
}

// DebitValidation is the outcome of a successful pre-debit check.
type DebitValidation struct {
	Wallet        *domain.Wallet
	AccountNumber string
}

// WalletLedger owns wallet balances. Debits commit only after a confirmed
// external transfer; the commit re-checks sufficiency under a row lock.
type WalletLedger interface {
	GetBalance(ctx context.Context, walletID *uuid.UUID) (*domain.Wallet, error)
	ValidateDebit(ctx context.Context, wallet *domain.Wallet, amount decimal.Decimal) (*DebitValidation, error)
	CommitDebit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, record *domain.TransactionRecord) (decimal.Decimal, *domain.TransactionRecord, error)
	Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}

// WalletLifecycle creates and destroys wallets via the gateway's reserved
// account API, notifying the admin system on both events.
type WalletLifecycle interface {
	CreateWallet(ctx context.Context, name, bvn, description string) (*domain.Wallet, error)
	DeleteWallet(ctx context.Context, id uuid.UUID) error
}

// PinAuthorizer verifies transaction PINs scoped to a wallet and the
// caller's role set.
type PinAuthorizer interface {
	Verify(ctx context.Context, walletID uuid.UUID, attempt string, callerRoles []string) error
	SetPin(ctx context.Context, walletID uuid.UUID, pin string) error
	VerifyAndUpdate(ctx context.Context, walletID uuid.UUID, currentPin, newPin string, callerRoles []string) error
}

// PaymentRequest is the orchestrator's input.
type PaymentRequest struct {
	WalletID           *uuid.UUID // nil = first available wallet
	Amount             decimal.Decimal
	DestinationBank    string
	DestinationAccount string
	Narration          string
	Pin                string
	CallerRoles        []string
}

// PaymentResult is the orchestrator's success output.
type PaymentResult struct {
	NewBalance decimal.Decimal
	Record     *domain.TransactionRecord
	Transfer   *TransferResponse
	WalletUsed string
	Message    string
}

// PaymentOrchestrator coordinates authorization, balance reservation, the
// external transfer call, balance commit, and record persistence.
type PaymentOrchestrator interface {
	MakePayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

// TransactionLedger is the idempotent record of transfer attempts.
type TransactionLedger interface {
	CreateOrGet(ctx context.Context, record *domain.TransactionRecord) (*domain.TransactionRecord, error)
	UpdateStatus(ctx context.Context, reference string, status domain.TransactionStatus, raw []byte) error
	// ForceStatus bypasses the monotonic transition guard for explicit correction.
	ForceStatus(ctx context.Context, reference string, status domain.TransactionStatus) error
	Reconcile(ctx context.Context, reference string) (*domain.TransactionRecord, error)
	GetByReference(ctx context.Context, reference string) (*domain.TransactionRecord, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.TransactionRecord, error)
}

// AuthService exchanges operator credentials for a bearer token.
type AuthService interface {
	IssueToken(ctx context.Context, accessKey, secret string) (string, time.Time, []string, error)
}

// RecordCache is the fast-path cache of transaction records by external
// reference. Misses are cheap; Postgres remains the source of truth.
type RecordCache interface {
	Get(ctx context.Context, reference string) ([]byte, error)
	Set(ctx context.Context, reference string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, reference string) error
}

// RealtimeEvent is a fire-and-forget notification to observing clients.
type RealtimeEvent struct {
	Event    string          `json:"event"`
	Entity   string          `json:"entity"`
	EntityID string          `json:"entity_id"`
	Field    string          `json:"field,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// RealtimePublisher fans events out to any observing client session.
type RealtimePublisher interface {
	Publish(ctx context.Context, event RealtimeEvent) error
}

// AdminNotifier informs the administrative system of wallet lifecycle
// events. Failures are logged by implementations, never propagated into
// the calling flow.
type AdminNotifier interface {
	WalletCreated(ctx context.Context, wallet *domain.Wallet) error
	WalletDeleted(ctx context.Context, wallet *domain.Wallet) error
}

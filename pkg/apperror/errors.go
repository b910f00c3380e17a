package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// FromError extracts an *AppError from an error chain.
func FromError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// ---- Configuration (CFG) ----

// ErrTokenNotFound signals that no credential source yielded a bearer token.
// Terminal: callers must not retry until an operator fixes the configuration.
func ErrTokenNotFound() *AppError {
	return New("CFG_001", "Gateway bearer token not found in any configured source", http.StatusInternalServerError)
}

// ---- Validation (VAL) ----

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ErrValidationFailed lists every violated field, not just the first.
func ErrValidationFailed(violations []string) *AppError {
	return New("VAL_001", "Request validation failed: "+strings.Join(violations, ", "), http.StatusBadRequest)
}

func ErrInvalidAccountNumber(accountNumber string) *AppError {
	return New("VAL_002", fmt.Sprintf("Invalid account number format: %q", accountNumber), http.StatusBadRequest)
}

// ---- Payment Business Logic (PAY) ----

// ErrInsufficientFunds carries both figures for user-facing messaging.
func ErrInsufficientFunds(walletName, balance, requested string) *AppError {
	return New("PAY_001", fmt.Sprintf(
		"Insufficient funds in virtual wallet %s. Current balance is %s, but you are trying to transfer %s.",
		walletName, balance, requested,
	), http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Payment amount must be greater than zero", http.StatusBadRequest)
}

func ErrNoWalletFound() *AppError {
	return New("PAY_003", "No virtual wallets found. Please create a virtual wallet first.", http.StatusNotFound)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrDuplicateCode(code, ownerName string) *AppError {
	return New("PAY_005", fmt.Sprintf("Bank with code %s already exists (%s)", code, ownerName), http.StatusConflict)
}

func ErrWalletExists() *AppError {
	return New("PAY_006", "Wallet already exists for this record", http.StatusConflict)
}

func ErrDuplicateReference(reference string) *AppError {
	return New("PAY_007", fmt.Sprintf("Transaction %s already recorded", reference), http.StatusConflict)
}

func ErrInvalidStatusTransition(from, to string) *AppError {
	return New("PAY_008", fmt.Sprintf("Cannot move transaction from %s to %s", from, to), http.StatusConflict)
}

// ---- PIN Authorization (PIN) ----

func ErrIncorrectPin() *AppError {
	return New("PIN_001", "Incorrect PIN. Please try again.", http.StatusForbidden)
}

func ErrNoPinConfigured() *AppError {
	return New("PIN_002", "No PIN found for this wallet. Please set up a PIN first.", http.StatusBadRequest)
}

func ErrPermissionDenied(role string) *AppError {
	return New("PIN_003", fmt.Sprintf("You don't have permission to access this wallet. Required role: %s", role), http.StatusForbidden)
}

func ErrPinDecryption(err error) *AppError {
	return Wrap("PIN_004", "Unable to verify PIN. Please contact administrator or reset your PIN.", http.StatusInternalServerError, err)
}

// ---- Gateway (GW) ----

// ErrGateway surfaces the provider's own message when it supplied one.
func ErrGateway(status int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("Payment failed with status %d", status)
	}
	return New("GW_001", message, http.StatusBadGateway)
}

func ErrBankCodeUnresolved(bankName string) *AppError {
	return New("GW_002", fmt.Sprintf("Bank code not found for: %s", bankName), http.StatusUnprocessableEntity)
}

func ErrEmptyAccountName() *AppError {
	return New("GW_003", "Unable to retrieve account name", http.StatusBadGateway)
}

func ErrResolutionFailed(status int) *AppError {
	return New("GW_004", fmt.Sprintf("Verification failed with status code %d", status), http.StatusBadGateway)
}

// ---- Network (NET) ----

func ErrNetwork(err error) *AppError {
	return Wrap("NET_001", "Network error occurred", http.StatusBadGateway, err)
}

func ErrTimeout() *AppError {
	return New("NET_002", "Payment request timed out", http.StatusGatewayTimeout)
}

func ErrMaxRetriesExceeded() *AppError {
	return New("NET_003", "Max retries exceeded", http.StatusBadGateway)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an unexpected fault; detail stays in logs, not clients.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", "Encryption service failure", http.StatusInternalServerError, err)
}

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"virtual-payment-gateway/config"
	"virtual-payment-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient abstracts the underlying HTTP client for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the settlement gateway's banking API. Each method issues
// exactly one HTTP request; callers own the retry policy.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a gateway client with the configured request timeout.
func NewClient(cfg config.GatewayConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log.With().Str("component", "gateway_client").Logger(),
	}
}

// NewClientWithHTTP creates a gateway client over a caller-supplied HTTP client.
func NewClientWithHTTP(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient, log: log}
}

// envelope is the gateway's standard response wrapper. Some endpoints put
// the payload at the root instead of under data; callers fall back.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func classifyTransportError(err error) *ports.GatewayError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ports.GatewayError{Kind: ports.GatewayErrTimeout, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ports.GatewayError{Kind: ports.GatewayErrTimeout, Err: err}
	}
	return &ports.GatewayError{Kind: ports.GatewayErrConnection, Err: err}
}

// do sends the request and returns the raw body when the response status is
// one of okStatuses (200 when none given). Other statuses and transport
// faults come back as *ports.GatewayError.
func (c *Client) do(req *http.Request, token string, okStatuses ...int) ([]byte, error) {
	if len(okStatuses) == 0 {
		okStatuses = []int{http.StatusOK}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		gwErr := classifyTransportError(err)
		c.log.Warn().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Err(err).
			Msg("Gateway request failed")
		return nil, gwErr
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Gateway response received")

	accepted := false
	for _, s := range okStatuses {
		if resp.StatusCode == s {
			accepted = true
			break
		}
	}
	if !accepted {
		gwErr := &ports.GatewayError{Kind: ports.GatewayErrStatus, Status: resp.StatusCode}
		var env envelope
		if readErr == nil && json.Unmarshal(body, &env) == nil {
			gwErr.Message = env.Message
		}
		return nil, gwErr
	}
	if readErr != nil {
		return nil, &ports.GatewayError{Kind: ports.GatewayErrBadBody, Err: readErr}
	}
	return body, nil
}

// dataOrRoot unwraps the envelope's data field, falling back to the whole
// body when the gateway omits the wrapper.
func dataOrRoot(body []byte) json.RawMessage {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return env.Data
	}
	return body
}

// ListBanks fetches the gateway's bank directory.
func (c *Client) ListBanks(ctx context.Context, token string) ([]ports.BankEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/core/banks", nil)
	if err != nil {
		return nil, fmt.Errorf("build list banks request: %w", err)
	}

	body, err := c.do(req, token)
	if err != nil {
		return nil, err
	}

	var banks []ports.BankEntry
	if err := json.Unmarshal(dataOrRoot(body), &banks); err != nil {
		return nil, &ports.GatewayError{Kind: ports.GatewayErrBadBody, Err: err}
	}
	return banks, nil
}

// ResolveAccount looks up the holder of a destination account.
func (c *Client) ResolveAccount(ctx context.Context, token, bankCode, accountNumber string) (*ports.AccountResolution, error) {
	q := url.Values{}
	q.Set("bankCode", bankCode)
	q.Set("accountNumber", accountNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/core/bank/resolve?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build resolve request: %w", err)
	}

	body, err := c.do(req, token)
	if err != nil {
		return nil, err
	}

	var resolution ports.AccountResolution
	if err := json.Unmarshal(dataOrRoot(body), &resolution); err != nil {
		return nil, &ports.GatewayError{Kind: ports.GatewayErrBadBody, Err: err}
	}
	return &resolution, nil
}

// Transfer submits an outbound transfer.
func (c *Client) Transfer(ctx context.Context, token string, transfer ports.TransferRequest) (*ports.TransferResponse, error) {
	payload, err := json.Marshal(transfer)
	if err != nil {
		return nil, fmt.Errorf("marshal transfer payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/virtual/transfers", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build transfer request: %w", err)
	}

	body, err := c.do(req, token)
	if err != nil {
		return nil, err
	}

	data := dataOrRoot(body)
	var result ports.TransferResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &ports.GatewayError{Kind: ports.GatewayErrBadBody, Err: err}
	}
	result.Raw = data
	return &result, nil
}

// statusPayload tolerates the two status field names the gateway uses.
type statusPayload struct {
	Status            string `json:"status"`
	TransactionStatus string `json:"transactionStatus"`
}

// TransferStatus checks the state of a previously submitted transfer.
func (c *Client) TransferStatus(ctx context.Context, token, reference string) (*ports.TransferStatusResponse, error) {
	q := url.Values{}
	q.Set("transactionReference", reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/virtual/transfers/status?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}

	body, err := c.do(req, token)
	if err != nil {
		return nil, err
	}

	data := dataOrRoot(body)
	var payload statusPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &ports.GatewayError{Kind: ports.GatewayErrBadBody, Err: err}
	}

	status := payload.Status
	if status == "" {
		status = payload.TransactionStatus
	}
	return &ports.TransferStatusResponse{Status: status, Raw: data}, nil
}

// CreateReservedAccount provisions the backing account for a new wallet.
func (c *Client) CreateReservedAccount(ctx context.Context, token string, reservation ports.ReservedAccountRequest) (*ports.ReservedAccountResponse, error) {
	payload, err := json.Marshal(reservation)
	if err != nil {
		return nil, fmt.Errorf("marshal reservation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/virtual/accounts/reserved", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build reservation request: %w", err)
	}

	// The reservation endpoint answers 201 on successful creation.
	body, err := c.do(req, token, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var account ports.ReservedAccountResponse
	if err := json.Unmarshal(dataOrRoot(body), &account); err != nil {
		return nil, &ports.GatewayError{Kind: ports.GatewayErrBadBody, Err: err}
	}
	return &account, nil
}

package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ecomstack/payment-gateway/pkg/httpclient"
)

// --- Wire types ---
//
// Field names follow the Razorpay REST API. Only the fields this adapter
// reads or writes are modeled; everything else in the provider payloads is
// ignored on decode.

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Method   string            `json:"method,omitempty"`
	UPIID    string            `json:"upi_id,omitempty"`
	Token    string            `json:"token,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResource struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	ShortURL string `json:"short_url,omitempty"`
}

type refundRequest struct {
	Amount int64             `json:"amount"`
	Notes  map[string]string `json:"notes,omitempty"`
}

type refundResource struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type paymentResource struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type cardDetails struct {
	Number      string `json:"number"`
	Name        string `json:"name,omitempty"`
	ExpiryMonth string `json:"expiry_month,omitempty"`
	ExpiryYear  string `json:"expiry_year,omitempty"`
	CVV         string `json:"cvv,omitempty"`
}

type tokenRequest struct {
	Method string      `json:"method"`
	Card   cardDetails `json:"card"`
}

type tokenResource struct {
	ID   string `json:"id"`
	Card struct {
		Last4       string `json:"last4"`
		Network     string `json:"network"`
		ExpiryMonth string `json:"expiry_month"`
		ExpiryYear  string `json:"expiry_year"`
	} `json:"card"`
}

// APIError is a business error reported by the Razorpay API.
type APIError struct {
	HTTPStatus  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("razorpay api error (%d/%s): %s", e.HTTPStatus, e.Code, e.Description)
}

// Client is a thin typed client for the Razorpay REST API. Calls go through
// the shared retrying HTTP client wrapped in a circuit breaker.
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *httpclient.CircuitBreakerClient
	logger    *slog.Logger
}

// NewClient builds a Razorpay API client from the given configuration.
func NewClient(cfg *Config, logger *slog.Logger) *Client {
	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.Timeout

	base := httpclient.New(httpCfg)
	breaker := httpclient.NewCircuitBreakerClient(
		base,
		httpclient.DefaultCircuitBreakerConfig("razorpay"),
		logger,
	)

	return &Client{
		baseURL:   cfg.BaseURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		http:      breaker,
		logger:    logger,
	}
}

// CreateOrder creates a provider order for the given minor-unit amount.
func (c *Client) CreateOrder(ctx context.Context, req *orderRequest) (*orderResource, error) {
	var out orderResource
	if err := c.do(ctx, http.MethodPost, "/v1/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRefund refunds (part of) a captured payment.
func (c *Client) CreateRefund(ctx context.Context, paymentID string, req *refundRequest) (*refundResource, error) {
	var out refundResource
	path := fmt.Sprintf("/v1/payments/%s/refund", paymentID)
	if err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchPayment retrieves the current state of a payment.
func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*paymentResource, error) {
	var out paymentResource
	path := fmt.Sprintf("/v1/payments/%s", paymentID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateToken tokenizes a payment instrument with the provider.
func (c *Client) CreateToken(ctx context.Context, req *tokenRequest) (*tokenResource, error) {
	var out tokenResource
	if err := c.do(ctx, http.MethodPost, "/v1/tokens", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("razorpay %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}

	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode razorpay %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// apiError translates a non-2xx response into an APIError when the body
// carries the provider's error envelope, falling back to a StatusError.
func (c *Client) apiError(resp *http.Response) error {
	statusErr := httpclient.NewStatusError(resp)

	var envelope struct {
		Error struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	}
	if json.Unmarshal(statusErr.Body, &envelope) == nil && envelope.Error.Description != "" {
		return &APIError{
			HTTPStatus:  statusErr.Status,
			Code:        envelope.Error.Code,
			Description: envelope.Error.Description,
		}
	}
	return statusErr
}

// failureMessage extracts the human-readable message surfaced to callers in
// FAILED responses: the provider's own description when available, the
// transport error otherwise.
func failureMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Description
	}
	return err.Error()
}

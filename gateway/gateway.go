// Package gateway defines the provider-agnostic payment gateway contract:
// the request/response DTOs, the canonical status vocabulary every provider's
// raw statuses are normalized into, and the Gateway interface the platform's
// payment service layer consumes. Concrete adapters live in subpackages
// (razorpay, mock) and are selected through the Registry.
package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the canonical, provider-independent payment state.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentSuccess    PaymentStatus = "SUCCESS"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

// Terminal reports whether the status is final. PENDING and PROCESSING are
// transient and only reachable before a terminal state.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentSuccess, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// RefundStatus is the canonical, provider-independent refund state.
type RefundStatus string

const (
	RefundPending    RefundStatus = "PENDING"
	RefundProcessing RefundStatus = "PROCESSING"
	RefundSuccess    RefundStatus = "SUCCESS"
	RefundFailed     RefundStatus = "FAILED"
)

// Terminal reports whether the refund status is final.
func (s RefundStatus) Terminal() bool {
	return s == RefundSuccess || s == RefundFailed
}

// MethodType identifies how the customer pays.
type MethodType string

const (
	MethodCard       MethodType = "CARD"
	MethodUPI        MethodType = "UPI"
	MethodWallet     MethodType = "WALLET"
	MethodNetBanking MethodType = "NET_BANKING"
)

// PaymentRequest carries everything an adapter needs to create a payment
// with its provider. Amount is in major currency units; adapters convert to
// the provider's minor units.
type PaymentRequest struct {
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Currency string          `json:"currency" validate:"required,len=3"`
	Method   MethodType      `json:"method" validate:"required,oneof=CARD UPI WALLET NET_BANKING"`

	// Method-specific fields.
	UPIID     string `json:"upi_id,omitempty"`
	CardToken string `json:"card_token,omitempty"`

	// OrderID is the caller's order reference, used as the provider receipt
	// and idempotency anchor when present.
	OrderID string `json:"order_id,omitempty"`
}

// PaymentResponse is the normalized result of a payment operation. Exactly
// one of the success fields or ErrorMessage is meaningfully populated.
type PaymentResponse struct {
	GatewayOrderID   string        `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string        `json:"gateway_payment_id,omitempty"`
	Status           PaymentStatus `json:"status"`
	PaymentLink      string        `json:"payment_link,omitempty"`
	QRCode           string        `json:"qr_code,omitempty"`
	ErrorMessage     string        `json:"error_message,omitempty"`
}

// RefundRequest carries the parameters for refunding a settled payment.
type RefundRequest struct {
	GatewayPaymentID string          `json:"gateway_payment_id" validate:"required"`
	Amount           decimal.Decimal `json:"amount" validate:"required"`
	Currency         string          `json:"currency" validate:"required,len=3"`
	Reason           string          `json:"reason,omitempty"`
}

// RefundResponse is the normalized result of a refund operation.
type RefundResponse struct {
	GatewayRefundID string       `json:"gateway_refund_id,omitempty"`
	Status          RefundStatus `json:"status"`
	ErrorMessage    string       `json:"error_message,omitempty"`
}

// TokenizeRequest carries raw payment method details for provider-side
// tokenization. The raw instrument number never leaves the adapter except
// toward the provider.
type TokenizeRequest struct {
	CardNumber  string `json:"card_number" validate:"required,min=4"`
	CardHolder  string `json:"card_holder,omitempty"`
	ExpiryMonth string `json:"expiry_month,omitempty"`
	ExpiryYear  string `json:"expiry_year,omitempty"`
	CVV         string `json:"cvv,omitempty"`
}

// TokenizeResponse returns the opaque provider token plus display-safe data.
// MaskedCard retains at most the last four digits of the instrument.
type TokenizeResponse struct {
	Token       string `json:"token"`
	MaskedCard  string `json:"masked_card,omitempty"`
	Network     string `json:"network,omitempty"`
	ExpiryMonth string `json:"expiry_month,omitempty"`
	ExpiryYear  string `json:"expiry_year,omitempty"`
}

// Gateway is the contract every payment provider adapter implements.
//
// ProcessPayment, ProcessRefund and GetPaymentStatus never fail with a Go
// error: provider, transport and validation problems are folded into the
// returned response with a FAILED status and a populated ErrorMessage, so
// callers always receive a structured result they can record. Tokenization
// is the deliberate exception: its failure blocks a save operation rather
// than recording an outcome, so it surfaces as an error.
type Gateway interface {
	// Name returns the static provider identifier (e.g. "RAZORPAY"),
	// used for routing and logging.
	Name() string

	// ProcessPayment creates a payment with the provider.
	ProcessPayment(ctx context.Context, req *PaymentRequest) *PaymentResponse

	// ProcessRefund refunds a previously settled payment.
	ProcessRefund(ctx context.Context, req *RefundRequest) *RefundResponse

	// TokenizePaymentMethod exchanges raw method details for an opaque token.
	TokenizePaymentMethod(ctx context.Context, req *TokenizeRequest) (*TokenizeResponse, error)

	// GetPaymentStatus fetches and normalizes the current provider-side
	// status of a transaction. On failure the response echoes the supplied
	// transaction id so it can be correlated with the original request.
	GetPaymentStatus(ctx context.Context, transactionID string) *PaymentResponse

	// VerifyWebhookSignature reports whether signature authenticates the
	// exact raw payload bytes. It never fails open: any internal problem
	// during verification yields false.
	VerifyWebhookSignature(payload []byte, signature string) bool
}

// FailedPayment builds the uniform failure shape for payment operations.
func FailedPayment(errMsg string) *PaymentResponse {
	return &PaymentResponse{Status: PaymentFailed, ErrorMessage: errMsg}
}

// FailedRefund builds the uniform failure shape for refund operations.
func FailedRefund(errMsg string) *RefundResponse {
	return &RefundResponse{Status: RefundFailed, ErrorMessage: errMsg}
}

// MaskInstrument reduces an instrument number to its display-safe form:
// "****" plus the last four characters. Inputs shorter than four characters
// yield an empty string rather than leaking the whole value.
func MaskInstrument(number string) string {
	if len(number) < 4 {
		return ""
	}
	return "****" + number[len(number)-4:]
}

// Package mock provides a payment gateway that always succeeds.
// It is intended for development and testing purposes.
package mock

import (
	"context"

	"github.com/google/uuid"

	"github.com/ecomstack/payment-gateway/gateway"
	apperrors "github.com/ecomstack/payment-gateway/pkg/errors"
)

// ProviderName is the routing identifier for the mock gateway.
const ProviderName = "MOCK"

// Gateway is a mock payment gateway. Every payment, refund and tokenization
// succeeds immediately, and webhook signatures verify against the configured
// secret using plain equality so tests can forge deliveries trivially.
type Gateway struct {
	webhookSecret string
}

// New creates a mock gateway that accepts webhooks signed with secret.
func New(webhookSecret string) *Gateway {
	return &Gateway{webhookSecret: webhookSecret}
}

// Name returns the provider name.
func (g *Gateway) Name() string {
	return ProviderName
}

// ProcessPayment simulates a payment that always succeeds.
func (g *Gateway) ProcessPayment(_ context.Context, req *gateway.PaymentRequest) *gateway.PaymentResponse {
	if req == nil {
		return gateway.FailedPayment("payment request is nil")
	}

	id := "mock_pay_" + uuid.NewString()
	resp := &gateway.PaymentResponse{
		GatewayOrderID:   "mock_order_" + uuid.NewString(),
		GatewayPaymentID: id,
		Status:           gateway.PaymentSuccess,
	}
	if req.Method == gateway.MethodUPI {
		resp.PaymentLink = "https://mock.example/pay/" + id
	}
	return resp
}

// ProcessRefund simulates a refund that always succeeds.
func (g *Gateway) ProcessRefund(_ context.Context, req *gateway.RefundRequest) *gateway.RefundResponse {
	if req == nil {
		return gateway.FailedRefund("refund request is nil")
	}

	return &gateway.RefundResponse{
		GatewayRefundID: "mock_ref_" + uuid.NewString(),
		Status:          gateway.RefundSuccess,
	}
}

// TokenizePaymentMethod returns a fresh token for any instrument with a
// usable number.
func (g *Gateway) TokenizePaymentMethod(_ context.Context, req *gateway.TokenizeRequest) (*gateway.TokenizeResponse, error) {
	if req == nil || req.CardNumber == "" {
		return nil, apperrors.InvalidInput("card number is required")
	}

	return &gateway.TokenizeResponse{
		Token:       "mock_token_" + uuid.NewString(),
		MaskedCard:  gateway.MaskInstrument(req.CardNumber),
		Network:     "MockCard",
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
	}, nil
}

// GetPaymentStatus reports any known-looking transaction as successful.
func (g *Gateway) GetPaymentStatus(_ context.Context, transactionID string) *gateway.PaymentResponse {
	if transactionID == "" {
		return gateway.FailedPayment("transaction id is required")
	}

	return &gateway.PaymentResponse{
		GatewayOrderID:   transactionID,
		GatewayPaymentID: transactionID,
		Status:           gateway.PaymentSuccess,
	}
}

// VerifyWebhookSignature accepts signatures equal to the configured secret.
// An unset secret rejects everything.
func (g *Gateway) VerifyWebhookSignature(_ []byte, signature string) bool {
	return g.webhookSecret != "" && signature == g.webhookSecret
}

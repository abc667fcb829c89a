// Package razorpay implements the gateway contract for Razorpay. It
// translates platform requests into the provider's wire format, normalizes
// raw provider statuses, and authenticates inbound webhooks.
package razorpay

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ecomstack/payment-gateway/gateway"
	"github.com/ecomstack/payment-gateway/money"
	apperrors "github.com/ecomstack/payment-gateway/pkg/errors"
	"github.com/ecomstack/payment-gateway/pkg/logger"
	"github.com/ecomstack/payment-gateway/pkg/validator"
)

// ProviderName is the routing identifier for this adapter.
const ProviderName = "RAZORPAY"

// Adapter implements gateway.Gateway against the Razorpay API. The API
// client is injected at construction, so the adapter holds no lazily
// initialized state and is safe for concurrent use.
type Adapter struct {
	client        *Client
	webhookSecret string
	logger        *slog.Logger
}

// New creates a Razorpay adapter with an explicitly constructed client.
func New(client *Client, webhookSecret string, log *slog.Logger) *Adapter {
	return &Adapter{
		client:        client,
		webhookSecret: webhookSecret,
		logger:        log,
	}
}

// NewFromConfig wires a client from configuration and returns the adapter.
func NewFromConfig(cfg *Config, log *slog.Logger) *Adapter {
	return New(NewClient(cfg, log), cfg.WebhookSecret, log)
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// ProcessPayment creates a Razorpay order for the requested amount. It
// never returns an error: validation, transport and provider failures are
// folded into a FAILED response, and nothing may escape this boundary for a
// billing-relevant operation.
func (a *Adapter) ProcessPayment(ctx context.Context, req *gateway.PaymentRequest) (resp *gateway.PaymentResponse) {
	defer func() {
		if r := recover(); r != nil {
			a.log(ctx).Error("panic during payment processing", slog.Any("panic", r))
			resp = gateway.FailedPayment(fmt.Sprintf("payment processing failed: %v", r))
		}
	}()

	if req == nil {
		return gateway.FailedPayment("payment request is nil")
	}
	if err := validator.Validate(req); err != nil {
		return gateway.FailedPayment("invalid payment request: " + err.Error())
	}
	if !req.Amount.IsPositive() {
		return gateway.FailedPayment("amount must be greater than zero")
	}

	minor, err := money.MinorUnits(req.Amount, req.Currency)
	if err != nil {
		return gateway.FailedPayment("invalid payment amount: " + err.Error())
	}

	order := &orderRequest{
		Amount:   minor,
		Currency: strings.ToUpper(req.Currency),
		Receipt:  receiptFor(req),
	}

	switch req.Method {
	case gateway.MethodUPI:
		order.Method = "upi"
		order.UPIID = req.UPIID
	case gateway.MethodCard:
		order.Method = "card"
		order.Token = req.CardToken
	case gateway.MethodWallet:
		order.Method = "wallet"
	case gateway.MethodNetBanking:
		order.Method = "netbanking"
	}

	created, err := a.client.CreateOrder(ctx, order)
	if err != nil {
		a.log(ctx).Error("razorpay order creation failed",
			slog.String("receipt", order.Receipt),
			slog.String("error", err.Error()),
		)
		return gateway.FailedPayment(failureMessage(err))
	}

	a.log(ctx).Info("razorpay order created",
		slog.String("order_id", created.ID),
		slog.String("raw_status", created.Status),
	)

	resp = &gateway.PaymentResponse{
		GatewayOrderID: created.ID,
		// Razorpay uses the order id as the payment reference until the
		// payment settles.
		GatewayPaymentID: created.ID,
		Status:           mapPaymentStatus(created.Status),
	}
	if req.Method == gateway.MethodUPI && created.ShortURL != "" {
		resp.PaymentLink = created.ShortURL
	}
	return resp
}

// ProcessRefund refunds a captured payment. Same never-fails contract as
// ProcessPayment.
func (a *Adapter) ProcessRefund(ctx context.Context, req *gateway.RefundRequest) (resp *gateway.RefundResponse) {
	defer func() {
		if r := recover(); r != nil {
			a.log(ctx).Error("panic during refund processing", slog.Any("panic", r))
			resp = gateway.FailedRefund(fmt.Sprintf("refund processing failed: %v", r))
		}
	}()

	if req == nil {
		return gateway.FailedRefund("refund request is nil")
	}
	if err := validator.Validate(req); err != nil {
		return gateway.FailedRefund("invalid refund request: " + err.Error())
	}
	if !req.Amount.IsPositive() {
		return gateway.FailedRefund("amount must be greater than zero")
	}

	minor, err := money.MinorUnits(req.Amount, req.Currency)
	if err != nil {
		return gateway.FailedRefund("invalid refund amount: " + err.Error())
	}

	refund := &refundRequest{Amount: minor}
	if req.Reason != "" {
		refund.Notes = map[string]string{"reason": req.Reason}
	}

	created, err := a.client.CreateRefund(ctx, req.GatewayPaymentID, refund)
	if err != nil {
		a.log(ctx).Error("razorpay refund creation failed",
			slog.String("payment_id", req.GatewayPaymentID),
			slog.String("error", err.Error()),
		)
		return gateway.FailedRefund(failureMessage(err))
	}

	a.log(ctx).Info("razorpay refund created",
		slog.String("refund_id", created.ID),
		slog.String("raw_status", created.Status),
	)

	return &gateway.RefundResponse{
		GatewayRefundID: created.ID,
		Status:          mapRefundStatus(created.Status),
	}
}

// TokenizePaymentMethod exchanges raw card details for a provider token.
// Unlike payments and refunds this may fail hard: a tokenization failure
// blocks saving the instrument rather than recording an outcome.
func (a *Adapter) TokenizePaymentMethod(ctx context.Context, req *gateway.TokenizeRequest) (*gateway.TokenizeResponse, error) {
	if req == nil {
		return nil, apperrors.InvalidInput("tokenize request is nil")
	}
	if err := validator.Validate(req); err != nil {
		return nil, apperrors.InvalidInput("invalid tokenize request: " + err.Error())
	}

	token, err := a.client.CreateToken(ctx, &tokenRequest{
		Method: "card",
		Card: cardDetails{
			Number:      req.CardNumber,
			Name:        req.CardHolder,
			ExpiryMonth: req.ExpiryMonth,
			ExpiryYear:  req.ExpiryYear,
			CVV:         req.CVV,
		},
	})
	if err != nil {
		a.log(ctx).Error("razorpay tokenization failed", slog.String("error", err.Error()))
		return nil, apperrors.TokenizationFailed("razorpay tokenization failed", err)
	}

	masked := gateway.MaskInstrument(req.CardNumber)
	if token.Card.Last4 != "" {
		masked = "****" + token.Card.Last4
	}

	resp := &gateway.TokenizeResponse{
		Token:       token.ID,
		MaskedCard:  masked,
		Network:     token.Card.Network,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
	}
	if token.Card.ExpiryMonth != "" {
		resp.ExpiryMonth = token.Card.ExpiryMonth
	}
	if token.Card.ExpiryYear != "" {
		resp.ExpiryYear = token.Card.ExpiryYear
	}
	return resp, nil
}

// GetPaymentStatus fetches the current provider-side state of a payment.
// On failure the returned response still carries the caller's transaction
// id so it can always be correlated with the original request.
func (a *Adapter) GetPaymentStatus(ctx context.Context, transactionID string) (resp *gateway.PaymentResponse) {
	defer func() {
		if r := recover(); r != nil {
			a.log(ctx).Error("panic during status fetch", slog.Any("panic", r))
			resp = gateway.FailedPayment(fmt.Sprintf("status fetch failed: %v", r))
			resp.GatewayOrderID = transactionID
		}
	}()

	if transactionID == "" {
		return gateway.FailedPayment("transaction id is required")
	}

	payment, err := a.client.FetchPayment(ctx, transactionID)
	if err != nil {
		a.log(ctx).Error("razorpay payment fetch failed",
			slog.String("transaction_id", transactionID),
			slog.String("error", err.Error()),
		)
		resp = gateway.FailedPayment(failureMessage(err))
		resp.GatewayOrderID = transactionID
		return resp
	}

	return &gateway.PaymentResponse{
		GatewayOrderID:   transactionID,
		GatewayPaymentID: payment.ID,
		Status:           mapPaymentStatus(payment.Status),
	}
}

// VerifyWebhookSignature authenticates an inbound webhook payload. It
// operates on the exact bytes the provider signed and fails closed on any
// verification problem.
func (a *Adapter) VerifyWebhookSignature(payload []byte, signature string) bool {
	return verifySignature(payload, signature, a.webhookSecret)
}

func (a *Adapter) log(ctx context.Context) *slog.Logger {
	return logger.WithContext(logger.WithProvider(ctx, ProviderName), a.logger)
}

// receiptFor derives the provider receipt: the caller's order reference
// when present, otherwise a random id. Receipts double as idempotency
// anchors, so collisions must be vanishingly unlikely.
func receiptFor(req *gateway.PaymentRequest) string {
	if req.OrderID != "" {
		return req.OrderID
	}
	return "rcpt_" + uuid.NewString()
}

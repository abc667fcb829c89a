package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_PreservesResponses(t *testing.T) {
	stub := &stubGateway{
		name:         "METRICS_STUB",
		payment:      &PaymentResponse{GatewayOrderID: "order_1", Status: PaymentSuccess},
		refund:       &RefundResponse{GatewayRefundID: "rfnd_1", Status: RefundSuccess},
		verifyResult: true,
	}
	gw := WithMetrics(stub)

	assert.Equal(t, "METRICS_STUB", gw.Name())

	payment := gw.ProcessPayment(context.Background(), &PaymentRequest{
		Amount: decimal.RequireFromString("10.00"), Currency: "INR", Method: MethodUPI,
	})
	assert.Equal(t, PaymentSuccess, payment.Status)

	refund := gw.ProcessRefund(context.Background(), &RefundRequest{
		GatewayPaymentID: "pay_1", Amount: decimal.RequireFromString("10.00"),
	})
	assert.Equal(t, RefundSuccess, refund.Status)

	status := gw.GetPaymentStatus(context.Background(), "order_1")
	assert.Equal(t, "order_1", status.GatewayOrderID)

	assert.True(t, gw.VerifyWebhookSignature([]byte(`{}`), "sig"))
}

func TestWithMetrics_CountsOperations(t *testing.T) {
	stub := &stubGateway{
		name:    "METRICS_COUNT",
		payment: &PaymentResponse{Status: PaymentSuccess},
	}
	gw := WithMetrics(stub)

	before := testutil.ToFloat64(operationsTotal.WithLabelValues("METRICS_COUNT", "process_payment", "SUCCESS"))
	gw.ProcessPayment(context.Background(), &PaymentRequest{
		Amount: decimal.RequireFromString("10.00"), Currency: "INR", Method: MethodCard,
	})
	after := testutil.ToFloat64(operationsTotal.WithLabelValues("METRICS_COUNT", "process_payment", "SUCCESS"))

	assert.Equal(t, before+1, after)
}

func TestWithMetrics_TokenizeErrorOutcome(t *testing.T) {
	stub := &stubGateway{name: "METRICS_TOK", tokenizeErr: errors.New("boom")}
	gw := WithMetrics(stub)

	before := testutil.ToFloat64(operationsTotal.WithLabelValues("METRICS_TOK", "tokenize", "error"))
	_, err := gw.TokenizePaymentMethod(context.Background(), &TokenizeRequest{CardNumber: "4111111111111111"})
	require.Error(t, err)
	after := testutil.ToFloat64(operationsTotal.WithLabelValues("METRICS_TOK", "tokenize", "error"))

	assert.Equal(t, before+1, after)
}

func TestWithMetrics_WebhookOutcomeLabels(t *testing.T) {
	stub := &stubGateway{name: "METRICS_WH", verifyResult: false}
	gw := WithMetrics(stub)

	before := testutil.ToFloat64(operationsTotal.WithLabelValues("METRICS_WH", "verify_webhook", "rejected"))
	gw.VerifyWebhookSignature([]byte("payload"), "bad")
	after := testutil.ToFloat64(operationsTotal.WithLabelValues("METRICS_WH", "verify_webhook", "rejected"))

	assert.Equal(t, before+1, after)
}

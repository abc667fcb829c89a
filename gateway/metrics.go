package gateway

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_operations_total",
			Help: "Total number of payment gateway operations by outcome",
		},
		[]string{"provider", "operation", "status"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_operation_duration_seconds",
			Help:    "Payment gateway operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "operation"},
	)
)

// instrumentedGateway decorates a Gateway with Prometheus metrics.
type instrumentedGateway struct {
	next Gateway
}

// WithMetrics wraps a gateway so every operation records a per-provider
// counter and latency histogram. The wrapped gateway keeps the contract
// unchanged.
func WithMetrics(next Gateway) Gateway {
	return &instrumentedGateway{next: next}
}

func (g *instrumentedGateway) observe(operation, status string, start time.Time) {
	operationsTotal.WithLabelValues(g.next.Name(), operation, status).Inc()
	operationDuration.WithLabelValues(g.next.Name(), operation).Observe(time.Since(start).Seconds())
}

func (g *instrumentedGateway) Name() string {
	return g.next.Name()
}

func (g *instrumentedGateway) ProcessPayment(ctx context.Context, req *PaymentRequest) *PaymentResponse {
	start := time.Now()
	resp := g.next.ProcessPayment(ctx, req)
	g.observe("process_payment", string(resp.Status), start)
	return resp
}

func (g *instrumentedGateway) ProcessRefund(ctx context.Context, req *RefundRequest) *RefundResponse {
	start := time.Now()
	resp := g.next.ProcessRefund(ctx, req)
	g.observe("process_refund", string(resp.Status), start)
	return resp
}

func (g *instrumentedGateway) TokenizePaymentMethod(ctx context.Context, req *TokenizeRequest) (*TokenizeResponse, error) {
	start := time.Now()
	resp, err := g.next.TokenizePaymentMethod(ctx, req)
	status := "ok"
	if err != nil {
		status = "error"
	}
	g.observe("tokenize", status, start)
	return resp, err
}

func (g *instrumentedGateway) GetPaymentStatus(ctx context.Context, transactionID string) *PaymentResponse {
	start := time.Now()
	resp := g.next.GetPaymentStatus(ctx, transactionID)
	g.observe("get_payment_status", string(resp.Status), start)
	return resp
}

func (g *instrumentedGateway) VerifyWebhookSignature(payload []byte, signature string) bool {
	start := time.Now()
	ok := g.next.VerifyWebhookSignature(payload, signature)
	status := "rejected"
	if ok {
		status = "verified"
	}
	g.observe("verify_webhook", status, start)
	return ok
}

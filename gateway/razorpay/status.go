package razorpay

import (
	"strings"

	"github.com/ecomstack/payment-gateway/gateway"
)

// Static lookup tables from Razorpay's raw status vocabulary to the
// platform's canonical statuses. Raw strings not in a table normalize to
// PROCESSING so an unrecognized provider state is never mistaken for a
// terminal outcome.

var paymentStatuses = map[string]gateway.PaymentStatus{
	"CREATED":    gateway.PaymentPending,
	"AUTHORIZED": gateway.PaymentPending,
	"CAPTURED":   gateway.PaymentSuccess,
	"FAILED":     gateway.PaymentFailed,
	"REFUNDED":   gateway.PaymentRefunded,
}

var refundStatuses = map[string]gateway.RefundStatus{
	"PENDING":   gateway.RefundPending,
	"PROCESSED": gateway.RefundSuccess,
	"FAILED":    gateway.RefundFailed,
}

func mapPaymentStatus(raw string) gateway.PaymentStatus {
	if status, ok := paymentStatuses[strings.ToUpper(raw)]; ok {
		return status
	}
	return gateway.PaymentProcessing
}

func mapRefundStatus(raw string) gateway.RefundStatus {
	if status, ok := refundStatuses[strings.ToUpper(raw)]; ok {
		return status
	}
	return gateway.RefundProcessing
}

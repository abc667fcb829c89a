package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_Terminal(t *testing.T) {
	assert.True(t, PaymentSuccess.Terminal())
	assert.True(t, PaymentFailed.Terminal())
	assert.True(t, PaymentRefunded.Terminal())
	assert.False(t, PaymentPending.Terminal())
	assert.False(t, PaymentProcessing.Terminal())
}

func TestRefundStatus_Terminal(t *testing.T) {
	assert.True(t, RefundSuccess.Terminal())
	assert.True(t, RefundFailed.Terminal())
	assert.False(t, RefundPending.Terminal())
	assert.False(t, RefundProcessing.Terminal())
}

func TestFailedPayment(t *testing.T) {
	resp := FailedPayment("provider timeout")
	assert.Equal(t, PaymentFailed, resp.Status)
	assert.Equal(t, "provider timeout", resp.ErrorMessage)
	assert.Empty(t, resp.GatewayOrderID)
	assert.Empty(t, resp.PaymentLink)
}

func TestFailedRefund(t *testing.T) {
	resp := FailedRefund("refund rejected")
	assert.Equal(t, RefundFailed, resp.Status)
	assert.Equal(t, "refund rejected", resp.ErrorMessage)
	assert.Empty(t, resp.GatewayRefundID)
}

func TestMaskInstrument(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"full card number", "4111111111111111", "****1111"},
		{"exactly four characters", "1234", "****1234"},
		{"three characters", "123", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskInstrument(tt.number))
		})
	}
}

func TestMaskInstrument_NeverRevealsMoreThanFour(t *testing.T) {
	masked := MaskInstrument("4111111111111111")
	assert.NotContains(t, masked, "411111")
	assert.Len(t, masked, 8) // four asterisks plus four digits
}

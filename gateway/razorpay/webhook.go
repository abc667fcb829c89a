package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// signPayload computes the base64-encoded HMAC-SHA256 digest Razorpay
// attaches to webhook deliveries. It operates on the exact raw payload
// bytes; re-serializing the payload first would break verification.
func signPayload(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// verifySignature reports whether signature authenticates payload under
// secret. Comparison is constant-time; a missing secret or signature fails
// closed.
func verifySignature(payload []byte, signature, secret string) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected := signPayload(payload, secret)
	return hmac.Equal([]byte(signature), []byte(expected))
}

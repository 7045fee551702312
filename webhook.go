package torchpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// WebhookSignatureHeader is the header carrying the delivery signature.
const WebhookSignatureHeader = "Torchpay-Signature"

// VerifyWebhookSignature reports whether signature is a valid HMAC-SHA256
// of the raw delivery payload under the subscription secret. The signature
// is hex-encoded, as sent in the Torchpay-Signature header. Comparison is
// constant-time.
//
// Verify against the raw request body, before any JSON decoding; re-encoded
// JSON will not match.
func VerifyWebhookSignature(payload []byte, signature, secret string) bool {
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hmac.Equal(provided, mac.Sum(nil))
}

package payment

import (
	"strings"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// VerifyWebhookSignature authenticates an inbound webhook delivery and returns
// the typed event envelope. The payload must be the untouched request body
// bytes; Stripe signs the exact byte sequence, so any re-serialization breaks
// verification.
func VerifyWebhookSignature(payload []byte, signatureHeader, webhookSecret string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, strings.TrimSpace(signatureHeader), strings.TrimSpace(webhookSecret),
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
}

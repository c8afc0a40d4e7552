package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jkoopman/lexcursus/internal/pkg/payment"
)

// WebhookController receives asynchronous payment events from Stripe.
type WebhookController struct {
	svc           *payment.Service
	webhookSecret string
}

// NewWebhookController wires the webhook endpoint with the payment service
// and the shared signing secret.
func NewWebhookController(svc *payment.Service, webhookSecret string) *WebhookController {
	return &WebhookController{svc: svc, webhookSecret: webhookSecret}
}

// HandleStripeWebhook verifies and processes one webhook delivery. The
// signature covers the exact bytes Stripe sent, so the handler works on the
// raw body and this route must never sit behind body-mutating middleware.
// Only signature and payload-shape failures answer non-2xx (Stripe retries
// those); business-rule rejections inside the service are acknowledged.
func (wc *WebhookController) HandleStripeWebhook(c *fiber.Ctx) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)
	signature := c.Get("Stripe-Signature")

	event, err := payment.VerifyWebhookSignature(rawBody, signature, wc.webhookSecret)
	if err != nil {
		log.Printf("webhook signature verification failed: %v", err)
		return jsonError(c, fiber.StatusBadRequest, "invalid_signature", "Webhook signature verification failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := wc.svc.ProcessEvent(ctx, event); err != nil {
		log.Printf("webhook event %s failed: %v", event.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "webhook_processing_failed", "Failed to process webhook event")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/jkoopman/lexcursus/internal/pkg/env"
)

// CheckoutCreator creates provider checkout sessions. Satisfied by Client;
// controllers depend on the interface so tests can stub the provider.
type CheckoutCreator interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutInput) (string, error)
}

// Client wraps the Stripe API client for the one-time course purchase flow.
type Client struct {
	api        *client.API
	successURL string
	cancelURL  string
}

// NewClientFromEnv builds a Stripe client from environment configuration.
func NewClientFromEnv() *Client {
	base := strings.TrimRight(env.GetEnv("PUBLIC_DOMAIN", ""), "/")
	if base == "" {
		base = "http://localhost:" + env.GetEnv("APP_PORT", "4000")
	}

	api := &client.API{}
	api.Init(strings.TrimSpace(env.GetEnv("STRIPE_SECRET_KEY", "")), nil)

	return &Client{
		api:        api,
		successURL: base + "/checkout/success",
		cancelURL:  base + "/checkout/cancel",
	}
}

// CreateCheckoutSession creates a single-line-item payment session at the
// fixed course price and returns the hosted payment page URL. Nothing is
// persisted locally; the session lives at the provider until the webhook
// reports its outcome.
func (c *Client) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (string, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return "", errors.New("user id is required")
	}

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(in.CourseTitle),
	}
	if strings.TrimSpace(in.CourseDescription) != "" {
		productData.Description = stripe.String(in.CourseDescription)
	}

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String(uuid.NewString()),
		},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card", "ideal"}),
		CustomerEmail:      stripe.String(in.UserEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(CourseCurrency),
					ProductData: productData,
					UnitAmount:  stripe.Int64(CoursePriceCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.AddMetadata(MetadataUserIDKey, in.UserID)
	params.AddMetadata(MetadataCourseTitleKey, in.CourseTitle)

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	if sess.URL == "" {
		return "", errors.New("stripe returned a session without a redirect url")
	}
	return sess.URL, nil
}

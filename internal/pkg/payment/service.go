package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	stripe "github.com/stripe/stripe-go/v82"
	"gorm.io/gorm"

	"github.com/jkoopman/lexcursus/app/models"
)

// ConfirmationMailer notifies a buyer after their entitlement is granted.
type ConfirmationMailer interface {
	SendPurchaseConfirmation(to, courseTitle string) error
}

// Service reconciles verified payment events into entitlement state.
type Service struct {
	repo   Repository
	mailer ConfirmationMailer
}

// NewService creates a payment service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a payment service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// WithMailer enables post-grant confirmation emails.
func (s *Service) WithMailer(mailer ConfirmationMailer) *Service {
	s.mailer = mailer
	return s
}

// ProcessEvent journals and dispatches a signature-verified provider event.
// Redelivered events (same provider event id) are acknowledged without
// re-running the reconciler only once the journal row is marked processed
// without error; a redelivery after a transient failure re-runs the
// reconciler, so the provider's retries can complete an interrupted grant.
// Unknown event kinds are acknowledged and ignored: the provider retries on
// error responses, and a growing catalog of event kinds must not force code
// changes to avoid retry storms.
func (s *Service) ProcessEvent(ctx context.Context, event stripe.Event) error {
	_ = ctx

	created, stored, err := s.repo.CreateWebhookEventIfNotExists(&models.PaymentWebhookEvent{
		Provider:        models.PaymentProviderStripe,
		ProviderEventID: event.ID,
		EventType:       string(event.Type),
		PayloadJSON:     string(event.Data.Raw),
	})
	if err != nil {
		return err
	}
	if !created {
		if stored.ProcessedAt != nil && stored.ProcessingError == "" {
			log.Printf("ignoring duplicate webhook event %s (%s)", event.ID, event.Type)
			return nil
		}
		log.Printf("retrying webhook event %s (%s) after incomplete processing", event.ID, event.Type)
	}

	if event.Type != eventCheckoutCompleted {
		_ = s.repo.MarkWebhookProcessed(stored.ID, "")
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		parseErr := fmt.Errorf("invalid checkout session payload: %w", err)
		_ = s.repo.MarkWebhookProcessed(stored.ID, parseErr.Error())
		return parseErr
	}

	reconcileErr := s.reconcileCheckoutSession(&session)
	errMsg := ""
	if reconcileErr != nil {
		errMsg = reconcileErr.Error()
	}
	_ = s.repo.MarkWebhookProcessed(stored.ID, errMsg)
	return reconcileErr
}

// reconcileCheckoutSession is the business-invariant gate. The signature check
// only proves the event is authentic; it says nothing about whether the
// session carried the right terms. Each rejection here is a benign no-op, not
// an error: these events will never become valid, so answering success stops
// the provider's retries.
func (s *Service) reconcileCheckoutSession(session *stripe.CheckoutSession) error {
	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		log.Printf("ignoring unpaid session %s, status: %s", session.ID, session.PaymentStatus)
		return nil
	}

	if session.AmountTotal != CoursePriceCents {
		log.Printf("warning: invalid amount for session %s: expected %d, got %d", session.ID, CoursePriceCents, session.AmountTotal)
		return nil
	}

	if !strings.EqualFold(string(session.Currency), CourseCurrency) {
		log.Printf("warning: invalid currency for session %s: expected %s, got %s", session.ID, CourseCurrency, session.Currency)
		return nil
	}

	userID := strings.TrimSpace(session.Metadata[MetadataUserIDKey])
	if userID == "" {
		log.Printf("warning: missing %s in metadata for session %s", MetadataUserIDKey, session.ID)
		return nil
	}

	customerID := ""
	if session.Customer != nil {
		customerID = session.Customer.ID
	}
	paymentID := ""
	if session.PaymentIntent != nil {
		paymentID = session.PaymentIntent.ID
	}

	if _, err := s.repo.GrantAccess(userID, customerID, paymentID); err != nil {
		return err
	}
	log.Printf("access granted for user %s after validated payment of %d %s", userID, CoursePriceCents, CourseCurrency)

	s.sendConfirmation(session)
	return nil
}

// sendConfirmation emails the buyer after a grant. Best effort: a mail
// failure never fails the webhook, the entitlement is already persisted.
func (s *Service) sendConfirmation(session *stripe.CheckoutSession) {
	if s.mailer == nil {
		return
	}

	email := session.CustomerEmail
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		email = session.CustomerDetails.Email
	}
	if email == "" {
		return
	}

	title := session.Metadata[MetadataCourseTitleKey]
	if title == "" {
		title = "de cursus"
	}

	if err := s.mailer.SendPurchaseConfirmation(email, title); err != nil {
		log.Printf("purchase confirmation mail to %s failed: %v", email, err)
	}
}

package payment

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jkoopman/lexcursus/app/models"
)

// Repository provides the DB operations used by the payment service.
type Repository interface {
	GrantAccess(userID, stripeCustomerID, stripePaymentID string) (*models.UserAccess, error)
	CreateWebhookEventIfNotExists(event *models.PaymentWebhookEvent) (bool, *models.PaymentWebhookEvent, error)
	MarkWebhookProcessed(id uint, processingError string) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a payment repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// GrantAccess is an idempotent upsert keyed on user_id: a single conditional
// insert-or-update statement, so concurrent redeliveries for the same user
// cannot race into duplicate rows or lost updates. Repeated grants keep
// has_access=true and take the latest refs and timestamp.
func (r *gormRepository) GrantAccess(userID, stripeCustomerID, stripePaymentID string) (*models.UserAccess, error) {
	now := time.Now()
	access := &models.UserAccess{
		UserID:           userID,
		HasAccess:        true,
		StripeCustomerID: stripeCustomerID,
		StripePaymentID:  stripePaymentID,
		GrantedAt:        &now,
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"has_access",
			"stripe_customer_id",
			"stripe_payment_id",
			"granted_at",
			"updated_at",
		}),
	}).Create(access).Error; err != nil {
		return nil, err
	}

	// Ensure ID is populated after upsert.
	if err := r.db.Where("user_id = ?", userID).First(access).Error; err != nil {
		return nil, err
	}
	return access, nil
}

func (r *gormRepository) CreateWebhookEventIfNotExists(event *models.PaymentWebhookEvent) (bool, *models.PaymentWebhookEvent, error) {
	tx := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "provider"},
			{Name: "provider_event_id"},
		},
		DoNothing: true,
	}).Create(event)
	if tx.Error != nil {
		return false, nil, tx.Error
	}

	created := tx.RowsAffected > 0
	var stored models.PaymentWebhookEvent
	if err := r.db.Where("provider = ? AND provider_event_id = ?", event.Provider, event.ProviderEventID).
		First(&stored).Error; err != nil {
		return false, nil, err
	}
	return created, &stored, nil
}

func (r *gormRepository) MarkWebhookProcessed(id uint, processingError string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"processed_at":     &now,
		"processing_error": processingError,
	}
	return r.db.Model(&models.PaymentWebhookEvent{}).Where("id = ?", id).Updates(updates).Error
}

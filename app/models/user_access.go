package models

import "time"

// UserAccess is the durable entitlement record: whether a user has paid for
// the course. At most one row per user id; nothing in the application ever
// revokes a granted access.
type UserAccess struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           string     `gorm:"type:varchar(191);not null;uniqueIndex:ux_user_access_user" json:"user_id"`
	HasAccess        bool       `gorm:"not null;default:false" json:"has_access"`
	StripeCustomerID string     `gorm:"type:varchar(191);default:''" json:"stripe_customer_id"`
	StripePaymentID  string     `gorm:"type:varchar(191);default:''" json:"stripe_payment_id"`
	GrantedAt        *time.Time `gorm:"type:timestamp;default:null" json:"granted_at,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

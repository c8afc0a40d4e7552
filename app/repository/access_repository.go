package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jkoopman/lexcursus/app/models"
)

type accessRepository struct {
	db *gorm.DB
}

// NewAccessRepository creates an entitlement read repository backed by GORM.
func NewAccessRepository(db *gorm.DB) AccessRepository {
	return &accessRepository{db: db}
}

func (r *accessRepository) GetByUserID(userID string) (*models.UserAccess, error) {
	var access models.UserAccess
	if err := r.db.Where("user_id = ?", userID).First(&access).Error; err != nil {
		return nil, err
	}
	return &access, nil
}

// HasAccess treats a missing row the same as has_access=false.
func (r *accessRepository) HasAccess(userID string) (bool, error) {
	access, err := r.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return access.HasAccess, nil
}

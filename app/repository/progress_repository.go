package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jkoopman/lexcursus/app/models"
)

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a progress repository backed by GORM.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) ListByUser(userID string) ([]models.UserProgress, error) {
	var records []models.UserProgress
	err := r.db.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

// SetCompletion upserts the (user_id, lesson_id) row in a single conditional
// insert-or-update statement. Concurrent toggles for the same key cannot lose
// updates; the unique index arbitrates.
func (r *progressRepository) SetCompletion(userID string, lessonID uint, completed bool) (*models.UserProgress, error) {
	record := &models.UserProgress{
		UserID:    userID,
		LessonID:  lessonID,
		Completed: completed,
	}
	if completed {
		now := time.Now()
		record.CompletedAt = &now
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "lesson_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed",
			"completed_at",
			"updated_at",
		}),
	}).Create(record).Error; err != nil {
		return nil, err
	}

	// Ensure ID and timestamps are populated after upsert.
	if err := r.db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

package models

import "time"

// UserProgress tracks per-user, per-lesson completion. One row per
// (user_id, lesson_id); writes are idempotent upserts on that pair.
// CompletedAt is set exactly when Completed flips to true and cleared when
// it is set back to false.
type UserProgress struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"type:varchar(191);not null;uniqueIndex:ux_user_progress_user_lesson,priority:1" json:"user_id"`
	LessonID    uint       `gorm:"not null;uniqueIndex:ux_user_progress_user_lesson,priority:2;index" json:"lesson_id"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `gorm:"type:timestamp;default:null" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

package models

import "time"

// Course is the single sellable course. The platform carries exactly one row;
// reads always take the first course.
type Course struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Modules     []CourseModule `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// CourseModule groups lessons within a course, ordered by SortOrder.
type CourseModule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	SortOrder int       `gorm:"not null;default:0;index" json:"sort_order"`
	Lessons   []Lesson  `gorm:"foreignKey:ModuleID" json:"lessons,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Lesson is a single video lesson. Videos are Vimeo-hosted; only the
// provider id is stored.
type Lesson struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ModuleID        uint      `gorm:"not null;index" json:"module_id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	VimeoID         string    `gorm:"type:varchar(32);not null" json:"vimeo_id"`
	SortOrder       int       `gorm:"not null;default:0;index" json:"sort_order"`
	DurationMinutes int       `gorm:"default:0" json:"duration_minutes"`
	ViewCount       int64     `gorm:"default:0" json:"view_count"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CourseInfo is the aggregate shape returned by the course-info endpoint.
type CourseInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ModuleCount int64  `json:"moduleCount"`
	LessonCount int64  `json:"lessonCount"`
}

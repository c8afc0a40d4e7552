package repository

import (
	"github.com/jkoopman/lexcursus/app/models"
)

// LessonNavigation bundles a lesson with its neighbours in course order and
// the full module outline for sidebar rendering.
type LessonNavigation struct {
	Lesson         models.Lesson         `json:"lesson"`
	PreviousLesson *models.Lesson        `json:"previousLesson"`
	NextLesson     *models.Lesson        `json:"nextLesson"`
	Modules        []models.CourseModule `json:"modules"`
}

// CourseRepository defines read operations on the course catalog.
type CourseRepository interface {
	GetCourse() (*models.Course, error)
	GetCourseInfo() (*models.CourseInfo, error)
	GetLesson(lessonID uint) (*models.Lesson, error)
	GetLessonWithNavigation(lessonID uint) (*LessonNavigation, error)
}

// AccessRepository defines read operations on entitlement records. Granting
// access is owned by the payment reconciler (internal/pkg/payment).
type AccessRepository interface {
	GetByUserID(userID string) (*models.UserAccess, error)
	HasAccess(userID string) (bool, error)
}

// ProgressRepository defines operations on per-lesson completion records.
type ProgressRepository interface {
	ListByUser(userID string) ([]models.UserProgress, error)
	SetCompletion(userID string, lessonID uint, completed bool) (*models.UserProgress, error)
}

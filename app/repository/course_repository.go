package repository

import (
	"gorm.io/gorm"

	"github.com/jkoopman/lexcursus/app/models"
)

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a course repository backed by GORM.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// GetCourse loads the single course with its modules and lessons in display
// order. Associations are fetched batched per table, not per row.
func (r *courseRepository) GetCourse() (*models.Course, error) {
	var course models.Course
	err := r.db.
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_modules.sort_order ASC")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.sort_order ASC")
		}).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetCourseInfo() (*models.CourseInfo, error) {
	var course models.Course
	if err := r.db.First(&course).Error; err != nil {
		return nil, err
	}

	var moduleCount int64
	if err := r.db.Model(&models.CourseModule{}).
		Where("course_id = ?", course.ID).
		Count(&moduleCount).Error; err != nil {
		return nil, err
	}

	var lessonCount int64
	if err := r.db.Model(&models.Lesson{}).
		Joins("JOIN course_modules ON course_modules.id = lessons.module_id").
		Where("course_modules.course_id = ?", course.ID).
		Count(&lessonCount).Error; err != nil {
		return nil, err
	}

	return &models.CourseInfo{
		Title:       course.Title,
		Description: course.Description,
		ModuleCount: moduleCount,
		LessonCount: lessonCount,
	}, nil
}

func (r *courseRepository) GetLesson(lessonID uint) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := r.db.First(&lesson, lessonID).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// GetLessonWithNavigation resolves previous/next lessons across module
// boundaries using the module-ordered lesson sequence.
func (r *courseRepository) GetLessonWithNavigation(lessonID uint) (*LessonNavigation, error) {
	lesson, err := r.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}

	course, err := r.GetCourse()
	if err != nil {
		return nil, err
	}

	nav := &LessonNavigation{
		Lesson:  *lesson,
		Modules: course.Modules,
	}
	nav.PreviousLesson, nav.NextLesson = neighbourLessons(orderedLessons(course.Modules), lesson.ID)
	return nav, nil
}

// orderedLessons flattens the module-ordered outline into one linear sequence.
func orderedLessons(modules []models.CourseModule) []models.Lesson {
	var ordered []models.Lesson
	for _, mod := range modules {
		ordered = append(ordered, mod.Lessons...)
	}
	return ordered
}

// neighbourLessons returns the lessons before and after the given lesson in
// course order. Either side is nil at the edges of the course.
func neighbourLessons(ordered []models.Lesson, lessonID uint) (prev, next *models.Lesson) {
	for i := range ordered {
		if ordered[i].ID != lessonID {
			continue
		}
		if i > 0 {
			prev = &ordered[i-1]
		}
		if i < len(ordered)-1 {
			next = &ordered[i+1]
		}
		return prev, next
	}
	return nil, nil
}

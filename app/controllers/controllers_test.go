package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jkoopman/lexcursus/app/models"
	"github.com/jkoopman/lexcursus/app/repository"
	"github.com/jkoopman/lexcursus/internal/pkg/payment"
	"github.com/jkoopman/lexcursus/internal/pkg/usercontext"
)

// Shared in-memory fakes for handler tests. They implement the repository
// interfaces the controllers depend on.

type fakeCourseRepo struct {
	course *models.Course
	info   *models.CourseInfo
	nav    map[uint]*repository.LessonNavigation
}

func (f *fakeCourseRepo) GetCourse() (*models.Course, error) {
	if f.course == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.course, nil
}

func (f *fakeCourseRepo) GetCourseInfo() (*models.CourseInfo, error) {
	if f.info == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.info, nil
}

func (f *fakeCourseRepo) GetLesson(lessonID uint) (*models.Lesson, error) {
	if nav, ok := f.nav[lessonID]; ok {
		return &nav.Lesson, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCourseRepo) GetLessonWithNavigation(lessonID uint) (*repository.LessonNavigation, error) {
	if nav, ok := f.nav[lessonID]; ok {
		return nav, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeAccessRepo struct {
	granted map[string]bool
}

func (f *fakeAccessRepo) GetByUserID(userID string) (*models.UserAccess, error) {
	if !f.granted[userID] {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.UserAccess{UserID: userID, HasAccess: true}, nil
}

func (f *fakeAccessRepo) HasAccess(userID string) (bool, error) {
	return f.granted[userID], nil
}

type fakeProgressRepo struct {
	records map[string]map[uint]*models.UserProgress
	nextID  uint
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[string]map[uint]*models.UserProgress)}
}

func (f *fakeProgressRepo) ListByUser(userID string) ([]models.UserProgress, error) {
	var out []models.UserProgress
	for _, rec := range f.records[userID] {
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeProgressRepo) SetCompletion(userID string, lessonID uint, completed bool) (*models.UserProgress, error) {
	byLesson, ok := f.records[userID]
	if !ok {
		byLesson = make(map[uint]*models.UserProgress)
		f.records[userID] = byLesson
	}
	rec, ok := byLesson[lessonID]
	if !ok {
		f.nextID++
		rec = &models.UserProgress{ID: f.nextID, UserID: userID, LessonID: lessonID}
		byLesson[lessonID] = rec
	}
	rec.Completed = completed
	if completed {
		now := time.Now()
		rec.CompletedAt = &now
	} else {
		rec.CompletedAt = nil
	}
	return rec, nil
}

type fakeCheckout struct {
	url string
	err error
	got []payment.CheckoutInput
}

func (f *fakeCheckout) CreateCheckoutSession(_ context.Context, in payment.CheckoutInput) (string, error) {
	f.got = append(f.got, in)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

var errCheckoutDown = errors.New("provider unavailable")

// asUser installs a request-scoped user context the way the session
// middleware would for a logged-in user.
func asUser(userID, email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("USER_CONTEXT", usercontext.UserContext{
			UserID:     userID,
			Email:      email,
			Name:       "Test User",
			IsLoggedIn: userID != "",
		})
		return c.Next()
	}
}

func testRepos(course *fakeCourseRepo, access *fakeAccessRepo, progress *fakeProgressRepo) *repository.Repositories {
	return &repository.Repositories{
		Course:   course,
		Access:   access,
		Progress: progress,
	}
}

func sampleCourse() (*fakeCourseRepo, uint) {
	lesson1 := models.Lesson{ID: 1, ModuleID: 1, Title: "Welkom bij de cursus", VimeoID: "76979871", SortOrder: 1}
	lesson2 := models.Lesson{ID: 2, ModuleID: 1, Title: "Rechtsvormen voor ondernemers", VimeoID: "76979871", SortOrder: 2}
	module := models.CourseModule{ID: 1, CourseID: 1, Title: "Module 1", SortOrder: 1, Lessons: []models.Lesson{lesson1, lesson2}}
	course := &models.Course{ID: 1, Title: "Juridische Basiskennis voor Ondernemers", Modules: []models.CourseModule{module}}

	repo := &fakeCourseRepo{
		course: course,
		info: &models.CourseInfo{
			Title:       course.Title,
			Description: course.Description,
			ModuleCount: 1,
			LessonCount: 2,
		},
		nav: map[uint]*repository.LessonNavigation{
			1: {Lesson: lesson1, NextLesson: &lesson2, Modules: course.Modules},
			2: {Lesson: lesson2, PreviousLesson: &lesson1, Modules: course.Modules},
		},
	}
	return repo, lesson1.ID
}

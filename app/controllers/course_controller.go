package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jkoopman/lexcursus/app/models"
	"github.com/jkoopman/lexcursus/app/repository"
	"github.com/jkoopman/lexcursus/internal/pkg/cache"
	"github.com/jkoopman/lexcursus/internal/pkg/metrics/counter"
	"github.com/jkoopman/lexcursus/internal/pkg/payment"
	"github.com/jkoopman/lexcursus/internal/pkg/usercontext"
)

const courseInfoCacheKey = "course_info"
const courseInfoCacheTTL = 5 * time.Minute

// CourseController serves the course catalog and dashboard endpoints.
type CourseController struct {
	courses  repository.CourseRepository
	access   repository.AccessRepository
	progress repository.ProgressRepository
}

// NewCourseController wires the controller with its repositories.
func NewCourseController(repos *repository.Repositories) *CourseController {
	return &CourseController{
		courses:  repos.Course,
		access:   repos.Access,
		progress: repos.Progress,
	}
}

// HandleDashboard returns the course outline, the user's progress and the
// entitlement flag in one payload.
func (cc *CourseController) HandleDashboard(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	course, err := cc.courses.GetCourse()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Course not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load course")
	}

	progress, err := cc.progress.ListByUser(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load progress")
	}
	if progress == nil {
		progress = []models.UserProgress{}
	}

	hasAccess, err := cc.access.HasAccess(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load access")
	}

	return c.JSON(fiber.Map{
		"course":    course,
		"progress":  progress,
		"hasAccess": hasAccess,
	})
}

// HandleLesson returns a lesson with navigation context. Users without an
// entitlement get a soft deny: 200 with hasAccess=false and no lesson data.
func (cc *CourseController) HandleLesson(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	lessonID, err := c.ParamsInt("id")
	if err != nil || lessonID <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid lesson ID")
	}

	hasAccess, err := cc.access.HasAccess(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load access")
	}
	if !hasAccess {
		return c.JSON(fiber.Map{"hasAccess": false})
	}

	nav, err := cc.courses.GetLessonWithNavigation(uint(lessonID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Lesson not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load lesson")
	}

	progress, err := cc.progress.ListByUser(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load progress")
	}
	if progress == nil {
		progress = []models.UserProgress{}
	}

	// best effort, views are flushed to the database in batches
	if err := counter.AddLessonView(uint(lessonID)); err != nil {
		log.Printf("lesson view counter failed: %v", err)
	}

	return c.JSON(fiber.Map{
		"lesson":         nav.Lesson,
		"previousLesson": nav.PreviousLesson,
		"nextLesson":     nav.NextLesson,
		"modules":        nav.Modules,
		"progress":       progress,
		"hasAccess":      true,
	})
}

// HandleCourseInfo returns course metadata plus the fixed price point.
// The response is cached briefly; cache errors fall through to the database.
func (cc *CourseController) HandleCourseInfo(c *fiber.Ctx) error {
	if cached, err := cache.Get(courseInfoCacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	info, err := cc.courses.GetCourseInfo()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Course not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load course info")
	}

	payload := fiber.Map{
		"title":       info.Title,
		"description": info.Description,
		"moduleCount": info.ModuleCount,
		"lessonCount": info.LessonCount,
		"price":       payment.CoursePriceCents,
		"currency":    payment.CourseCurrency,
	}

	if buf, err := json.Marshal(payload); err == nil {
		_ = cache.Set(courseInfoCacheKey, buf, courseInfoCacheTTL)
	}

	return c.JSON(payload)
}

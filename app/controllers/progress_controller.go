package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jkoopman/lexcursus/app/repository"
	"github.com/jkoopman/lexcursus/internal/pkg/usercontext"
)

type progressRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// ProgressController handles per-lesson completion toggles.
type ProgressController struct {
	access   repository.AccessRepository
	progress repository.ProgressRepository
}

// NewProgressController wires the controller with its repositories.
func NewProgressController(repos *repository.Repositories) *ProgressController {
	return &ProgressController{
		access:   repos.Access,
		progress: repos.Progress,
	}
}

// HandleSetProgress upserts the completion state for one lesson. Writes are
// hard-denied (403) without an entitlement; the upsert itself is idempotent.
func (pc *ProgressController) HandleSetProgress(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	lessonID, err := c.ParamsInt("lessonId")
	if err != nil || lessonID <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid lesson ID")
	}

	var req progressRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	hasAccess, err := pc.access.HasAccess(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load access")
	}
	if !hasAccess {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "No access")
	}

	record, err := pc.progress.SetCompletion(userCtx.UserID, uint(lessonID), *req.Completed)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to save progress")
	}

	return c.JSON(record)
}

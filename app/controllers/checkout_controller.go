package controllers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jkoopman/lexcursus/app/repository"
	"github.com/jkoopman/lexcursus/internal/pkg/payment"
	"github.com/jkoopman/lexcursus/internal/pkg/usercontext"
)

// CheckoutController starts the hosted payment flow and exposes the
// entitlement flag.
type CheckoutController struct {
	access   repository.AccessRepository
	courses  repository.CourseRepository
	payments payment.CheckoutCreator
}

// NewCheckoutController wires the controller with its repositories and the
// payment client.
func NewCheckoutController(repos *repository.Repositories, payments payment.CheckoutCreator) *CheckoutController {
	return &CheckoutController{
		access:   repos.Access,
		courses:  repos.Course,
		payments: payments,
	}
}

// HandleCreateCheckout creates a provider checkout session for the course and
// returns its redirect URL. Nothing is written locally; entitlement state
// changes only when the webhook confirms payment.
func (cc *CheckoutController) HandleCreateCheckout(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	hasAccess, err := cc.access.HasAccess(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load access")
	}
	if hasAccess {
		return jsonError(c, fiber.StatusBadRequest, "already_entitled", "Already has access")
	}

	info, err := cc.courses.GetCourseInfo()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "Course not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load course info")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	url, err := cc.payments.CreateCheckoutSession(ctx, payment.CheckoutInput{
		UserID:            userCtx.UserID,
		UserEmail:         userCtx.Email,
		CourseTitle:       info.Title,
		CourseDescription: info.Description,
	})
	if err != nil {
		log.Printf("checkout session creation failed for user %s: %v", userCtx.UserID, err)
		return jsonError(c, fiber.StatusInternalServerError, "checkout_failed", "Failed to create checkout session")
	}

	return c.JSON(fiber.Map{"url": url})
}

// HandleUserAccess returns the entitlement flag for the current user.
func (cc *CheckoutController) HandleUserAccess(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	hasAccess, err := cc.access.HasAccess(userCtx.UserID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load access")
	}

	return c.JSON(fiber.Map{"hasAccess": hasAccess})
}

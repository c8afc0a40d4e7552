package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/jkoopman/lexcursus/internal/pkg/usercontext"
)

// HandleHome renders the landing page.
func HandleHome(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	return c.Render("index", fiber.Map{
		"IsLoggedIn": userCtx.IsLoggedIn,
		"UserName":   userCtx.Name,
		"Flash":      flash.Get(c),
	})
}

// HandleCheckoutSuccess renders the post-payment landing page. Entitlement is
// granted asynchronously by the webhook, so the page only tells the user to
// head to the dashboard.
func HandleCheckoutSuccess(c *fiber.Ctx) error {
	return c.Render("checkout_success", fiber.Map{})
}

// HandleCheckoutCancel renders the cancelled-payment landing page.
func HandleCheckoutCancel(c *fiber.Ctx) error {
	return c.Render("checkout_cancel", fiber.Map{})
}

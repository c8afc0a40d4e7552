package router

import (
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/gofiber/fiber/v2"

	"github.com/jkoopman/lexcursus/app/controllers"
	"github.com/jkoopman/lexcursus/internal/pkg/middleware"
	"github.com/jkoopman/lexcursus/internal/pkg/oauth"
	"github.com/jkoopman/lexcursus/internal/pkg/session"
)

type HttpRouter struct {
	deps Dependencies
}

func NewHttpRouter(deps Dependencies) *HttpRouter {
	return &HttpRouter{deps: deps}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// The webhook signature covers the raw request bytes, so this route is
	// registered before any middleware that could touch the body.
	webhookController := controllers.NewWebhookController(h.deps.Payments, h.deps.WebhookSecret)
	app.Post("/webhook", webhookController.HandleStripeWebhook)

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/", controllers.HandleHome)
	app.Get("/checkout/success", controllers.HandleCheckoutSuccess)
	app.Get("/checkout/cancel", controllers.HandleCheckoutCancel)

	app.Get("/auth/:provider", gothfiber.BeginAuthHandler)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
	app.Get("/logout", controllers.HandleLogout)
	app.Post("/logout", controllers.HandleLogout)
}

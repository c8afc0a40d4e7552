package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jkoopman/lexcursus/app/controllers"
	"github.com/jkoopman/lexcursus/internal/pkg/middleware"
)

type ApiRouter struct {
	deps Dependencies
}

func NewApiRouter(deps Dependencies) *ApiRouter {
	return &ApiRouter{deps: deps}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	courseController := controllers.NewCourseController(h.deps.Repos)
	progressController := controllers.NewProgressController(h.deps.Repos)
	checkoutController := controllers.NewCheckoutController(h.deps.Repos, h.deps.Checkout)

	api := app.Group("/api", limiter.New(limiter.Config{
		Max: 60,
	}))

	protected := api.Group("", middleware.RequireAPISessionAuth)
	protected.Get("/course-info", courseController.HandleCourseInfo)
	protected.Get("/dashboard", courseController.HandleDashboard)
	protected.Get("/lessons/:id", courseController.HandleLesson)
	protected.Post("/progress/:lessonId", progressController.HandleSetProgress)
	protected.Post("/checkout", checkoutController.HandleCreateCheckout)
	protected.Get("/user-access", checkoutController.HandleUserAccess)
}

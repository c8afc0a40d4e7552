package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jkoopman/lexcursus/app/repository"
	"github.com/jkoopman/lexcursus/internal/pkg/payment"
)

// Dependencies carries everything the routers need. Storage and payment
// objects are passed in explicitly; nothing route-level reaches for globals.
type Dependencies struct {
	Repos         *repository.Repositories
	Payments      *payment.Service
	Checkout      payment.CheckoutCreator
	WebhookSecret string
}

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App, deps Dependencies) {
	// HttpRouter goes first: it initializes the session store, the oauth
	// providers and the global UserContext middleware the API routes rely on.
	setup(app, NewHttpRouter(deps), NewApiRouter(deps))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}

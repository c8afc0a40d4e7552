package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jkoopman/lexcursus/app/models"
	"github.com/jkoopman/lexcursus/internal/pkg/payment"
)

// paymentBackedAccess reads entitlements from the same store the webhook
// reconciler writes to, so the purchase flow can be exercised end to end.
type paymentBackedAccess struct {
	repo *fakePaymentRepo
}

func (a *paymentBackedAccess) GetByUserID(userID string) (*models.UserAccess, error) {
	if access, ok := a.repo.access[userID]; ok {
		return access, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (a *paymentBackedAccess) HasAccess(userID string) (bool, error) {
	access, ok := a.repo.access[userID]
	return ok && access.HasAccess, nil
}

// Full purchase flow against one app: checkout session, signed webhook,
// then the dashboard and access endpoints reflect the grant.
func TestPurchaseFlow(t *testing.T) {
	courses, _ := sampleCourse()
	paymentRepo := newFakePaymentRepo()
	access := &paymentBackedAccess{repo: paymentRepo}
	progress := newFakeProgressRepo()
	checkout := &fakeCheckout{url: "https://checkout.stripe.com/pay/cs_test_flow"}

	repos := testRepos(courses, &fakeAccessRepo{granted: map[string]bool{}}, progress)
	repos.Access = access

	app := fiber.New()
	app.Use(asUser("u1", "u1@example.com"))
	courseController := NewCourseController(repos)
	checkoutController := NewCheckoutController(repos, checkout)
	webhookController := NewWebhookController(payment.NewService(paymentRepo), testWebhookSecret)
	app.Get("/api/dashboard", courseController.HandleDashboard)
	app.Get("/api/user-access", checkoutController.HandleUserAccess)
	app.Post("/api/checkout", checkoutController.HandleCreateCheckout)
	app.Post("/webhook", webhookController.HandleStripeWebhook)

	// no entitlement before payment
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/user-access", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, false, decodeBody(t, resp)["hasAccess"])

	// start checkout
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/checkout", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, checkout.url, decodeBody(t, resp)["url"])

	// Stripe reports the completed payment
	resp, err = app.Test(signedWebhookRequest(t, checkoutCompletedPayload("evt_flow_1")), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// the grant is visible on the dashboard
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["hasAccess"])

	// a second checkout attempt is rejected
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/checkout", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

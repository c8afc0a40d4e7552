package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseTestApp(courses *fakeCourseRepo, access *fakeAccessRepo, progress *fakeProgressRepo, userID string) *fiber.App {
	app := fiber.New()
	app.Use(asUser(userID, userID+"@example.com"))
	cc := NewCourseController(testRepos(courses, access, progress))
	app.Get("/api/dashboard", cc.HandleDashboard)
	app.Get("/api/lessons/:id", cc.HandleLesson)
	app.Get("/api/course-info", cc.HandleCourseInfo)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHandleDashboard(t *testing.T) {
	courses, _ := sampleCourse()
	access := &fakeAccessRepo{granted: map[string]bool{"u1": true}}
	progress := newFakeProgressRepo()
	_, err := progress.SetCompletion("u1", 1, true)
	require.NoError(t, err)

	app := newCourseTestApp(courses, access, progress, "u1")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["hasAccess"])
	course := body["course"].(map[string]interface{})
	assert.Equal(t, "Juridische Basiskennis voor Ondernemers", course["title"])
	assert.Len(t, body["progress"], 1)
}

func TestHandleDashboard_NoEntitlement(t *testing.T) {
	courses, _ := sampleCourse()
	app := newCourseTestApp(courses, &fakeAccessRepo{granted: map[string]bool{}}, newFakeProgressRepo(), "u2")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["hasAccess"])
	assert.Len(t, body["progress"], 0)
}

func TestHandleLesson_WithNavigation(t *testing.T) {
	courses, lessonID := sampleCourse()
	access := &fakeAccessRepo{granted: map[string]bool{"u1": true}}
	app := newCourseTestApp(courses, access, newFakeProgressRepo(), "u1")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/lessons/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["hasAccess"])
	lesson := body["lesson"].(map[string]interface{})
	assert.Equal(t, float64(lessonID), lesson["id"])
	assert.Nil(t, body["previousLesson"])
	next := body["nextLesson"].(map[string]interface{})
	assert.Equal(t, float64(2), next["id"])
}

func TestHandleLesson_SoftDenyWithoutEntitlement(t *testing.T) {
	courses, _ := sampleCourse()
	app := newCourseTestApp(courses, &fakeAccessRepo{granted: map[string]bool{}}, newFakeProgressRepo(), "u2")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/lessons/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["hasAccess"])
	_, hasLesson := body["lesson"]
	assert.False(t, hasLesson, "lesson data must not leak without an entitlement")
}

func TestHandleLesson_NotFound(t *testing.T) {
	courses, _ := sampleCourse()
	access := &fakeAccessRepo{granted: map[string]bool{"u1": true}}
	app := newCourseTestApp(courses, access, newFakeProgressRepo(), "u1")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/lessons/999", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleLesson_InvalidID(t *testing.T) {
	courses, _ := sampleCourse()
	access := &fakeAccessRepo{granted: map[string]bool{"u1": true}}
	app := newCourseTestApp(courses, access, newFakeProgressRepo(), "u1")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/lessons/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleCourseInfo(t *testing.T) {
	courses, _ := sampleCourse()
	app := newCourseTestApp(courses, &fakeAccessRepo{granted: map[string]bool{}}, newFakeProgressRepo(), "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/course-info", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Juridische Basiskennis voor Ondernemers", body["title"])
	assert.Equal(t, float64(1), body["moduleCount"])
	assert.Equal(t, float64(2), body["lessonCount"])
	assert.Equal(t, float64(9900), body["price"])
	assert.Equal(t, "eur", body["currency"])
}

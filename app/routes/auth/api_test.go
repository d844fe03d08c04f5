package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	jwtSecret = []byte("test-secret")

	app := fiber.New()
	app.Post("/auth/login", func(c *fiber.Ctx) error { return LoginAPI(c, nil) })
	app.Post("/auth/logout", LogoutAPI)
	app.Post("/auth/change-password", func(c *fiber.Ctx) error { return ChangePasswordAPI(c, nil) })
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginRejectsMissingFields(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/auth/login", `{"role":"student"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/auth/login", `{"role":"parent","id":"x","password":"y"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChangePasswordRejectsMissingFields(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/auth/change-password", `{"role":"student","id":"S1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthMiddlewareBlocksWithoutToken(t *testing.T) {
	app := newTestApp()
	app.Get("/admin-only", AuthMiddleware, func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", AdminTokenMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestAdminTokenMiddlewareRejectsWithoutConfiguredToken(t *testing.T) {
	t.Setenv("ADMIN_API_TOKEN", "")

	req := httptest.NewRequest("GET", "/admin", nil)
	resp, err := adminApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestAdminTokenMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("ADMIN_API_TOKEN", "secret-token")

	req := httptest.NewRequest("GET", "/admin", nil)
	resp, err := adminApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminTokenMiddlewareRejectsWrongToken(t *testing.T) {
	t.Setenv("ADMIN_API_TOKEN", "secret-token")

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("X-Admin-Token", "wrong-token")
	resp, err := adminApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminTokenMiddlewareAcceptsHeaderToken(t *testing.T) {
	t.Setenv("ADMIN_API_TOKEN", "secret-token")

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("X-Admin-Token", "secret-token")
	resp, err := adminApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminTokenMiddlewareAcceptsBearerToken(t *testing.T) {
	t.Setenv("ADMIN_API_TOKEN", "secret-token")

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	resp, err := adminApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "rupeess_backend/internals/helpers"
)

func protectedApp(secret string, roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{AuthMiddleware(secret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id"), "role": c.Locals("role")})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthMiddlewareAcceptsConfiguredSecret(t *testing.T) {
	token, err := helper.SignToken("configured-secret", "user-1", "admin", time.Hour)
	require.NoError(t, err)

	app := protectedApp("configured-secret")
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejectsOtherSecret(t *testing.T) {
	token, err := helper.SignToken("another-secret", "user-1", "admin", time.Hour)
	require.NoError(t, err)

	app := protectedApp("configured-secret")
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareWithoutToken(t *testing.T) {
	app := protectedApp("configured-secret")
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareEmptySecretIs500(t *testing.T) {
	token, err := helper.SignToken("whatever", "user-1", "user", time.Hour)
	require.NoError(t, err)

	app := protectedApp("")
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestRequireRoleBlocksOtherRoles(t *testing.T) {
	token, err := helper.SignToken("configured-secret", "user-1", "user", time.Hour)
	require.NoError(t, err)

	app := protectedApp("configured-secret", "admin")
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddlewareCookieFallback(t *testing.T) {
	token, err := helper.SignToken("configured-secret", "user-1", "user", time.Hour)
	require.NoError(t, err)

	app := protectedApp("configured-secret")
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

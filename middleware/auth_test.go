package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"courier-booking/constants"
	"courier-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func newTestApp(guard *Auth) *fiber.App {
	app := fiber.New()
	app.Get("/any", guard.RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("email").(string))
	})
	app.Get("/officer", guard.RequireRole(constants.RoleOfficer), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func bearerFor(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(testSecret, "user@example.com", 7, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRequireAuth_MissingToken(t *testing.T) {
	app := newTestApp(NewAuth(testSecret))

	req := httptest.NewRequest("GET", "/any", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	app := newTestApp(NewAuth(testSecret))

	req := httptest.NewRequest("GET", "/any", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	app := newTestApp(NewAuth(testSecret))

	req := httptest.NewRequest("GET", "/any", nil)
	req.Header.Set("Authorization", bearerFor(t, constants.RoleCustomer))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_WrongRole(t *testing.T) {
	app := newTestApp(NewAuth(testSecret))

	req := httptest.NewRequest("GET", "/officer", nil)
	req.Header.Set("Authorization", bearerFor(t, constants.RoleCustomer))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_MatchingRole(t *testing.T) {
	app := newTestApp(NewAuth(testSecret))

	req := httptest.NewRequest("GET", "/officer", nil)
	req.Header.Set("Authorization", bearerFor(t, constants.RoleOfficer))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAuth_TokenSignedWithOtherSecret(t *testing.T) {
	app := newTestApp(NewAuth(testSecret))

	token, err := utils.GenerateToken("other-secret", "user@example.com", 7, constants.RoleCustomer, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/any", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

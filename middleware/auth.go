package middleware

import (
	"strings"

	"courier-booking/types"
	"courier-booking/utils"

	"github.com/gofiber/fiber/v2"
)

// Auth is the single authorization boundary: every protected route goes
// through RequireAuth or RequireRole instead of per-handler token checks.
type Auth struct {
	secret string
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: secret}
}

// RequireAuth validates the bearer token and stores the claims, user id,
// email and role in the request locals.
func (a *Auth) RequireAuth() fiber.Handler {
	return a.requireRoles(nil)
}

// RequireRole additionally demands that the token carries one of the given
// roles. Failures answer with a generic access-denied message that does not
// reveal whether the account exists.
func (a *Auth) RequireRole(roles ...string) fiber.Handler {
	return a.requireRoles(roles)
}

func (a *Auth) requireRoles(roles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization token required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c, "Invalid authorization header format")
		}

		claims, err := utils.ParseToken(a.secret, parts[1])
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		userID, err := utils.ClaimUserID(claims)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		role := utils.ClaimString(claims, "role")
		if len(roles) > 0 && !contains(roles, role) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Access denied",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("claims", claims)
		c.Locals("userId", userID)
		c.Locals("email", utils.ClaimString(claims, "sub"))
		c.Locals("role", role)
		return c.Next()
	}
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}

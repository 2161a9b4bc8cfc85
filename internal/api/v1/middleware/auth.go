package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/madenai/arqflow/internal/auth"
)

// Locals keys populated by RequireAuth.
const (
	// LocalsUserID holds the authenticated user's ID as a uint.
	LocalsUserID = "auth_user_id"
	// LocalsUserEmail holds the authenticated user's email.
	LocalsUserEmail = "auth_user_email"
	// LocalsUserRole holds the authenticated user's role string.
	LocalsUserRole = "auth_user_role"
)

// RequireAuth validates the Bearer token and stores the caller's identity in
// the request locals. Every project, budget, and schedule operation is scoped
// to the identity set here.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(LocalsUserID, claims.UserID)
		c.Locals(LocalsUserEmail, claims.Email)
		c.Locals(LocalsUserRole, claims.Role)
		return c.Next()
	}
}

// RequireAdmin gates a route to administrators. It must run after
// RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalsUserRole).(string)
		if role != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

// UserID extracts the authenticated user ID from the request locals. It
// returns zero when RequireAuth did not run.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalsUserID).(uint)
	return id
}

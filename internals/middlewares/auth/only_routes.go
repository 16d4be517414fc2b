package auth

import (
	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/features/users/auth/session"
)

// RequireAuthenticated redirects anonymous callers to the login page.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if session.CurrentIdentity(c).IsAnonymous() {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}
		return c.Next()
	}
}

package auth

import (
	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/constants"
	"sponsorship_backend/internals/features/users/auth/session"
)

const (
	LoginPath   = "/login"
	LandingPath = "/"
)

// RequireRoles lets the request through only when the caller is logged in
// with one of roles. Anonymous callers go to the login page, everyone else
// to the landing page. The handler behind it never runs on failure.
func RequireRoles(roles ...constants.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := session.CurrentIdentity(c)
		if id.IsAnonymous() {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}
		for _, allowed := range roles {
			if id.Role == allowed {
				return c.Next()
			}
		}
		return c.Redirect(LandingPath, fiber.StatusFound)
	}
}

func RequireAdmin() fiber.Handler {
	return RequireRoles(constants.AdminOnly...)
}

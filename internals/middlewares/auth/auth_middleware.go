// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/features/users/auth/session"
	helper "sponsorship_backend/internals/helpers"
)

// IdentityResolver is satisfied by *session.Provider.
type IdentityResolver interface {
	Resolve(c *fiber.Ctx) (session.Identity, error)
}

// ResolveIdentity puts the caller's identity into the request locals. It
// never rejects: an unknown or missing token is simply anonymous.
func ResolveIdentity(resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := resolver.Resolve(c)
		if err != nil {
			if c.UserContext().Err() == context.DeadlineExceeded {
				return helper.JsonError(c, fiber.StatusServiceUnavailable, "Session lookup timed out")
			}
			log.Printf("[ERROR] resolve identity: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve session")
		}
		session.SetIdentity(c, id)
		return c.Next()
	}
}

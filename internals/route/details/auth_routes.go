package details

import (
	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/container"
	authRoute "sponsorship_backend/internals/features/users/auth/route"
	middlewares "sponsorship_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, ac *container.AppContext) {
	authRoute.AuthRoutes(r, ac.Auth, middlewares.RateLimits{Enabled: ac.Config.RateLimitEnabled})
}

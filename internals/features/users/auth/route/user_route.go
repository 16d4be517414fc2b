// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/features/users/auth/controller"
	"sponsorship_backend/internals/features/users/auth/service"
	middlewares "sponsorship_backend/internals/middlewares"
	authMiddleware "sponsorship_backend/internals/middlewares/auth"
)

func AuthRoutes(r fiber.Router, svc *service.AuthService, limits middlewares.RateLimits) {
	ctl := controller.NewAuthController(svc)

	// anonymous
	r.Get("/login", ctl.LoginForm)
	r.Post("/login", limits.Login(), ctl.Login)
	r.Get("/signup", ctl.SignupForm)
	r.Post("/signup", limits.Signup(), ctl.Signup)

	// authenticated
	r.Get("/logout", authMiddleware.RequireAuthenticated(), ctl.Logout)
	r.Get("/me", authMiddleware.RequireAuthenticated(), ctl.Me)
}

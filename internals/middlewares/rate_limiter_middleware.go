package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "sponsorship_backend/internals/helpers"
)

// RateLimits switches every limiter in this file on or off.
type RateLimits struct {
	Enabled bool
}

func (r RateLimits) newLimiter(limit int, window time.Duration, message string, postOnly bool) fiber.Handler {
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			if !r.Enabled {
				return true
			}
			return postOnly && c.Method() != fiber.MethodPost
		},
		Max:        limit,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func (r RateLimits) Global() fiber.Handler {
	return r.newLimiter(100, time.Minute, "Too many requests, please try again later", false)
}

// Login attempts; GET of the form is not counted.
func (r RateLimits) Login() fiber.Handler {
	return r.newLimiter(5, time.Minute, "Too many login attempts, please wait a moment", true)
}

func (r RateLimits) Signup() fiber.Handler {
	return r.newLimiter(3, 5*time.Minute, "Too many signup attempts, please wait a few minutes", true)
}

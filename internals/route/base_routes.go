package routes

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/container"
	database "sponsorship_backend/internals/databases"
	"sponsorship_backend/internals/features/users/auth/session"
	helper "sponsorship_backend/internals/helpers"
)

const AppName = "Sponsorship Requests"

func BaseRoutes(r fiber.Router, ac *container.AppContext) {
	r.Get("/", func(c *fiber.Ctx) error {
		id := session.CurrentIdentity(c)
		data := fiber.Map{
			"app":           AppName,
			"authenticated": !id.IsAnonymous(),
			"is_admin":      id.IsAdmin(),
		}
		if !id.IsAnonymous() {
			data["user"] = id
		}
		return helper.JsonOK(c, "ok", data)
	})

	r.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, ac.DB); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}
		if ac.Redis != nil {
			if err := ac.Redis.Ping(ctx).Err(); err != nil {
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"session_store":  ac.Config.SessionStore,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(ac.StartedAt).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}

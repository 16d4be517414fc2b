package routes

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/container"
	helper "sponsorship_backend/internals/helpers"
	middlewares "sponsorship_backend/internals/middlewares"
)

// NewApp builds the Fiber app with the full middleware chain and routes.
func NewApp(ac *container.AppContext) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               AppName,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          errorHandler,
	})

	middlewares.SetupMiddlewares(app, ac.Config)
	SetupRoutes(app, ac)

	app.Use(func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
	})
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return helper.FromFiberError(c, err)
}

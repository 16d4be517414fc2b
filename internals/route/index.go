// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/container"
	authMiddleware "sponsorship_backend/internals/middlewares/auth"
	routeDetails "sponsorship_backend/internals/route/details"
)

// SetupRoutes mounts every route behind the identity resolver. Gates are
// applied per route inside each feature.
func SetupRoutes(app *fiber.App, ac *container.AppContext) {
	root := app.Group("", authMiddleware.ResolveIdentity(ac.Sessions))

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(root, ac)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(root, ac)

	log.Println("[INFO] Setting up SponsorshipRoutes...")
	routeDetails.SponsorshipRoutes(root, ac)
}

package details

import (
	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/container"
	requestRoute "sponsorship_backend/internals/features/sponsorships/requests/route"
)

func SponsorshipRoutes(r fiber.Router, ac *container.AppContext) {
	requestRoute.SponsorshipRequestRoutes(r, ac.Requests)
}

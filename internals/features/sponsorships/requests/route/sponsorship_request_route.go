package route

import (
	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/features/sponsorships/requests/controller"
	"sponsorship_backend/internals/features/sponsorships/requests/repository"
	authMiddleware "sponsorship_backend/internals/middlewares/auth"
)

// SponsorshipRequestRoutes mounts the submitter and admin surfaces. The
// capability gate always sits in front of the handler.
func SponsorshipRequestRoutes(r fiber.Router, repo *repository.SponsorshipRequestRepository) {
	ctl := controller.NewSponsorshipRequestController(repo)

	member := authMiddleware.RequireAuthenticated()
	r.Get("/submit", member, ctl.SubmitForm)
	r.Post("/submit", member, ctl.Submit)
	r.Get("/sponsors", member, ctl.ListSponsors)

	admin := authMiddleware.RequireAdmin()
	r.Get("/admin", admin, ctl.AdminList)
	r.Post("/admin", admin, ctl.AdminList)
	r.Post("/admin/delete/:id", admin, ctl.Delete)
	r.Get("/approve_request/:id", admin, ctl.Approve)
	r.Get("/reject_request/:id", admin, ctl.Reject)
}

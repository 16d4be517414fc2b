package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/constants"
	"sponsorship_backend/internals/features/sponsorships/requests/dto"
	"sponsorship_backend/internals/features/sponsorships/requests/repository"
	helper "sponsorship_backend/internals/helpers"
)

const msgNotFound = "Sponsorship request not found"

type SponsorshipRequestController struct {
	Repo      *repository.SponsorshipRequestRepository
	Validator *validator.Validate
}

func NewSponsorshipRequestController(repo *repository.SponsorshipRequestRepository) *SponsorshipRequestController {
	return &SponsorshipRequestController{Repo: repo, Validator: helper.NewValidator()}
}

/* ===================== SUBMIT ===================== */

// GET /submit
func (ctl *SponsorshipRequestController) SubmitForm(c *fiber.Ctx) error {
	return helper.JsonOK(c, "submission form", fiber.Map{"fields": dto.SubmitForm})
}

// POST /submit
func (ctl *SponsorshipRequestController) Submit(c *fiber.Ctx) error {
	var req dto.CreateSponsorshipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := c.UserContext()
	id, err := ctl.Repo.Insert(ctx, req.ToInput())
	if err != nil {
		log.Printf("[ERROR] submit sponsorship request: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save sponsorship request")
	}

	row, err := ctl.Repo.FindByID(ctx, id)
	if err != nil {
		log.Printf("[ERROR] reload sponsorship request %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sponsorship request")
	}
	return helper.JsonCreated(c, "Sponsorship request submitted", dto.FromModel(row))
}

/* ===================== LIST ===================== */

// GET /sponsors
func (ctl *SponsorshipRequestController) ListSponsors(c *fiber.Ctx) error {
	rows, err := ctl.Repo.ListAll(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list sponsorship requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sponsorship requests")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

// GET|POST /admin?search=&status=
// An empty search or a status of "" / "all" means no filter.
func (ctl *SponsorshipRequestController) AdminList(c *fiber.Ctx) error {
	search := helper.QueryOrForm(c, "search")
	statusRaw := strings.ToLower(strings.TrimSpace(helper.QueryOrForm(c, "status")))

	var filter repository.SearchFilter
	if search != "" {
		filter.Query = &search
	}
	if statusRaw != "" && statusRaw != "all" {
		st, err := constants.ParseRequestStatus(statusRaw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		filter.Status = &st
	}

	rows, err := ctl.Repo.Search(c.UserContext(), filter)
	if err != nil {
		log.Printf("[ERROR] admin search: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sponsorship requests")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), dto.AdminFilterEcho{Search: search, Status: statusRaw})
}

/* ===================== ADMIN ACTIONS ===================== */

// POST /admin/delete/:id
func (ctl *SponsorshipRequestController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		log.Printf("[ERROR] delete sponsorship request %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete sponsorship request")
	}
	return helper.JsonDeleted(c, "Sponsorship request deleted", fiber.Map{"id": id})
}

// GET /approve_request/:id
func (ctl *SponsorshipRequestController) Approve(c *fiber.Ctx) error {
	return ctl.setStatus(c, constants.StatusApproved)
}

// GET /reject_request/:id
func (ctl *SponsorshipRequestController) Reject(c *fiber.Ctx) error {
	return ctl.setStatus(c, constants.StatusRejected)
}

func (ctl *SponsorshipRequestController) setStatus(c *fiber.Ctx, status constants.RequestStatus) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	ctx := c.UserContext()
	if err := ctl.Repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		log.Printf("[ERROR] set status %s on %d: %v", status, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update sponsorship request")
	}

	row, err := ctl.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, msgNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load sponsorship request")
	}
	return helper.JsonUpdated(c, "Sponsorship request "+status.String(), dto.FromModel(row))
}

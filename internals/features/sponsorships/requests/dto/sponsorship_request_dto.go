package dto

import (
	"time"

	"sponsorship_backend/internals/constants"
	"sponsorship_backend/internals/features/sponsorships/requests/model"
)

/* ====================== REQUEST ====================== */

// CreateSponsorshipRequest: every field must be present, but an empty value
// is accepted as-is.
type CreateSponsorshipRequest struct {
	OrgName     *string `json:"org_name"    form:"org_name"    validate:"required"`
	EventName   *string `json:"event_name"  form:"event_name"  validate:"required"`
	Category    *string `json:"category"    form:"category"    validate:"required"`
	Description *string `json:"description" form:"description" validate:"required"`
	Email       *string `json:"email"       form:"email"       validate:"required"`
}

func (r CreateSponsorshipRequest) ToInput() model.SponsorshipRequestInput {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return model.SponsorshipRequestInput{
		OrgName:     deref(r.OrgName),
		EventName:   deref(r.EventName),
		Category:    deref(r.Category),
		Description: deref(r.Description),
		Email:       deref(r.Email),
	}
}

/* ====================== RESPONSE ====================== */

type SponsorshipRequestResponse struct {
	ID          int64                   `json:"id"`
	OrgName     string                  `json:"org_name"`
	EventName   string                  `json:"event_name"`
	Category    string                  `json:"category"`
	Description string                  `json:"description"`
	Email       string                  `json:"email"`
	Status      constants.RequestStatus `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
}

func FromModel(m *model.SponsorshipRequest) SponsorshipRequestResponse {
	return SponsorshipRequestResponse{
		ID:          m.ID,
		OrgName:     m.OrgName,
		EventName:   m.EventName,
		Category:    m.Category,
		Description: m.Description,
		Email:       m.Email,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

func FromModels(rows []model.SponsorshipRequest) []SponsorshipRequestResponse {
	out := make([]SponsorshipRequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

// AdminFilterEcho is returned alongside the admin list so clients can
// redisplay the active filter.
type AdminFilterEcho struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

// FormField describes one input of the submission form.
type FormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

var SubmitForm = []FormField{
	{Name: "org_name", Type: "text", Required: true},
	{Name: "event_name", Type: "text", Required: true},
	{Name: "category", Type: "text", Required: true},
	{Name: "description", Type: "textarea", Required: true},
	{Name: "email", Type: "email", Required: true},
}

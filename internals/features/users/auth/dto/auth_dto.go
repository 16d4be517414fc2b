package dto

import (
	"strings"

	"sponsorship_backend/internals/constants"
	authModel "sponsorship_backend/internals/features/users/auth/model"
)

/* ====================== REQUEST ====================== */

type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=150"`
	Password string `json:"password" form:"password" validate:"required,max=72"`
	Role     string `json:"role"     form:"role"     validate:"omitempty,oneof=member admin"`
}

// Normalize trims the username and lowercases the role. The password is
// taken as-is.
func (r *SignupRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

/* ====================== RESPONSE ====================== */

type AccountResponse struct {
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	Role     constants.Role `json:"role"`
}

func FromAccount(u *authModel.UserAccount) AccountResponse {
	return AccountResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}

// FormField describes one input of a form served on GET.
type FormField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

var LoginForm = []FormField{
	{Name: "username", Type: "text", Required: true},
	{Name: "password", Type: "password", Required: true},
}

var SignupForm = []FormField{
	{Name: "username", Type: "text", Required: true},
	{Name: "password", Type: "password", Required: true},
	{Name: "role", Type: "select", Options: []string{constants.RoleMember.String(), constants.RoleAdmin.String()}},
}

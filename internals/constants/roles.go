package constants

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles. It is validated once when an
// account is created and never re-parsed on authorization checks.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RoleMember,
		RoleAdmin,
	}

	AdminOnly = []Role{
		RoleAdmin,
	}
)

func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

func (r Role) String() string { return string(r) }

// ParseRole maps user input to a Role. Empty input is the default member role.
func ParseRole(s string) (Role, error) {
	v := Role(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return RoleMember, nil
	}
	if !v.Valid() {
		return "", fmt.Errorf("invalid role %q", s)
	}
	return v, nil
}

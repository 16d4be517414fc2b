package session

import (
	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/constants"
)

const LocalsIdentity = "identity"

// Identity is who the current request acts as. The zero value is anonymous.
type Identity struct {
	UserID    int64          `json:"user_id,omitempty"`
	Username  string         `json:"username,omitempty"`
	Role      constants.Role `json:"role,omitempty"`
	SessionID string         `json:"-"`
}

func Anonymous() Identity { return Identity{} }

func (i Identity) IsAnonymous() bool { return i.UserID == 0 }

func (i Identity) IsAdmin() bool { return !i.IsAnonymous() && i.Role.IsAdmin() }

// SetIdentity stores id in the request locals, replacing any earlier value.
func SetIdentity(c *fiber.Ctx, id Identity) {
	c.Locals(LocalsIdentity, id)
}

// CurrentIdentity reads the identity resolved earlier in the chain. It never
// touches storage.
func CurrentIdentity(c *fiber.Ctx) Identity {
	if id, ok := c.Locals(LocalsIdentity).(Identity); ok {
		return id
	}
	return Anonymous()
}

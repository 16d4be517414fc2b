package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/constants"
	"sponsorship_backend/internals/features/users/auth/session"
)

type fixedResolver struct {
	id  session.Identity
	err error
}

func (f fixedResolver) Resolve(*fiber.Ctx) (session.Identity, error) { return f.id, f.err }

func newGateApp(resolver IdentityResolver, executed *int) *fiber.App {
	app := fiber.New()
	app.Use(ResolveIdentity(resolver))
	handler := func(c *fiber.Ctx) error {
		*executed++
		return c.SendStatus(fiber.StatusNoContent)
	}
	app.Get("/member", RequireAuthenticated(), handler)
	app.Get("/admin", RequireAdmin(), handler)
	return app
}

func TestGates(t *testing.T) {
	member := session.Identity{UserID: 1, Username: "m", Role: constants.RoleMember}
	admin := session.Identity{UserID: 2, Username: "a", Role: constants.RoleAdmin}

	cases := []struct {
		name     string
		id       session.Identity
		path     string
		status   int
		location string
	}{
		{"anonymous member route", session.Anonymous(), "/member", fiber.StatusFound, "/login"},
		{"anonymous admin route", session.Anonymous(), "/admin", fiber.StatusFound, "/login"},
		{"member member route", member, "/member", fiber.StatusNoContent, ""},
		{"member admin route", member, "/admin", fiber.StatusFound, "/"},
		{"admin member route", admin, "/member", fiber.StatusNoContent, ""},
		{"admin admin route", admin, "/admin", fiber.StatusNoContent, ""},
	}
	for _, tc := range cases {
		executed := 0
		app := newGateApp(fixedResolver{id: tc.id}, &executed)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil), -1)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if resp.StatusCode != tc.status {
			t.Errorf("%s: status %d, want %d", tc.name, resp.StatusCode, tc.status)
		}
		if got := resp.Header.Get(fiber.HeaderLocation); got != tc.location {
			t.Errorf("%s: Location %q, want %q", tc.name, got, tc.location)
		}
		wantExec := 0
		if tc.status == fiber.StatusNoContent {
			wantExec = 1
		}
		if executed != wantExec {
			t.Errorf("%s: handler ran %d times, want %d", tc.name, executed, wantExec)
		}
	}
}

func TestResolveIdentityStorageError(t *testing.T) {
	executed := 0
	app := newGateApp(fixedResolver{err: errors.New("db down")}, &executed)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/member", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status %d, want 500", resp.StatusCode)
	}
	if executed != 0 {
		t.Fatal("handler ran despite resolver failure")
	}
}

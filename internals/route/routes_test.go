package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/go-test/deep"
	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/constants"
	"sponsorship_backend/internals/container"
	"sponsorship_backend/internals/databases/dbtest"
	"sponsorship_backend/internals/features/sponsorships/requests/model"
	authHelper "sponsorship_backend/internals/features/users/auth/helper"
	"sponsorship_backend/internals/features/users/auth/session"
)

const (
	adminUser = "admin"
	adminPass = "admin-pass"
)

type testEnv struct {
	app *fiber.App
	ac  *container.AppContext
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	authHelper.BcryptCost = 4

	cfg := dbtest.Config(t)
	cfg.AdminUsername = adminUser
	cfg.AdminPassword = adminPass
	cfg.RateLimitEnabled = false
	cfg.CorsOrigins = "http://localhost:5173"

	ac, err := container.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("container.New: %v", err)
	}
	t.Cleanup(ac.Close)

	return &testEnv{app: NewApp(ac), ac: ac}
}

type envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      json.RawMessage     `json:"data"`
}

func (e *testEnv) request(t *testing.T, method, target string, form url.Values, cookie string) (*http.Response, envelope) {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	raw, _ := io.ReadAll(resp.Body)

	var env envelope
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		if err := sonic.Unmarshal(raw, &env); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	}
	return resp, env
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	resp, env := e.request(t, http.MethodPost, "/login", url.Values{"username": {username}, "password": {password}}, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login %s: status %d (%s)", username, resp.StatusCode, env.Message)
	}
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c.Value
		}
	}
	t.Fatalf("login %s: no session cookie", username)
	return ""
}

func (e *testEnv) signupAndLogin(t *testing.T, username, password string) string {
	t.Helper()
	resp, env := e.request(t, http.MethodPost, "/signup", url.Values{"username": {username}, "password": {password}}, "")
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("signup %s: status %d (%s)", username, resp.StatusCode, env.Message)
	}
	return e.login(t, username, password)
}

func (e *testEnv) seedRequests(t *testing.T) []int64 {
	t.Helper()
	ctx := context.Background()
	a, err := e.ac.Requests.Insert(ctx, model.SponsorshipRequestInput{OrgName: "A", EventName: "Gala Night", Category: "arts", Description: "...", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	b, err := e.ac.Requests.Insert(ctx, model.SponsorshipRequestInput{OrgName: "B", EventName: "Gala Day", Category: "sports", Description: "...", Email: "b@x.com"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := e.ac.Requests.UpdateStatus(ctx, b, constants.StatusApproved); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	return []int64{a, b}
}

func (e *testEnv) snapshot(t *testing.T) []model.SponsorshipRequest {
	t.Helper()
	rows, err := e.ac.Requests.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	return rows
}

type requestRow struct {
	ID        int64  `json:"id"`
	OrgName   string `json:"org_name"`
	EventName string `json:"event_name"`
	Status    string `json:"status"`
}

func decodeRows(t *testing.T, env envelope) []requestRow {
	t.Helper()
	var rows []requestRow
	if err := sonic.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	return rows
}

func expectRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("status %d, want 302", resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderLocation); got != location {
		t.Fatalf("Location %q, want %q", got, location)
	}
}

/* ====================== authorization ====================== */

func TestAdminRequiresAdmin(t *testing.T) {
	e := newTestEnv(t)
	e.seedRequests(t)
	before := e.snapshot(t)

	resp, env := e.request(t, http.MethodGet, "/admin", nil, "")
	expectRedirect(t, resp, "/login")
	if env.Data != nil {
		t.Fatal("anonymous redirect must not carry records")
	}

	member := e.signupAndLogin(t, "member", "member-pass")
	resp, env = e.request(t, http.MethodGet, "/admin", nil, member)
	expectRedirect(t, resp, "/")
	if env.Data != nil {
		t.Fatal("member redirect must not carry records")
	}

	if diff := deep.Equal(e.snapshot(t), before); diff != nil {
		t.Fatal(diff)
	}
}

func TestAdminSearchAndStatusFilter(t *testing.T) {
	e := newTestEnv(t)
	ids := e.seedRequests(t)
	admin := e.login(t, adminUser, adminPass)

	resp, env := e.request(t, http.MethodGet, "/admin?search=Gala&status=pending", nil, admin)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	want := []requestRow{{ID: ids[0], OrgName: "A", EventName: "Gala Night", Status: "pending"}}
	if diff := deep.Equal(decodeRows(t, env), want); diff != nil {
		t.Fatal(diff)
	}

	// Same filter through a form post.
	resp, env = e.request(t, http.MethodPost, "/admin", url.Values{"search": {"Gala"}, "status": {"approved"}}, admin)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	rows := decodeRows(t, env)
	if len(rows) != 1 || rows[0].ID != ids[1] {
		t.Fatalf("got %+v", rows)
	}

	_, env = e.request(t, http.MethodGet, "/admin?status=all", nil, admin)
	if rows := decodeRows(t, env); len(rows) != 2 {
		t.Fatalf("status=all returned %d rows", len(rows))
	}

	resp, _ = e.request(t, http.MethodGet, "/admin?status=archived", nil, admin)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("invalid status: %d, want 400", resp.StatusCode)
	}
}

func TestAdminSearchKeepsWhitespace(t *testing.T) {
	e := newTestEnv(t)
	e.seedRequests(t)
	if _, err := e.ac.Requests.Insert(context.Background(), model.SponsorshipRequestInput{OrgName: "C", EventName: "Gala", Category: "music", Description: "...", Email: "c@x.com"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	admin := e.login(t, adminUser, adminPass)

	_, env := e.request(t, http.MethodGet, "/admin?search=Night%20", nil, admin)
	if rows := decodeRows(t, env); len(rows) != 0 {
		t.Fatalf("trailing space must be part of the query, got %+v", rows)
	}

	_, env = e.request(t, http.MethodGet, "/admin?search=%20", nil, admin)
	rows := decodeRows(t, env)
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.EventName)
	}
	if diff := deep.Equal(names, []string{"Gala Night", "Gala Day"}); diff != nil {
		t.Fatal(diff)
	}

	_, env = e.request(t, http.MethodPost, "/admin", url.Values{"search": {"Day "}}, admin)
	if rows := decodeRows(t, env); len(rows) != 0 {
		t.Fatalf("form search must keep trailing space, got %+v", rows)
	}
}

func TestNonAdminCannotMutate(t *testing.T) {
	e := newTestEnv(t)
	ids := e.seedRequests(t)
	before := e.snapshot(t)
	member := e.signupAndLogin(t, "member", "member-pass")

	target := "/admin/delete/" + itoa(ids[0])
	resp, _ := e.request(t, http.MethodPost, target, nil, "")
	expectRedirect(t, resp, "/login")
	resp, _ = e.request(t, http.MethodPost, target, nil, member)
	expectRedirect(t, resp, "/")

	resp, _ = e.request(t, http.MethodGet, "/approve_request/"+itoa(ids[0]), nil, member)
	expectRedirect(t, resp, "/")
	resp, _ = e.request(t, http.MethodGet, "/reject_request/"+itoa(ids[1]), nil, "")
	expectRedirect(t, resp, "/login")

	if diff := deep.Equal(e.snapshot(t), before); diff != nil {
		t.Fatal(diff)
	}
}

/* ====================== admin actions ====================== */

func TestAdminApproveRejectDelete(t *testing.T) {
	e := newTestEnv(t)
	ids := e.seedRequests(t)
	admin := e.login(t, adminUser, adminPass)

	resp, env := e.request(t, http.MethodGet, "/approve_request/"+itoa(ids[0]), nil, admin)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("approve: %d %s", resp.StatusCode, env.Message)
	}
	resp, _ = e.request(t, http.MethodGet, "/reject_request/"+itoa(ids[0]), nil, admin)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("reject: %d", resp.StatusCode)
	}
	row, err := e.ac.Requests.FindByID(context.Background(), ids[0])
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if row.Status != constants.StatusRejected {
		t.Fatalf("status %s, want rejected", row.Status)
	}

	resp, env = e.request(t, http.MethodGet, "/approve_request/9999", nil, admin)
	if resp.StatusCode != fiber.StatusNotFound || env.Message != "Sponsorship request not found" {
		t.Fatalf("approve missing: %d %q", resp.StatusCode, env.Message)
	}
	resp, _ = e.request(t, http.MethodGet, "/approve_request/abc", nil, admin)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("approve bad id: %d", resp.StatusCode)
	}

	before := e.snapshot(t)
	resp, _ = e.request(t, http.MethodPost, "/admin/delete/9999", nil, admin)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("delete missing: %d", resp.StatusCode)
	}
	if diff := deep.Equal(e.snapshot(t), before); diff != nil {
		t.Fatal(diff)
	}

	resp, _ = e.request(t, http.MethodPost, "/admin/delete/"+itoa(ids[1]), nil, admin)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete: %d", resp.StatusCode)
	}
	after := e.snapshot(t)
	if len(after) != 1 || after[0].ID != ids[0] {
		t.Fatalf("after delete: %+v", after)
	}
}

/* ====================== submit / sponsors ====================== */

func TestSubmitAndList(t *testing.T) {
	e := newTestEnv(t)

	form := url.Values{
		"org_name":    {"Acme"},
		"event_name":  {"Hack Night"},
		"category":    {"tech"},
		"description": {""},
		"email":       {"team@acme.test"},
	}
	resp, _ := e.request(t, http.MethodPost, "/submit", form, "")
	expectRedirect(t, resp, "/login")
	resp, _ = e.request(t, http.MethodGet, "/sponsors", nil, "")
	expectRedirect(t, resp, "/login")
	if rows := e.snapshot(t); len(rows) != 0 {
		t.Fatalf("anonymous submit wrote %d rows", len(rows))
	}

	member := e.signupAndLogin(t, "member", "member-pass")

	resp, env := e.request(t, http.MethodGet, "/submit", nil, member)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("submit form: %d", resp.StatusCode)
	}

	resp, env = e.request(t, http.MethodPost, "/submit", form, member)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("submit: %d %s %v", resp.StatusCode, env.Message, env.Errors)
	}
	var created requestRow
	if err := sonic.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Status != "pending" || created.OrgName != "Acme" {
		t.Fatalf("created %+v", created)
	}

	missing := url.Values{"org_name": {"NoEmail"}, "event_name": {"x"}, "category": {"x"}, "description": {"x"}}
	resp, env = e.request(t, http.MethodPost, "/submit", missing, member)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("missing field: %d", resp.StatusCode)
	}
	if _, ok := env.Errors["email"]; !ok {
		t.Fatalf("errors %v should name email", env.Errors)
	}

	resp, env = e.request(t, http.MethodGet, "/sponsors", nil, member)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("sponsors: %d", resp.StatusCode)
	}
	rows := decodeRows(t, env)
	if len(rows) != 1 || rows[0].ID != created.ID || rows[0].Status != "pending" {
		t.Fatalf("sponsors %+v", rows)
	}
}

/* ====================== auth flow ====================== */

func TestSignupDuplicate(t *testing.T) {
	e := newTestEnv(t)
	e.signupAndLogin(t, "dup", "pw-1")

	resp, env := e.request(t, http.MethodPost, "/signup", url.Values{"username": {"dup"}, "password": {"pw-2"}}, "")
	if resp.StatusCode != fiber.StatusConflict || env.Message != "Username already taken" {
		t.Fatalf("duplicate signup: %d %q", resp.StatusCode, env.Message)
	}
	n, _ := e.ac.Users.Count(context.Background())
	if n != 2 { // admin + dup
		t.Fatalf("users = %d, want 2", n)
	}
}

func TestSignupAdminRoleDisabled(t *testing.T) {
	e := newTestEnv(t)
	resp, _ := e.request(t, http.MethodPost, "/signup", url.Values{"username": {"x"}, "password": {"y"}, "role": {"admin"}}, "")
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("admin signup: %d, want 403", resp.StatusCode)
	}
	resp, _ = e.request(t, http.MethodPost, "/signup", url.Values{"username": {"x"}, "password": {"y"}, "role": {"owner"}}, "")
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("unknown role: %d, want 422", resp.StatusCode)
	}
}

func TestLoginInvalidCredentialsAreGeneric(t *testing.T) {
	e := newTestEnv(t)
	e.signupAndLogin(t, "known", "right")

	unknown, envUnknown := e.request(t, http.MethodPost, "/login", url.Values{"username": {"ghost"}, "password": {"right"}}, "")
	wrong, envWrong := e.request(t, http.MethodPost, "/login", url.Values{"username": {"known"}, "password": {"wrong"}}, "")

	if unknown.StatusCode != fiber.StatusUnauthorized || wrong.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("statuses %d / %d, want 401", unknown.StatusCode, wrong.StatusCode)
	}
	if envUnknown.Message != envWrong.Message {
		t.Fatalf("messages differ: %q vs %q", envUnknown.Message, envWrong.Message)
	}
	for _, r := range []*http.Response{unknown, wrong} {
		for _, c := range r.Cookies() {
			if c.Name == session.CookieName && c.Value != "" {
				t.Fatal("failed login set a session cookie")
			}
		}
	}
}

func TestLogout(t *testing.T) {
	e := newTestEnv(t)
	token := e.signupAndLogin(t, "member", "member-pass")

	resp, env := e.request(t, http.MethodGet, "/me", nil, token)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("me: %d", resp.StatusCode)
	}
	var me struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	if err := sonic.Unmarshal(env.Data, &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.Username != "member" || me.Role != "member" {
		t.Fatalf("me = %+v", me)
	}

	resp, _ = e.request(t, http.MethodGet, "/logout", nil, token)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("logout: %d", resp.StatusCode)
	}

	resp, _ = e.request(t, http.MethodGet, "/sponsors", nil, token)
	expectRedirect(t, resp, "/login")
	resp, _ = e.request(t, http.MethodGet, "/logout", nil, token)
	expectRedirect(t, resp, "/login")
}

func TestLandingAndForms(t *testing.T) {
	e := newTestEnv(t)
	for _, path := range []string{"/", "/login", "/signup", "/health"} {
		resp, _ := e.request(t, http.MethodGet, path, nil, "")
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("GET %s: %d", path, resp.StatusCode)
		}
	}
	resp, _ := e.request(t, http.MethodGet, "/nope", nil, "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown route: %d", resp.StatusCode)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

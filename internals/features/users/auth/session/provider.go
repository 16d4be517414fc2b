package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	authModel "sponsorship_backend/internals/features/users/auth/model"
	authRepo "sponsorship_backend/internals/features/users/auth/repository"
)

const CookieName = "sponsorship_session"

// UserLookup rehydrates the account a session points at.
type UserLookup interface {
	FindByID(ctx context.Context, id int64) (*authModel.UserAccount, error)
}

// Provider issues, clears and resolves session tokens.
type Provider struct {
	Store        Store
	Signer       *Signer
	Users        UserLookup
	TTL          time.Duration
	CookieSecure bool

	Now func() time.Time
}

func NewProvider(store Store, users UserLookup, secret string, ttl time.Duration, cookieSecure bool) *Provider {
	return &Provider{
		Store:        store,
		Signer:       NewSigner(secret, ttl),
		Users:        users,
		TTL:          ttl,
		CookieSecure: cookieSecure,
		Now:          func() time.Time { return time.Now().UTC() },
	}
}

func (p *Provider) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now().UTC()
}

/* ====================== LOGIN / LOGOUT ====================== */

// Login starts a fresh session for account. Whatever session the client
// presented before is revoked first.
func (p *Provider) Login(c *fiber.Ctx, account *authModel.UserAccount) (string, error) {
	if account == nil || account.ID == 0 {
		return "", errors.New("login without account")
	}
	ctx := c.UserContext()

	if prior := p.presentedSessionID(c); prior != "" {
		if err := p.Store.Delete(ctx, prior); err != nil {
			log.Printf("[WARN] revoke prior session %s: %v", prior, err)
		}
	}

	now := p.now()
	rec := Record{
		ID:        NewID(),
		UserID:    account.ID,
		ExpiresAt: now.Add(p.TTL),
		Client: map[string]interface{}{
			"user_agent": c.Get(fiber.HeaderUserAgent),
			"ip":         c.IP(),
		},
	}
	if err := p.Store.Save(ctx, rec); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	token, err := p.Signer.Sign(rec.ID, now)
	if err != nil {
		_ = p.Store.Delete(ctx, rec.ID)
		return "", fmt.Errorf("sign session: %w", err)
	}

	p.setCookie(c, token, rec.ExpiresAt)
	SetIdentity(c, Identity{
		UserID:    account.ID,
		Username:  account.Username,
		Role:      account.Role,
		SessionID: rec.ID,
	})
	return token, nil
}

// Logout drops the server-side session and expires the cookie. It is
// idempotent.
func (p *Provider) Logout(c *fiber.Ctx) error {
	sid := CurrentIdentity(c).SessionID
	if sid == "" {
		sid = p.presentedSessionID(c)
	}

	p.clearCookie(c)
	SetIdentity(c, Anonymous())

	if sid == "" {
		return nil
	}
	if err := p.Store.Delete(c.UserContext(), sid); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

/* ====================== RESOLVE ====================== */

// Resolve maps the presented token to an identity. Missing, forged, expired
// or revoked tokens resolve to Anonymous with a nil error; only storage
// failures are returned.
func (p *Provider) Resolve(c *fiber.Ctx) (Identity, error) {
	sid := p.presentedSessionID(c)
	if sid == "" {
		return Anonymous(), nil
	}
	ctx := c.UserContext()

	rec, err := p.Store.Find(ctx, sid, p.now())
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return Anonymous(), nil
		}
		return Anonymous(), fmt.Errorf("find session: %w", err)
	}

	user, err := p.Users.FindByID(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, authRepo.ErrNotFound) {
			return Anonymous(), nil
		}
		return Anonymous(), fmt.Errorf("find session user: %w", err)
	}

	return Identity{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		SessionID: rec.ID,
	}, nil
}

// presentedSessionID returns the verified session id from the cookie or a
// Bearer header, or "" when there is none.
func (p *Provider) presentedSessionID(c *fiber.Ctx) string {
	token := strings.TrimSpace(c.Cookies(CookieName))
	if token == "" {
		if h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
	}
	if token == "" {
		return ""
	}
	sid, err := p.Signer.Parse(token)
	if err != nil {
		return ""
	}
	return sid
}

/* ====================== COOKIES ====================== */

func (p *Provider) setCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   p.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  expires,
	})
}

func (p *Provider) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   p.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  p.now().Add(-time.Hour),
		MaxAge:   -1,
	})
}

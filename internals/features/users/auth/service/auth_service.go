package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"sponsorship_backend/internals/constants"
	"sponsorship_backend/internals/features/users/auth/dto"
	authHelper "sponsorship_backend/internals/features/users/auth/helper"
	authModel "sponsorship_backend/internals/features/users/auth/model"
	authRepo "sponsorship_backend/internals/features/users/auth/repository"
	"sponsorship_backend/internals/features/users/auth/session"
)

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrAdminSignupDisabled = errors.New("admin signup is disabled")
)

// dummyHash keeps the unknown-username path about as slow as a real
// password check.
var dummyHash, _ = authHelper.HashPassword("not-a-real-password")

type AuthService struct {
	Users            *authRepo.UserRepository
	Sessions         *session.Provider
	AllowAdminSignup bool
}

func NewAuthService(users *authRepo.UserRepository, sessions *session.Provider, allowAdminSignup bool) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, AllowAdminSignup: allowAdminSignup}
}

/* ==========================
   SIGNUP
========================== */

func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*authModel.UserAccount, error) {
	role, err := constants.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", authRepo.ErrInvalidRole, err)
	}
	if role.IsAdmin() && !s.AllowAdminSignup {
		return nil, ErrAdminSignupDisabled
	}

	id, err := s.Users.CreateAccount(ctx, req.Username, req.Password, role)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] account created id=%d role=%s", id, role)

	return &authModel.UserAccount{
		ID:       id,
		Username: authHelper.NormalizeUsername(req.Username),
		Role:     role,
	}, nil
}

/* ==========================
   LOGIN / LOGOUT
========================== */

// Login checks the credentials and starts a session. Unknown usernames and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(c *fiber.Ctx, req dto.LoginRequest) (*authModel.UserAccount, error) {
	account, err := s.Users.FindByUsername(c.UserContext(), req.Username)
	if err != nil {
		if errors.Is(err, authRepo.ErrNotFound) {
			_ = authHelper.CheckPasswordHash(dummyHash, req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.Users.VerifyPassword(account, req.Password) {
		return nil, ErrInvalidCredentials
	}

	if _, err := s.Sessions.Login(c, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AuthService) Logout(c *fiber.Ctx) error {
	return s.Sessions.Logout(c)
}

// Me reloads the account behind the current identity.
func (s *AuthService) Me(c *fiber.Ctx) (*authModel.UserAccount, error) {
	id := session.CurrentIdentity(c)
	if id.IsAnonymous() {
		return nil, authRepo.ErrNotFound
	}
	return s.Users.FindByID(c.UserContext(), id.UserID)
}

package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"sponsorship_backend/internals/features/users/auth/dto"
	authRepo "sponsorship_backend/internals/features/users/auth/repository"
	"sponsorship_backend/internals/features/users/auth/service"
	helper "sponsorship_backend/internals/helpers"
)

type AuthController struct {
	Service   *service.AuthService
	Validator *validator.Validate
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc, Validator: helper.NewValidator()}
}

// GET /signup
func (ac *AuthController) SignupForm(c *fiber.Ctx) error {
	return helper.JsonOK(c, "signup form", fiber.Map{"fields": dto.SignupForm})
}

// POST /signup
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ac.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	account, err := ac.Service.Signup(c.UserContext(), req)
	switch {
	case err == nil:
		return helper.JsonCreated(c, "Account created", dto.FromAccount(account))
	case errors.Is(err, authRepo.ErrDuplicateUsername):
		return helper.JsonError(c, fiber.StatusConflict, "Username already taken")
	case errors.Is(err, service.ErrAdminSignupDisabled):
		return helper.JsonError(c, fiber.StatusForbidden, "Admin accounts cannot be created through signup")
	case errors.Is(err, authRepo.ErrInvalidRole):
		return helper.JsonValidationError(c, map[string][]string{"role": {"oneof=member admin"}})
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return helper.JsonValidationError(c, map[string][]string{"password": {"max=72"}})
	default:
		log.Printf("[ERROR] signup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}
}

// GET /login
func (ac *AuthController) LoginForm(c *fiber.Ctx) error {
	return helper.JsonOK(c, "login form", fiber.Map{"fields": dto.LoginForm})
}

// POST /login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ac.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	account, err := ac.Service.Login(c, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		log.Printf("[ERROR] login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	return helper.JsonOK(c, "Login successful", dto.FromAccount(account))
}

// GET /logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Service.Logout(c); err != nil {
		log.Printf("[ERROR] logout: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return helper.JsonOK(c, "Logout successful", nil)
}

// GET /me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	account, err := ac.Service.Me(c)
	if err != nil {
		if errors.Is(err, authRepo.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not logged in")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}
	return helper.JsonOK(c, "ok", dto.FromAccount(account))
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"sponsorship_backend/internals/constants"
	authRepo "sponsorship_backend/internals/features/users/auth/repository"
)

// SeedAdmin creates the bootstrap admin account unless an account with that
// username already exists. It reports whether a row was written.
func SeedAdmin(ctx context.Context, users *authRepo.UserRepository, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}

	existing, err := users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if !existing.Role.IsAdmin() {
			log.Printf("[WARN] seed admin: %q exists with role %s, left unchanged", username, existing.Role)
		} else {
			log.Printf("[INFO] seed admin: %q already exists, skipped", username)
		}
		return false, nil
	case !errors.Is(err, authRepo.ErrNotFound):
		return false, fmt.Errorf("seed admin lookup: %w", err)
	}

	if _, err := users.CreateAccount(ctx, username, password, constants.RoleAdmin); err != nil {
		if errors.Is(err, authRepo.ErrDuplicateUsername) {
			return false, nil
		}
		return false, fmt.Errorf("seed admin: %w", err)
	}
	log.Printf("[INFO] seed admin: %q created", username)
	return true, nil
}

package seeds

import (
	"context"

	"sponsorship_backend/internals/configs"
	authRepo "sponsorship_backend/internals/features/users/auth/repository"
	users "sponsorship_backend/internals/seeds/users/auth"
)

// RunAllSeeds is safe to run on every start.
func RunAllSeeds(ctx context.Context, cfg *configs.Config, userRepo *authRepo.UserRepository) error {
	//* User
	if _, err := users.SeedAdmin(ctx, userRepo, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return err
	}
	return nil
}

// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sponsorship_backend/internals/constants"
	database "sponsorship_backend/internals/databases"
	authHelper "sponsorship_backend/internals/features/users/auth/helper"
	authModel "sponsorship_backend/internals/features/users/auth/model"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrInvalidRole       = errors.New("invalid role")
)

// UserRepository is the credential store.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

/* ====================== USER ====================== */

// CreateAccount hashes password and inserts the account. Uniqueness is left
// to the storage index so that two racing signups cannot both win.
func (r *UserRepository) CreateAccount(ctx context.Context, username, password string, role constants.Role) (int64, error) {
	if !role.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := authModel.UserAccount{
		Username:     authHelper.NormalizeUsername(username),
		PasswordHash: hash,
		Role:         role,
	}
	if err := r.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*authModel.UserAccount, error) {
	var user authModel.UserAccount
	err := r.DB.WithContext(ctx).
		Where("username = ?", authHelper.NormalizeUsername(username)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*authModel.UserAccount, error) {
	var user authModel.UserAccount
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifyPassword compares plaintext against the stored bcrypt hash.
func (r *UserRepository) VerifyPassword(account *authModel.UserAccount, plaintext string) bool {
	if account == nil || account.PasswordHash == "" {
		return false
	}
	return authHelper.CheckPasswordHash(account.PasswordHash, plaintext) == nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&authModel.UserAccount{}).Count(&n).Error
	return n, err
}

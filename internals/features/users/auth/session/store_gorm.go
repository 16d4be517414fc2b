package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	authModel "sponsorship_backend/internals/features/users/auth/model"
)

// GormStore keeps sessions in the sessions table.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Save(ctx context.Context, rec Record) error {
	row := authModel.Session{
		ID:        rec.ID,
		UserID:    rec.UserID,
		ExpiresAt: rec.ExpiresAt.UTC(),
		Client:    datatypes.JSONMap(rec.Client),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *GormStore) Find(ctx context.Context, id string, now time.Time) (*Record, error) {
	var row authModel.Session
	err := s.DB.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, now.UTC()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return &Record{
		ID:        row.ID,
		UserID:    row.UserID,
		ExpiresAt: row.ExpiresAt,
		Client:    map[string]interface{}(row.Client),
	}, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Where("id = ?", id).Delete(&authModel.Session{}).Error
}

func (s *GormStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("expires_at <= ?", before.UTC()).
		Delete(&authModel.Session{})
	return res.RowsAffected, res.Error
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"sponsorship_backend/internals/constants"
	"sponsorship_backend/internals/features/sponsorships/requests/model"
)

var (
	ErrNotFound      = errors.New("sponsorship request not found")
	ErrInvalidStatus = errors.New("invalid sponsorship request status")
)

// searchColumns are matched by the free-text query. Email is not searched.
var searchColumns = []string{"org_name", "event_name", "category", "description"}

// SearchFilter: nil fields impose no constraint.
type SearchFilter struct {
	Query  *string
	Status *constants.RequestStatus
}

type SponsorshipRequestRepository struct {
	DB *gorm.DB
}

func NewSponsorshipRequestRepository(db *gorm.DB) *SponsorshipRequestRepository {
	return &SponsorshipRequestRepository{DB: db}
}

// Insert stores a new request in the pending state and returns its id.
func (r *SponsorshipRequestRepository) Insert(ctx context.Context, in model.SponsorshipRequestInput) (int64, error) {
	row := model.SponsorshipRequest{
		OrgName:     in.OrgName,
		EventName:   in.EventName,
		Category:    in.Category,
		Description: in.Description,
		Email:       in.Email,
		Status:      constants.StatusPending,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("insert sponsorship request: %w", err)
	}
	return row.ID, nil
}

func (r *SponsorshipRequestRepository) ListAll(ctx context.Context) ([]model.SponsorshipRequest, error) {
	return r.Search(ctx, SearchFilter{})
}

func (r *SponsorshipRequestRepository) Search(ctx context.Context, f SearchFilter) ([]model.SponsorshipRequest, error) {
	q := r.DB.WithContext(ctx).Model(&model.SponsorshipRequest{})

	if f.Query != nil {
		pattern := "%" + escapeLike(*f.Query) + "%"
		conds := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			conds[i] = col + " LIKE ? ESCAPE '!'"
			args[i] = pattern
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	if f.Status != nil {
		if !f.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		q = q.Where("status = ?", *f.Status)
	}

	rows := make([]model.SponsorshipRequest, 0)
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("search sponsorship requests: %w", err)
	}
	return rows, nil
}

func (r *SponsorshipRequestRepository) FindByID(ctx context.Context, id int64) (*model.SponsorshipRequest, error) {
	var row model.SponsorshipRequest
	if err := r.DB.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// UpdateStatus overwrites the status. Any status may replace any other.
func (r *SponsorshipRequestRepository) UpdateStatus(ctx context.Context, id int64, status constants.RequestStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	res := r.DB.WithContext(ctx).
		Model(&model.SponsorshipRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update sponsorship request status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row for good.
func (r *SponsorshipRequestRepository) Delete(ctx context.Context, id int64) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.SponsorshipRequest{})
	if res.Error != nil {
		return fmt.Errorf("delete sponsorship request: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SponsorshipRequestRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.SponsorshipRequest{}).Count(&n).Error
	return n, err
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

package model

import (
	"time"

	"sponsorship_backend/internals/constants"
)

// SponsorshipRequest merepresentasikan tabel sponsorship_requests.
type SponsorshipRequest struct {
	ID          int64                   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrgName     string                  `gorm:"type:text;not null;column:org_name" json:"org_name"`
	EventName   string                  `gorm:"type:text;not null;column:event_name" json:"event_name"`
	Category    string                  `gorm:"type:text;not null;column:category" json:"category"`
	Description string                  `gorm:"type:text;not null;column:description" json:"description"`
	Email       string                  `gorm:"type:text;not null;column:email" json:"email"`
	Status      constants.RequestStatus `gorm:"type:varchar(16);not null;default:'pending';index:idx_sponsorship_requests_status;column:status;check:chk_sponsorship_requests_status,status IN ('pending','approved','rejected')" json:"status"`
	CreatedAt   time.Time               `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SponsorshipRequest) TableName() string {
	return "sponsorship_requests"
}

// SponsorshipRequestInput is what a submitter provides. Values are stored
// verbatim; empty strings are allowed.
type SponsorshipRequestInput struct {
	OrgName     string
	EventName   string
	Category    string
	Description string
	Email       string
}

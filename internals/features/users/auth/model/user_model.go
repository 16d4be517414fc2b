package model

import (
	"time"

	"sponsorship_backend/internals/constants"
)

// UserAccount merepresentasikan tabel users. PasswordHash never leaves the
// server in JSON.
type UserAccount struct {
	ID           int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username     string         `gorm:"size:150;not null;uniqueIndex:uq_users_username;column:username" json:"username"`
	PasswordHash string         `gorm:"type:varchar(255);not null;column:password_hash" json:"-"`
	Role         constants.Role `gorm:"type:varchar(16);not null;default:'member';column:role;check:chk_users_role,role IN ('member','admin')" json:"role"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserAccount) TableName() string {
	return "users"
}

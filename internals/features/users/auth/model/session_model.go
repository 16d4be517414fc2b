package model

import (
	"time"

	"gorm.io/datatypes"
)

// Session binds an opaque session id to an account. The id is the only thing
// the client ever sees (inside the signed cookie).
type Session struct {
	ID        string            `gorm:"type:varchar(36);primaryKey;column:id" json:"id"`
	UserID    int64             `gorm:"not null;index:idx_sessions_user;column:user_id" json:"user_id"`
	ExpiresAt time.Time         `gorm:"not null;index:idx_sessions_expires;column:expires_at" json:"expires_at"`
	Client    datatypes.JSONMap `gorm:"column:client" json:"client,omitempty"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}

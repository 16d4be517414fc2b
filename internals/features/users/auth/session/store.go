package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoSession = errors.New("session not found")

// Record is one server-side session.
type Record struct {
	ID        string                 `json:"id"`
	UserID    int64                  `json:"user_id"`
	ExpiresAt time.Time              `json:"expires_at"`
	Client    map[string]interface{} `json:"client,omitempty"`
}

// Store persists session records. Find must return ErrNoSession for ids
// that are unknown or expired at now. Delete of an unknown id is not an error.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Find(ctx context.Context, id string, now time.Time) (*Record, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

func NewID() string { return uuid.NewString() }

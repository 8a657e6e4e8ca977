package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice holds a push token for one of a user's devices. A user has
// at most one device row per platform; re-registering the same platform
// overwrites the token and reactivates the row.
type UserDevice struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Platform   string // ios, android, web.
	DeviceName string
	PushToken  string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

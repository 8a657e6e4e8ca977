package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an append-only feed entry (habit completed, challenge won,
// friend added). Visibility is gated by the owner's ShowActivity flag.
type Activity struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	Payload   map[string]string
	CreatedAt time.Time
}

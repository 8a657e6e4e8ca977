package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies an authentication method.
type ProviderType string

const (
	ProviderTypeEmail  ProviderType = "email"
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication links a user to one credential. For email providers
// ProviderUserID is the email address and PasswordHash is set; for OAuth
// providers ProviderUserID is the provider's subject identifier.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string
	PasswordHash   string
	MFASecret      string // TOTP secret, set after enrollment.
	MFAEnabled     bool   // True once the first code was verified.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshToken represents one active session. Only the SHA-256 hash of
// the token string is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrDuplicateAuth is returned when the (provider, provider_user_id)
	// unique index rejects an insert.
	ErrDuplicateAuth = errors.New("authentication method already exists")
)

// AuthRepository defines the standard operations for authentication-related persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method (e.g., email/password, social login).
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationByUser retrieves a user's authentication method for one provider.
	FindAuthenticationByUser(ctx context.Context, userID uuid.UUID, provider string) (*entity.Authentication, error)

	// UpdateAuthentication modifies an existing authentication method,
	// e.g. after a password reset or MFA enrollment.
	UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error
}

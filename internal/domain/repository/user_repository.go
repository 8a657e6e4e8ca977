// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound is returned when a user has no profile row yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrAvatarNotFound is returned when a user has no avatar row yet.
	ErrAvatarNotFound = errors.New("avatar not found")
	// ErrDuplicateEmail is returned when the email column's unique index rejects an insert.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateUsername is returned when the username column's unique index rejects a write.
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserRepository defines the standard operations for user, profile and
// avatar persistence. The application layer will depend on this interface,
// not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindProfileByUserID retrieves the profile owned by the given user.
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindProfileByUsername retrieves a profile by its unique username.
	FindProfileByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// UpsertProfile inserts or updates a user's profile in a single statement.
	// Username uniqueness is enforced by the database; a conflicting username
	// surfaces as ErrDuplicateUsername.
	UpsertProfile(ctx context.Context, profile *entity.Profile) error

	// UpdatePrivacy replaces the privacy settings embedded in a user's profile.
	UpdatePrivacy(ctx context.Context, userID uuid.UUID, privacy entity.PrivacySettings) error

	// SearchProfiles returns profiles whose username or display name matches
	// the query, excluding the viewer, private profiles, friends-only profiles
	// of non-friends, and anyone in a block relation with the viewer. The
	// filtering happens in SQL so invisible rows never leave the database.
	SearchProfiles(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]*entity.Profile, error)

	// FindAvatar retrieves the avatar owned by the given user.
	FindAvatar(ctx context.Context, userID uuid.UUID) (*entity.Avatar, error)

	// SaveAvatar inserts or updates a user's avatar in a single statement.
	SaveAvatar(ctx context.Context, avatar *entity.Avatar) error

	// GetUserStats aggregates habit, achievement and friend counts for a user.
	GetUserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error)

	// DeleteUser removes a user row. Profile, avatar, habits, progress,
	// friendships, challenge memberships, notifications, devices and tokens
	// are removed by the schema's cascading foreign keys.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

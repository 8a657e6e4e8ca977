// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries partial profile changes. Nil fields are left untouched.
type UpdateProfileInput struct {
	Username    *string
	DisplayName *string
	AvatarURL   *string
	Bio         *string
}

// UserUsecase defines the interface for profile, avatar and privacy operations.
type UserUsecase interface {
	// GetProfile retrieves a profile as seen by the viewer. Private profiles
	// and friends-only profiles of non-friends are not found from the
	// viewer's perspective.
	GetProfile(ctx context.Context, viewerID, userID uuid.UUID) (*entity.Profile, error)

	// UpdateProfile applies partial changes to the caller's own profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.Profile, error)

	// UpdatePrivacy replaces the caller's privacy settings.
	UpdatePrivacy(ctx context.Context, userID uuid.UUID, privacy entity.PrivacySettings) error

	// GetAvatar retrieves the caller's avatar, creating the default one on
	// first access. Concurrent first reads converge on a single row.
	GetAvatar(ctx context.Context, userID uuid.UUID) (*entity.Avatar, error)

	// UpdateAvatarTraits replaces the avatar's personality traits.
	UpdateAvatarTraits(ctx context.Context, userID uuid.UUID, traits entity.AvatarTraits) (*entity.Avatar, error)

	// UpdateAvatarAppearance replaces the avatar's appearance.
	UpdateAvatarAppearance(ctx context.Context, userID uuid.UUID, appearance entity.AvatarAppearance) (*entity.Avatar, error)

	// SearchUsers finds profiles matching the query, filtered by each
	// owner's visibility toward the viewer.
	SearchUsers(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]*entity.Profile, error)

	// GetUserStats aggregates public statistics for a user, honoring the
	// owner's ShowStats setting when the viewer is someone else.
	GetUserStats(ctx context.Context, viewerID, userID uuid.UUID) (*entity.UserStats, error)

	// ListActivities retrieves a user's own activity entries. Someone else's
	// entries are only visible when the owner's ShowActivity setting allows it.
	ListActivities(ctx context.Context, viewerID, userID uuid.UUID, limit, offset int) ([]*entity.Activity, error)

	// DeleteAccount removes the caller's account and everything attached to
	// it. Only the owner may delete an account.
	DeleteAccount(ctx context.Context, userID, targetID uuid.UUID) error
}

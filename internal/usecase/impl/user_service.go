// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "habitude/internal/delivery/context"
	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSearchLimit = 20

// userService implements the UserUsecase interface.
type userService struct {
	userRepo       repository.UserRepository
	friendshipRepo repository.FriendshipRepository
	activityRepo   repository.ActivityRepository
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	FriendshipRepo repository.FriendshipRepository
	ActivityRepo   repository.ActivityRepository
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:       params.UserRepo,
		friendshipRepo: params.FriendshipRepo,
		activityRepo:   params.ActivityRepo,
		logger:         params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a profile as seen by the viewer. A profile the
// viewer may not see is reported as not found rather than forbidden, so
// the response does not leak the profile's existence.
func (srv *userService) GetProfile(ctx context.Context, viewerID, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.userRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) || errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	if viewerID == userID {
		return profile, nil
	}

	visible, err := srv.profileVisibleTo(ctx, viewerID, profile)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("profile not visible to viewer")
	}

	return profile, nil
}

// UpdateProfile applies partial changes to the caller's own profile.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := srv.userRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile for update")
	}

	if input.Username != nil {
		if *input.Username == "" {
			return nil, domainerrors.ErrInvalidInput.WrapMessage("username cannot be empty")
		}
		profile.Username = *input.Username
	}
	if input.DisplayName != nil {
		profile.DisplayName = *input.DisplayName
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}

	if err := srv.userRepo.UpsertProfile(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrUsernameTaken.WrapMessage("profile update rejected")
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return profile, nil
}

// UpdatePrivacy replaces the caller's privacy settings.
func (srv *userService) UpdatePrivacy(ctx context.Context, userID uuid.UUID, privacy entity.PrivacySettings) error {
	switch privacy.ProfileVisibility {
	case entity.VisibilityPublic, entity.VisibilityFriends, entity.VisibilityPrivate:
	default:
		return domainerrors.ErrInvalidInput.WrapMessage("unknown profile visibility")
	}

	if err := srv.userRepo.UpdatePrivacy(ctx, userID, privacy); err != nil {
		return errors.Wrap(err, "failed to update privacy settings")
	}

	srv.log(ctx).Debug("Privacy settings updated", slog.Any("userID", userID))

	return nil
}

// GetAvatar retrieves the caller's avatar, creating the default one on
// first access. SaveAvatar is an upsert, so concurrent first reads
// converge on a single row instead of failing.
func (srv *userService) GetAvatar(ctx context.Context, userID uuid.UUID) (*entity.Avatar, error) {
	avatar, err := srv.userRepo.FindAvatar(ctx, userID)
	if err == nil {
		return avatar, nil
	}
	if !errors.Is(err, repository.ErrAvatarNotFound) {
		return nil, errors.Wrap(err, "failed to load avatar")
	}

	fresh := entity.DefaultAvatar(userID)
	if saveErr := srv.userRepo.SaveAvatar(ctx, fresh); saveErr != nil {
		return nil, errors.Wrap(saveErr, "failed to bootstrap avatar")
	}

	srv.log(ctx).Debug("Avatar bootstrapped", slog.Any("userID", userID))

	return fresh, nil
}

// UpdateAvatarTraits replaces the avatar's personality traits.
func (srv *userService) UpdateAvatarTraits(ctx context.Context, userID uuid.UUID, traits entity.AvatarTraits) (*entity.Avatar, error) {
	avatar, err := srv.GetAvatar(ctx, userID)
	if err != nil {
		return nil, err
	}

	avatar.Traits = traits
	if err := srv.userRepo.SaveAvatar(ctx, avatar); err != nil {
		return nil, errors.Wrap(err, "failed to update avatar traits")
	}

	return avatar, nil
}

// UpdateAvatarAppearance replaces the avatar's appearance.
func (srv *userService) UpdateAvatarAppearance(ctx context.Context, userID uuid.UUID, appearance entity.AvatarAppearance) (*entity.Avatar, error) {
	avatar, err := srv.GetAvatar(ctx, userID)
	if err != nil {
		return nil, err
	}

	avatar.Appearance = appearance
	if err := srv.userRepo.SaveAvatar(ctx, avatar); err != nil {
		return nil, errors.Wrap(err, "failed to update avatar appearance")
	}

	return avatar, nil
}

// SearchUsers finds profiles matching the query. Visibility filtering
// happens in the repository's SQL, so the result never contains rows the
// viewer may not see.
func (srv *userService) SearchUsers(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]*entity.Profile, error) {
	if query == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("search query is required")
	}
	if limit <= 0 || limit > 100 {
		limit = defaultSearchLimit
	}

	profiles, err := srv.userRepo.SearchProfiles(ctx, viewerID, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	return profiles, nil
}

// GetUserStats aggregates statistics for a user, honoring the owner's
// ShowStats setting when the viewer is someone else.
func (srv *userService) GetUserStats(ctx context.Context, viewerID, userID uuid.UUID) (*entity.UserStats, error) {
	if viewerID != userID {
		profile, err := srv.GetProfile(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
		if !profile.Privacy.ShowStats {
			return nil, domainerrors.ErrForbidden.WrapMessage("stats are hidden by owner")
		}
	}

	stats, err := srv.userRepo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate user stats")
	}

	return stats, nil
}

// ListActivities retrieves a user's own activity entries. For foreign
// accounts the owner's ShowActivity setting is the gate; a gated account is
// forbidden, not hidden, since the profile itself may still be visible.
func (srv *userService) ListActivities(ctx context.Context, viewerID, userID uuid.UUID, limit, offset int) ([]*entity.Activity, error) {
	if viewerID != userID {
		profile, err := srv.GetProfile(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
		if !profile.Privacy.ShowActivity {
			return nil, domainerrors.ErrForbidden.WrapMessage("activity is hidden by owner")
		}
	}

	if limit <= 0 || limit > 200 {
		limit = defaultFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	activities, err := srv.activityRepo.ListActivitiesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

// DeleteAccount removes the caller's account. The schema's cascading
// foreign keys take the profile, avatar, habits, progress, friendships,
// challenge memberships, notifications, devices and tokens with it.
func (srv *userService) DeleteAccount(ctx context.Context, userID, targetID uuid.UUID) error {
	if userID != targetID {
		return domainerrors.ErrForbidden.WrapMessage("accounts can only be deleted by their owner")
	}

	if err := srv.userRepo.DeleteUser(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("account lookup failed")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", targetID))

	return nil
}

func (srv *userService) profileVisibleTo(ctx context.Context, viewerID uuid.UUID, profile *entity.Profile) (bool, error) {
	blocked, err := srv.friendshipRepo.IsBlocked(ctx, viewerID, profile.UserID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check block relation")
	}
	if blocked {
		return false, nil
	}

	switch profile.Privacy.ProfileVisibility {
	case entity.VisibilityPublic:
		return true, nil
	case entity.VisibilityFriends:
		friendship, findErr := srv.friendshipRepo.FindFriendshipBetween(ctx, viewerID, profile.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrFriendshipNotFound) {
				return false, nil
			}

			return false, errors.Wrap(findErr, "failed to check friendship")
		}

		return friendship.Status == entity.FriendshipAccepted, nil
	default:
		return false, nil
	}
}

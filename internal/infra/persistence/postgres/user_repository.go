// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "habitude/internal/delivery/context"
	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrSignupFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Avatar").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Avatar").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindProfileByUserID retrieves the profile owned by the given user.
func (repo *userRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfileByUsername retrieves a profile by its unique username.
func (repo *userRepository) FindProfileByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return toProfileDomain(&profileM), nil
}

// UpsertProfile inserts or updates a user's profile in a single statement.
// The username unique index settles concurrent writes; a conflicting
// username surfaces as ErrDuplicateUsername.
func (repo *userRepository) UpsertProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username", "display_name", "avatar_url", "bio",
				"profile_visibility", "show_activity", "allow_friend_requests", "show_stats",
				"updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdatePrivacy replaces the privacy settings embedded in a user's profile.
func (repo *userRepository) UpdatePrivacy(ctx context.Context, userID uuid.UUID, privacy entity.PrivacySettings) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"profile_visibility":    string(privacy.ProfileVisibility),
			"show_activity":         privacy.ShowActivity,
			"allow_friend_requests": privacy.AllowFriendRequests,
			"show_stats":            privacy.ShowStats,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update privacy settings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// SearchProfiles matches profiles against the query with privacy applied in
// SQL: private profiles, friends-only profiles of non-friends, the viewer
// themselves, and anyone in a block relation never leave the database.
func (repo *userRepository) SearchProfiles(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]*entity.Profile, error) {
	pattern := "%" + query + "%"

	var profileModels []model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("user_id <> ?", viewerID).
		Where("(username ILIKE ? OR display_name ILIKE ?)", pattern, pattern).
		Where("profile_visibility <> ?", string(entity.VisibilityPrivate)).
		Where(`(profile_visibility = ? OR EXISTS (
			SELECT 1 FROM friendships f
			WHERE f.status = ?
			  AND ((f.user_id = ? AND f.friend_id = profiles.user_id)
			    OR (f.user_id = profiles.user_id AND f.friend_id = ?))
		))`, string(entity.VisibilityPublic), string(entity.FriendshipAccepted), viewerID, viewerID).
		Where(`NOT EXISTS (
			SELECT 1 FROM blocks b
			WHERE (b.blocker_id = ? AND b.blocked_id = profiles.user_id)
			   OR (b.blocker_id = profiles.user_id AND b.blocked_id = ?)
		)`, viewerID, viewerID).
		Order("username").
		Limit(limit).
		Find(&profileModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, toProfileDomain(&profileModels[i]))
	}

	return profiles, nil
}

// FindAvatar retrieves the avatar owned by the given user.
func (repo *userRepository) FindAvatar(ctx context.Context, userID uuid.UUID) (*entity.Avatar, error) {
	var avatarM model.AvatarModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&avatarM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAvatarNotFound
		}

		return nil, errors.Wrap(err, "failed to find avatar")
	}

	return toAvatarDomain(&avatarM), nil
}

// SaveAvatar inserts or updates a user's avatar in a single statement, so
// concurrent bootstraps converge on one row.
func (repo *userRepository) SaveAvatar(ctx context.Context, avatar *entity.Avatar) error {
	avatarM := fromAvatarDomain(avatar)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(avatarM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save avatar")
	}

	avatar.UpdatedAt = avatarM.UpdatedAt

	return nil
}

// GetUserStats aggregates habit, achievement and friend counts for a user.
// Counts come from SQL; the cross-habit streak is walked over the distinct
// completion dates. A failing streak query degrades the streak to 0
// instead of failing the whole aggregate.
func (repo *userRepository) GetUserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	var totalHabits int64
	if err := repo.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("user_id = ? AND is_active = true", userID).
		Count(&totalHabits).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count habits")
	}

	var totalAchievements int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("user_id = ? AND type = ?", userID, "achievement").
		Count(&totalAchievements).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count achievements")
	}

	var totalFriends int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("status = ? AND (user_id = ? OR friend_id = ?)", string(entity.FriendshipAccepted), userID, userID).
		Count(&totalFriends).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count friends")
	}

	var dates []time.Time
	if err := repo.db.WithContext(ctx).
		Model(&model.HabitProgressModel{}).
		Where("user_id = ? AND completed_count >= 1", userID).
		Distinct("date").
		Order("date DESC").
		Pluck("date", &dates).Error; err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).
			Warn("Failed to list completion dates for streak, defaulting to 0",
				slog.Any("userID", userID), slog.Any("error", err))
		dates = nil
	}

	return &entity.UserStats{
		TotalHabits:       int(totalHabits),
		TotalAchievements: int(totalAchievements),
		TotalFriends:      int(totalFriends),
		CurrentStreak:     currentStreak(dates, time.Now().UTC().Truncate(24*time.Hour)),
	}, nil
}

// DeleteUser removes a user row. Dependent rows go with it through the
// schema's ON DELETE CASCADE foreign keys.
func (repo *userRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// currentStreak counts consecutive days with at least one completion,
// ending today or yesterday. Dates must be sorted newest first.
func currentStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	cursor := today
	if !dates[0].Equal(cursor) {
		cursor = cursor.AddDate(0, 0, -1)
		if !dates[0].Equal(cursor) {
			return 0
		}
	}

	streak := 0
	for _, date := range dates {
		if !date.Equal(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Profile:   toProfileDomain(data.Profile),
		Avatar:    toAvatarDomain(data.Avatar),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:    data.ID,
		Email: data.Email,
	}
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:      data.UserID,
		Username:    data.Username,
		DisplayName: data.DisplayName,
		AvatarURL:   data.AvatarURL,
		Bio:         data.Bio,
		Privacy: entity.PrivacySettings{
			ProfileVisibility:   entity.ProfileVisibility(data.ProfileVisibility),
			ShowActivity:        data.ShowActivity,
			AllowFriendRequests: data.AllowFriendRequests,
			ShowStats:           data.ShowStats,
		},
		UpdatedAt: data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:              data.UserID,
		Username:            data.Username,
		DisplayName:         data.DisplayName,
		AvatarURL:           data.AvatarURL,
		Bio:                 data.Bio,
		ProfileVisibility:   string(data.Privacy.ProfileVisibility),
		ShowActivity:        data.Privacy.ShowActivity,
		AllowFriendRequests: data.Privacy.AllowFriendRequests,
		ShowStats:           data.Privacy.ShowStats,
	}
}

// toAvatarDomain converts a GORM AvatarModel to a domain Avatar entity.
func toAvatarDomain(data *model.AvatarModel) *entity.Avatar {
	if data == nil {
		return nil
	}

	return &entity.Avatar{
		UserID: data.UserID,
		Traits: entity.AvatarTraits{
			EncouragementStyle:     data.EncouragementStyle,
			CommunicationFrequency: data.CommunicationFrequency,
			HumorLevel:             data.HumorLevel,
			Formality:              data.Formality,
		},
		Appearance: entity.AvatarAppearance{
			Body:        data.Body,
			Skin:        data.Skin,
			Hair:        data.Hair,
			Outfit:      data.Outfit,
			Accessories: data.Accessories,
		},
		Level:      data.Level,
		Experience: data.Experience,
		Mood:       data.Mood,
		Energy:     data.Energy,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAvatarDomain converts a domain Avatar entity to a GORM AvatarModel.
func fromAvatarDomain(data *entity.Avatar) *model.AvatarModel {
	if data == nil {
		return nil
	}

	return &model.AvatarModel{
		UserID:                 data.UserID,
		EncouragementStyle:     data.Traits.EncouragementStyle,
		CommunicationFrequency: data.Traits.CommunicationFrequency,
		HumorLevel:             data.Traits.HumorLevel,
		Formality:              data.Traits.Formality,
		Body:                   data.Appearance.Body,
		Skin:                   data.Appearance.Skin,
		Hair:                   data.Appearance.Hair,
		Outfit:                 data.Appearance.Outfit,
		Accessories:            data.Appearance.Accessories,
		Level:                  data.Level,
		Experience:             data.Experience,
		Mood:                   data.Mood,
		Energy:                 data.Energy,
	}
}

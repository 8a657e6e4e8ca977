// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the domain.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// CreateActivity appends a feed entry.
func (repo *activityRepository) CreateActivity(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid activity owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

// ListFeedForUser retrieves the viewer's own entries plus those of accepted
// friends who expose their activity. The visibility join happens in SQL so
// hidden rows never leave the database.
func (repo *activityRepository) ListFeedForUser(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]*entity.Activity, error) {
	var activityModels []model.ActivityModel
	err := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where(`activities.user_id = ? OR (
			EXISTS (
				SELECT 1 FROM friendships f
				WHERE f.status = ?
				  AND ((f.user_id = ? AND f.friend_id = activities.user_id)
				    OR (f.user_id = activities.user_id AND f.friend_id = ?))
			)
			AND EXISTS (
				SELECT 1 FROM profiles p
				WHERE p.user_id = activities.user_id AND p.show_activity = true
			)
		)`, viewerID, string(entity.FriendshipAccepted), viewerID, viewerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&activityModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity feed")
	}

	activities := make([]*entity.Activity, 0, len(activityModels))
	for i := range activityModels {
		activities = append(activities, toActivityDomain(&activityModels[i]))
	}

	return activities, nil
}

// ListActivitiesByUser retrieves one user's own entries, newest first.
func (repo *activityRepository) ListActivitiesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Activity, error) {
	var activityModels []model.ActivityModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&activityModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user activities")
	}

	activities := make([]*entity.Activity, 0, len(activityModels))
	for i := range activityModels {
		activities = append(activities, toActivityDomain(&activityModels[i]))
	}

	return activities, nil
}

// --- Mapper Functions ---

// toActivityDomain converts a GORM ActivityModel to a domain Activity entity.
func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	return &entity.Activity{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Payload:   data.Payload,
		CreatedAt: data.CreatedAt,
	}
}

// fromActivityDomain converts a domain Activity entity to a GORM ActivityModel.
func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:      data.ID,
		UserID:  data.UserID,
		Type:    data.Type,
		Payload: data.Payload,
	}
}

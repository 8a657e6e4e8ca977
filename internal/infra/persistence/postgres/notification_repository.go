// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationRepository implements the domain.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification persists a new inbox entry.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid notification recipient")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by id")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListNotificationsByUser retrieves a user's notifications, newest first.
func (repo *notificationRepository) ListNotificationsByUser(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID)
	if onlyUnread {
		query = query.Where("read = false")
	}

	var notificationModels []model.NotificationModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		notifications = append(notifications, toNotificationDomain(&notificationModels[i]))
	}

	return notifications, nil
}

// MarkRead flips a notification's read flag and stamps the read time.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"read":    true,
			"read_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead marks every unread notification of a user as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = false", userID).
		Updates(map[string]any{
			"read":    true,
			"read_at": time.Now(),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark all notifications read")
	}

	return nil
}

// DeleteNotification removes a notification.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// CountUnread returns the number of unread notifications for a user.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = false", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

// FindPreferences retrieves a user's notification preferences.
func (repo *notificationRepository) FindPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	var prefsM model.NotificationPreferencesModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefsM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification preferences")
	}

	return toPreferencesDomain(&prefsM), nil
}

// SavePreferences inserts or updates a user's preferences in a single
// statement, so concurrent bootstraps converge on one row.
func (repo *notificationRepository) SavePreferences(ctx context.Context, prefs *entity.NotificationPreferences) error {
	prefsM := fromPreferencesDomain(prefs)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(prefsM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save notification preferences")
	}

	prefs.UpdatedAt = prefsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      entity.NotificationType(data.Type),
		Title:     data.Title,
		Message:   data.Message,
		Data:      data.Data,
		Read:      data.Read,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:      data.ID,
		UserID:  data.UserID,
		Type:    string(data.Type),
		Title:   data.Title,
		Message: data.Message,
		Data:    data.Data,
		Read:    data.Read,
		ReadAt:  data.ReadAt,
	}
}

// toPreferencesDomain converts a GORM NotificationPreferencesModel to a domain entity.
func toPreferencesDomain(data *model.NotificationPreferencesModel) *entity.NotificationPreferences {
	if data == nil {
		return nil
	}

	return &entity.NotificationPreferences{
		UserID:          data.UserID,
		PushEnabled:     data.PushEnabled,
		FriendRequests:  data.FriendRequests,
		HabitReminders:  data.HabitReminders,
		Achievements:    data.Achievements,
		SocialActivity:  data.SocialActivity,
		Challenges:      data.Challenges,
		QuietHoursStart: data.QuietHoursStart,
		QuietHoursEnd:   data.QuietHoursEnd,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromPreferencesDomain converts a domain entity to a GORM NotificationPreferencesModel.
func fromPreferencesDomain(data *entity.NotificationPreferences) *model.NotificationPreferencesModel {
	if data == nil {
		return nil
	}

	return &model.NotificationPreferencesModel{
		UserID:          data.UserID,
		PushEnabled:     data.PushEnabled,
		FriendRequests:  data.FriendRequests,
		HabitReminders:  data.HabitReminders,
		Achievements:    data.Achievements,
		SocialActivity:  data.SocialActivity,
		Challenges:      data.Challenges,
		QuietHoursStart: data.QuietHoursStart,
		QuietHoursEnd:   data.QuietHoursEnd,
	}
}

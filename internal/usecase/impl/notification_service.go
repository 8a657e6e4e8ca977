// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "habitude/internal/delivery/context"
	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/domain/service"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var validPlatforms = map[string]struct{}{
	"ios":     {},
	"android": {},
	"web":     {},
}

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushService      service.PushService
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	PushService      service.PushService
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		pushService:      params.PushService,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotifications retrieves the caller's notifications, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := srv.notificationRepo.ListNotificationsByUser(ctx, userID, onlyUnread, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// GetUnreadCount returns the caller's unread notification count.
func (srv *notificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks one of the caller's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if _, err := srv.loadOwnedNotification(ctx, userID, notificationID); err != nil {
		return err
	}

	return errors.Wrap(srv.notificationRepo.MarkRead(ctx, notificationID), "failed to mark notification read")
}

// MarkAllRead marks all of the caller's notifications as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return errors.Wrap(srv.notificationRepo.MarkAllRead(ctx, userID), "failed to mark notifications read")
}

// DeleteNotification removes one of the caller's notifications.
func (srv *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if _, err := srv.loadOwnedNotification(ctx, userID, notificationID); err != nil {
		return err
	}

	return errors.Wrap(srv.notificationRepo.DeleteNotification(ctx, notificationID), "failed to delete notification")
}

// GetPreferences retrieves the caller's preferences, creating the default
// bundle on first access. SavePreferences is an upsert keyed on user_id, so
// concurrent first reads converge on a single row.
func (srv *notificationService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	prefs, err := srv.notificationRepo.FindPreferences(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, repository.ErrPreferencesNotFound) {
		return nil, errors.Wrap(err, "failed to load notification preferences")
	}

	fresh := entity.DefaultNotificationPreferences(userID)
	if saveErr := srv.notificationRepo.SavePreferences(ctx, fresh); saveErr != nil {
		return nil, errors.Wrap(saveErr, "failed to bootstrap notification preferences")
	}

	srv.log(ctx).Debug("Notification preferences bootstrapped", slog.Any("userID", userID))

	return fresh, nil
}

// UpdatePreferences applies partial preference changes.
func (srv *notificationService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input usecase.UpdatePreferencesInput) (*entity.NotificationPreferences, error) {
	prefs, err := srv.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.PushEnabled != nil {
		prefs.PushEnabled = *input.PushEnabled
	}
	if input.FriendRequests != nil {
		prefs.FriendRequests = *input.FriendRequests
	}
	if input.HabitReminders != nil {
		prefs.HabitReminders = *input.HabitReminders
	}
	if input.Achievements != nil {
		prefs.Achievements = *input.Achievements
	}
	if input.SocialActivity != nil {
		prefs.SocialActivity = *input.SocialActivity
	}
	if input.Challenges != nil {
		prefs.Challenges = *input.Challenges
	}
	if input.QuietHoursStart != nil {
		if err := validateClockString(*input.QuietHoursStart); err != nil {
			return nil, err
		}
		prefs.QuietHoursStart = *input.QuietHoursStart
	}
	if input.QuietHoursEnd != nil {
		if err := validateClockString(*input.QuietHoursEnd); err != nil {
			return nil, err
		}
		prefs.QuietHoursEnd = *input.QuietHoursEnd
	}

	if err := srv.notificationRepo.SavePreferences(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to save notification preferences")
	}

	return prefs, nil
}

// Notify writes an inbox entry and pushes it to the recipient's active
// devices. A disabled type toggle suppresses the notification entirely;
// quiet hours suppress only the push, the inbox entry is still written.
func (srv *notificationService) Notify(ctx context.Context, input usecase.NotifyInput) (*entity.Notification, error) {
	prefs, err := srv.GetPreferences(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !prefs.PreferenceFor(input.Type) {
		return nil, domainerrors.ErrNotificationsDisabled.WrapMessage("notification suppressed by preferences")
	}

	notification := &entity.Notification{
		UserID:  input.UserID,
		Type:    input.Type,
		Title:   input.Title,
		Message: input.Message,
		Data:    input.Data,
	}

	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	if prefs.PushEnabled && !inQuietHours(srv.now(), prefs.QuietHoursStart, prefs.QuietHoursEnd) {
		srv.pushToDevices(ctx, notification)
	} else {
		srv.log(ctx).Debug("Push suppressed", slog.Any("userID", input.UserID), slog.String("type", string(input.Type)))
	}

	return notification, nil
}

// RegisterDevice registers or refreshes a push device for the caller. The
// write is an upsert on (user_id, platform), so re-registering the same
// platform replaces the token instead of stacking rows.
func (srv *notificationService) RegisterDevice(ctx context.Context, userID uuid.UUID, input usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	if _, ok := validPlatforms[input.Platform]; !ok {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("unknown device platform")
	}
	if input.PushToken == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("push token is required")
	}

	device := &entity.UserDevice{
		UserID:     userID,
		Platform:   input.Platform,
		DeviceName: input.DeviceName,
		PushToken:  input.PushToken,
		IsActive:   true,
	}

	if err := srv.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Debug("Device registered", slog.Any("userID", userID), slog.String("platform", input.Platform))

	return device, nil
}

// ListDevices retrieves the caller's active devices.
func (srv *notificationService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// DeactivateDevice deactivates one of the caller's devices.
func (srv *notificationService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound.WrapMessage("device lookup failed")
		}

		return errors.Wrap(err, "failed to load device")
	}

	if device.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("device belongs to another user")
	}

	return errors.Wrap(srv.deviceRepo.DeactivateDevice(ctx, deviceID), "failed to deactivate device")
}

func (srv *notificationService) loadOwnedNotification(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound.WrapMessage("notification lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load notification")
	}

	if notification.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("notification belongs to another user")
	}

	return notification, nil
}

// pushToDevices fans the notification out to the user's active devices and
// deactivates any tokens the provider reports as invalid.
func (srv *notificationService) pushToDevices(ctx context.Context, notification *entity.Notification) {
	if srv.pushService == nil {
		return
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, notification.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to load devices for push", slog.Any("userID", notification.UserID), slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.PushToken)
	}

	successCount, failureCount, invalidTokens, err := srv.pushService.SendBatchNotification(
		ctx, tokens, notification.Title, notification.Message, notification.Data)
	if err != nil {
		srv.log(ctx).Error("Push delivery failed", slog.Any("userID", notification.UserID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Debug("Push delivered",
		slog.Any("userID", notification.UserID),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount))

	if len(invalidTokens) > 0 {
		if err := srv.deviceRepo.DeactivateDevicesByTokens(ctx, invalidTokens); err != nil {
			srv.log(ctx).Warn("Failed to deactivate invalid device tokens", slog.Any("error", err))
		}
	}
}

func validateClockString(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return domainerrors.ErrInvalidTimeFormat.WrapMessage("quiet hours must be HH:MM")
	}

	return nil
}

// inQuietHours reports whether t falls inside the [start, end) quiet
// window. A window that crosses midnight (e.g. 22:00-07:00) wraps; an
// empty or degenerate window disables suppression.
func inQuietHours(t time.Time, start, end string) bool {
	if start == "" || end == "" || start == end {
		return false
	}

	startClock, err := time.Parse("15:04", start)
	if err != nil {
		return false
	}
	endClock, err := time.Parse("15:04", end)
	if err != nil {
		return false
	}

	minutes := t.Hour()*60 + t.Minute()
	startMinutes := startClock.Hour()*60 + startClock.Minute()
	endMinutes := endClock.Hour()*60 + endClock.Minute()

	if startMinutes < endMinutes {
		return minutes >= startMinutes && minutes < endMinutes
	}

	return minutes >= startMinutes || minutes < endMinutes
}

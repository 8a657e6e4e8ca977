// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePreferencesInput carries partial preference changes. Nil fields are
// left untouched. Quiet hours are validated as "HH:MM".
type UpdatePreferencesInput struct {
	PushEnabled     *bool
	FriendRequests  *bool
	HabitReminders  *bool
	Achievements    *bool
	SocialActivity  *bool
	Challenges      *bool
	QuietHoursStart *string
	QuietHoursEnd   *string
}

// NotifyInput defines an internal notification dispatch request. Services
// use it to fan a domain event into the recipient's inbox and devices.
type NotifyInput struct {
	UserID  uuid.UUID
	Type    entity.NotificationType
	Title   string
	Message string
	Data    map[string]string
}

// RegisterDeviceInput defines the data required to register a push device.
type RegisterDeviceInput struct {
	Platform   string
	DeviceName string
	PushToken  string
}

// NotificationUsecase defines the interface for the notification inbox,
// preferences, device registry and dispatch.
type NotificationUsecase interface {
	// ListNotifications retrieves the caller's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)

	// GetUnreadCount returns the caller's unread notification count.
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int, error)

	// MarkRead marks one of the caller's notifications as read.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks all of the caller's notifications as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// DeleteNotification removes one of the caller's notifications.
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error

	// GetPreferences retrieves the caller's preferences, creating the default
	// bundle on first access. Concurrent first reads converge on one row.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error)

	// UpdatePreferences applies partial preference changes.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input UpdatePreferencesInput) (*entity.NotificationPreferences, error)

	// Notify writes an inbox entry and pushes to the recipient's active
	// devices, honoring the recipient's type toggles and quiet hours. During
	// quiet hours the inbox entry is still written; only push is suppressed.
	Notify(ctx context.Context, input NotifyInput) (*entity.Notification, error)

	// RegisterDevice registers or refreshes a push device for the caller.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input RegisterDeviceInput) (*entity.UserDevice, error)

	// ListDevices retrieves the caller's active devices.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice deactivates one of the caller's devices.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}

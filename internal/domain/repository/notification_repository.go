// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrPreferencesNotFound is returned when a user has no preferences row yet.
	ErrPreferencesNotFound = errors.New("notification preferences not found")
)

// NotificationRepository defines the interface for notification inbox and
// preference persistence.
type NotificationRepository interface {
	// CreateNotification persists a new inbox entry.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotificationsByUser retrieves a user's notifications, newest first.
	// With onlyUnread set, read entries are filtered out in SQL.
	ListNotificationsByUser(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flips a notification's read flag and stamps the read time.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead marks every unread notification of a user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, id uuid.UUID) error

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)

	// FindPreferences retrieves a user's notification preferences.
	FindPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error)

	// SavePreferences inserts or updates a user's preferences in a single
	// statement, keyed by the user_id unique index.
	SavePreferences(ctx context.Context, prefs *entity.NotificationPreferences) error
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice inserts or replaces a user's device row for one platform
	// in a single statement, keyed by the (user_id, platform) unique index.
	// Re-registering overwrites the push token and reactivates the row.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice marks a device inactive without deleting it.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// DeactivateDevicesByTokens marks every device holding one of the given
	// push tokens inactive. Used when the push provider reports tokens as
	// invalid or unregistered.
	DeactivateDevicesByTokens(ctx context.Context, tokens []string) error
}

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
	"gorm.io/gorm/clause"
)

// deviceRepository implements the domain.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// UpsertDevice inserts or replaces a user's device row for one platform,
// keyed by the (user_id, platform) unique index. Re-registering overwrites
// the push token and reactivates the row in the same statement.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "platform"}},
			DoUpdates: clause.AssignmentColumns([]string{"device_name", "push_token", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid device owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by id")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindActiveDevicesByUser retrieves all active devices for a specific user.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []model.UserDeviceModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = true", userID).
		Order("created_at").
		Find(&deviceModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active devices")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for i := range deviceModels {
		devices = append(devices, toDeviceDomain(&deviceModels[i]))
	}

	return devices, nil
}

// DeactivateDevice marks a device inactive without deleting it.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevicesByTokens marks every device holding one of the given
// push tokens inactive. Used after the push provider reports them invalid.
func (repo *deviceRepository) DeactivateDevicesByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("push_token IN ?", tokens).
		Update("is_active", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate devices by tokens")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM UserDeviceModel to a domain UserDevice entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:         data.ID,
		UserID:     data.UserID,
		Platform:   data.Platform,
		DeviceName: data.DeviceName,
		PushToken:  data.PushToken,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Platform:   data.Platform,
		DeviceName: data.DeviceName,
		PushToken:  data.PushToken,
		IsActive:   data.IsActive,
	}
}

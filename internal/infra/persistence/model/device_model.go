package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel mirrors the 'user_devices' table. The
// (user_id, platform) unique index backs the register-again upsert.
type UserDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_user_platform"`
	Platform   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_devices_user_platform"`
	DeviceName string    `gorm:"type:varchar(100)"`
	PushToken  string    `gorm:"type:varchar(512);not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the append-only 'activities' table.
type ActivityModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_activities_user_created"`
	Type      string            `gorm:"type:varchar(30);not null"`
	Payload   map[string]string `gorm:"serializer:json;type:jsonb"`
	CreatedAt time.Time         `gorm:"index:idx_activities_user_created"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

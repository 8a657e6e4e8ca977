package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_notifications_user_created"`
	Type      string            `gorm:"type:varchar(30);not null"`
	Title     string            `gorm:"type:varchar(200);not null"`
	Message   string            `gorm:"type:text"`
	Data      map[string]string `gorm:"serializer:json;type:jsonb"`
	Read      bool              `gorm:"not null;default:false"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"index:idx_notifications_user_created"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationPreferencesModel mirrors the 'notification_preferences'
// table, 1:1 with users.
type NotificationPreferencesModel struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PushEnabled     bool      `gorm:"not null;default:true"`
	FriendRequests  bool      `gorm:"not null;default:true"`
	HabitReminders  bool      `gorm:"not null;default:true"`
	Achievements    bool      `gorm:"not null;default:true"`
	SocialActivity  bool      `gorm:"not null;default:true"`
	Challenges      bool      `gorm:"not null;default:true"`
	QuietHoursStart string    `gorm:"type:varchar(5)"`
	QuietHoursEnd   string    `gorm:"type:varchar(5)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferencesModel) TableName() string {
	return "notification_preferences"
}

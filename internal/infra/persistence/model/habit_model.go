package model

import (
	"time"

	"github.com/google/uuid"
)

// HabitModel mirrors the 'habits' table.
type HabitModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                string    `gorm:"type:varchar(100);not null"`
	Description         string    `gorm:"type:text"`
	Frequency           string    `gorm:"type:varchar(20);not null"`
	CustomFrequencyDays []int     `gorm:"serializer:json;type:jsonb"`
	TargetCount         int       `gorm:"not null;default:1"`
	Category            string    `gorm:"type:varchar(50)"`
	Difficulty          string    `gorm:"type:varchar(20)"`
	ReminderTime        string    `gorm:"type:varchar(5)"`
	IsActive            bool      `gorm:"not null;default:true"`
	IsPublic            bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (HabitModel) TableName() string {
	return "habits"
}

// HabitProgressModel mirrors the 'habit_progress' table. The
// (habit_id, date) unique index backs the overwrite-on-conflict upsert.
type HabitProgressModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	HabitID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_progress_habit_date"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_progress_habit_date"`
	CompletedCount int       `gorm:"not null"`
	Notes          string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (HabitProgressModel) TableName() string {
	return "habit_progress"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// FrequencyType describes how often a habit is expected to be performed.
type FrequencyType string

const (
	FrequencyDaily  FrequencyType = "daily"
	FrequencyWeekly FrequencyType = "weekly"
	FrequencyCustom FrequencyType = "custom"
)

// Habit belongs to exactly one user. A user may own at most
// MaxHabitsPerUser habits; the quota is enforced inside the creation
// transaction, not by callers.
type Habit struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	Description         string
	Frequency           FrequencyType
	CustomFrequencyDays []int // Weekday numbers (0=Sunday) when Frequency is custom.
	TargetCount         int   // Completions per period, >= 1.
	Category            string
	Difficulty          string
	ReminderTime        string // "HH:MM", optional.
	IsActive            bool
	IsPublic            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HabitProgress records completions of one habit on one calendar day.
// The (HabitID, Date) pair is unique; repeated recordings for the same
// day overwrite the earlier row.
type HabitProgress struct {
	ID             uuid.UUID
	HabitID        uuid.UUID
	UserID         uuid.UUID
	Date           time.Time // Normalized to midnight UTC.
	CompletedCount int
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HabitStats summarizes progress history for one habit.
//
// CompletedDays counts days with completed_count >= 1, regardless of the
// habit's target_count.
type HabitStats struct {
	TotalDays      int
	CompletedDays  int
	CompletionRate float64
	CurrentStreak  int
	LongestStreak  int
}

// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateHabitInput defines the data required to create a habit.
type CreateHabitInput struct {
	Name                string
	Description         string
	Frequency           entity.FrequencyType
	CustomFrequencyDays []int
	TargetCount         int
	Category            string
	Difficulty          string
	ReminderTime        string // "HH:MM", empty disables reminders.
	IsPublic            bool
}

// UpdateHabitInput carries partial habit changes. Nil fields are left
// untouched. IsActive toggles pause and resume: false archives the habit,
// true reactivates an archived one.
type UpdateHabitInput struct {
	Name                *string
	Description         *string
	Frequency           *entity.FrequencyType
	CustomFrequencyDays *[]int
	TargetCount         *int
	Category            *string
	Difficulty          *string
	ReminderTime        *string
	IsActive            *bool
	IsPublic            *bool
}

// LogProgressInput defines the data required to record a day's progress.
type LogProgressInput struct {
	HabitID        uuid.UUID
	Date           time.Time
	CompletedCount int
	Notes          string
}

// HabitUsecase defines the interface for habit lifecycle and progress operations.
type HabitUsecase interface {
	// CreateHabit creates a habit for the caller, enforcing the per-user
	// active habit cap under a row lock so racing requests cannot exceed it.
	CreateHabit(ctx context.Context, userID uuid.UUID, input CreateHabitInput) (*entity.Habit, error)

	// GetHabit retrieves a habit. Non-owners see it only when it is public.
	GetHabit(ctx context.Context, userID, habitID uuid.UUID) (*entity.Habit, error)

	// ListHabits retrieves the caller's active habits.
	ListHabits(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// UpdateHabit applies partial changes to a habit the caller owns.
	UpdateHabit(ctx context.Context, userID, habitID uuid.UUID, input UpdateHabitInput) (*entity.Habit, error)

	// ArchiveHabit deactivates a habit the caller owns, keeping its history.
	ArchiveHabit(ctx context.Context, userID, habitID uuid.UUID) error

	// DeleteHabit removes a habit the caller owns. The habit and its
	// progress rows go in one transaction.
	DeleteHabit(ctx context.Context, userID, habitID uuid.UUID) error

	// LogProgress records progress for one habit and date. Logging the same
	// date twice overwrites the earlier entry. Reaching the habit's target
	// publishes a progress event for the achievement worker and advances any
	// active challenges bound to the habit.
	LogProgress(ctx context.Context, userID uuid.UUID, input LogProgressInput) (*entity.HabitProgress, error)

	// GetProgress retrieves progress rows for a habit within [from, to].
	GetProgress(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitProgress, error)
}

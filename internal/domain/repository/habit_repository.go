// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for habit persistence.
var (
	// ErrHabitNotFound is returned when a habit is not found.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrProgressNotFound is returned when no progress row exists for a habit and date.
	ErrProgressNotFound = errors.New("habit progress not found")
)

// HabitRepository defines the interface for habit and progress persistence.
type HabitRepository interface {
	// CreateHabit persists a new habit.
	CreateHabit(ctx context.Context, habit *entity.Habit) error

	// FindHabitByID retrieves a habit by its unique ID, active or not.
	FindHabitByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindHabitsByUser retrieves all active habits owned by a user.
	FindHabitsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// UpdateHabit modifies an existing habit.
	UpdateHabit(ctx context.Context, habit *entity.Habit) error

	// ArchiveHabit deactivates a habit, keeping its progress history.
	ArchiveHabit(ctx context.Context, id uuid.UUID) error

	// DeleteHabit removes a habit and its progress rows. Only meaningful
	// inside a transaction so both deletes commit together.
	DeleteHabit(ctx context.Context, id uuid.UUID) error

	// CountHabitsByUser returns the number of habits a user owns, archived
	// ones included. Backs the per-user habit cap.
	CountHabitsByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// CountActiveHabitsByUser returns the number of active habits a user owns.
	CountActiveHabitsByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// AcquireHabitMutex takes a row-level lock on the user, serializing
	// concurrent habit creation so the per-user habit cap cannot be
	// exceeded by racing requests. Only meaningful inside a transaction.
	AcquireHabitMutex(ctx context.Context, userID uuid.UUID) error

	// UpsertProgress inserts or replaces the progress row for a habit and
	// date in a single statement. A second log for the same day overwrites
	// the first; the (habit_id, date) unique index makes the race harmless.
	UpsertProgress(ctx context.Context, progress *entity.HabitProgress) error

	// FindProgress retrieves the progress row for a habit on one date.
	FindProgress(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitProgress, error)

	// ListProgressByHabit retrieves progress rows for a habit within [from, to], newest first.
	ListProgressByHabit(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitProgress, error)
}

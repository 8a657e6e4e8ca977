// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// WeeklySummary aggregates one week of a user's habit activity.
type WeeklySummary struct {
	WeekStart      time.Time
	TotalCompleted int
	DailyCounts    [7]int // Indexed from WeekStart.
	BestDay        time.Time
	ActiveHabits   int
}

// Insight is a generated observation about the user's recent behavior.
type Insight struct {
	Type    string // e.g. "streak", "slump", "consistency"
	Message string
}

// AnalyticsUsecase defines the interface for statistics and insight operations.
type AnalyticsUsecase interface {
	// GetHabitStats computes completion rate and streaks for a habit the
	// caller owns. A day counts as completed when at least one completion
	// was logged.
	GetHabitStats(ctx context.Context, userID, habitID uuid.UUID) (*entity.HabitStats, error)

	// GetWeeklySummary aggregates the caller's completions for the week
	// starting at weekStart (normalized to Monday).
	GetWeeklySummary(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*WeeklySummary, error)

	// GetInsights generates behavioral observations from recent activity.
	GetInsights(ctx context.Context, userID uuid.UUID) ([]Insight, error)

	// ExportProgressCSV renders a habit's progress history as CSV.
	ExportProgressCSV(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]byte, error)

	// ExportProgressJSON renders a habit's progress history as JSON.
	ExportProgressJSON(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]byte, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailyCount is one day of a user's aggregated habit completions.
type DailyCount struct {
	Date      time.Time
	Completed int
}

// AnalyticsRepository defines read-only aggregate queries used by the
// analytics use cases. Aggregation happens in SQL; streak arithmetic over
// the returned dates happens in the use case.
type AnalyticsRepository interface {
	// ListCompletionDates retrieves the distinct dates on which a habit had
	// at least one completion, newest first.
	ListCompletionDates(ctx context.Context, habitID uuid.UUID) ([]time.Time, error)

	// CountCompletedInRange returns how many habit completions a user logged
	// within [from, to], across all habits.
	CountCompletedInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)

	// ListDailyCounts returns per-day completion totals for a user within
	// [from, to]. Days without completions are absent.
	ListDailyCounts(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]DailyCount, error)
}

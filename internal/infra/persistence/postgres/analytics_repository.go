// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"habitude/internal/domain/repository"
	"habitude/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// analyticsRepository implements the domain.AnalyticsRepository interface
// with read-only aggregate queries.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// ListCompletionDates retrieves the distinct dates on which a habit had at
// least one completion, newest first.
func (repo *analyticsRepository) ListCompletionDates(ctx context.Context, habitID uuid.UUID) ([]time.Time, error) {
	var dates []time.Time
	err := repo.db.WithContext(ctx).
		Model(&model.HabitProgressModel{}).
		Where("habit_id = ? AND completed_count >= 1", habitID).
		Order("date DESC").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completion dates")
	}

	return dates, nil
}

// CountCompletedInRange returns how many habit completions a user logged
// within [from, to], across all habits.
func (repo *analyticsRepository) CountCompletedInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	var total *int
	err := repo.db.WithContext(ctx).
		Model(&model.HabitProgressModel{}).
		Select("SUM(completed_count)").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count completions in range")
	}
	if total == nil {
		return 0, nil
	}

	return *total, nil
}

// ListDailyCounts returns per-day completion totals for a user within
// [from, to]. Days without completions are absent.
func (repo *analyticsRepository) ListDailyCounts(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]repository.DailyCount, error) {
	var counts []repository.DailyCount
	err := repo.db.WithContext(ctx).
		Model(&model.HabitProgressModel{}).
		Select("date, SUM(completed_count) AS completed").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Group("date").
		Order("date").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily completion counts")
	}

	return counts, nil
}

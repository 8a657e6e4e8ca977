// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	deliverycontext "habitude/internal/delivery/context"
	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const insightWindowDays = 30

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	habitRepo     repository.HabitRepository
	analyticsRepo repository.AnalyticsRepository
	logger        *slog.Logger
	now           func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	HabitRepo     repository.HabitRepository
	AnalyticsRepo repository.AnalyticsRepository
	Logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		habitRepo:     params.HabitRepo,
		analyticsRepo: params.AnalyticsRepo,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetHabitStats computes completion rate and streaks for a habit the
// caller owns. A day counts as completed when at least one completion was
// logged, regardless of the habit's target count.
func (srv *analyticsService) GetHabitStats(ctx context.Context, userID, habitID uuid.UUID) (*entity.HabitStats, error) {
	habit, err := srv.loadOwnedHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	dates, err := srv.analyticsRepo.ListCompletionDates(ctx, habitID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completion dates")
	}

	today := normalizeDate(srv.now())
	totalDays := int(today.Sub(normalizeDate(habit.CreatedAt)).Hours()/24) + 1
	if totalDays < 1 {
		totalDays = 1
	}

	stats := &entity.HabitStats{
		TotalDays:     totalDays,
		CompletedDays: len(dates),
	}
	stats.CompletionRate = float64(stats.CompletedDays) / float64(stats.TotalDays)
	stats.CurrentStreak, stats.LongestStreak = computeStreaks(dates, today)

	return stats, nil
}

// GetWeeklySummary aggregates the caller's completions for one week.
func (srv *analyticsService) GetWeeklySummary(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*usecase.WeeklySummary, error) {
	if weekStart.IsZero() {
		weekStart = srv.now()
	}
	weekStart = startOfWeek(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)

	counts, err := srv.analyticsRepo.ListDailyCounts(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate weekly counts")
	}

	activeHabits, err := srv.habitRepo.CountActiveHabitsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active habits")
	}

	summary := &usecase.WeeklySummary{
		WeekStart:    weekStart,
		ActiveHabits: activeHabits,
	}

	bestCount := 0
	for _, row := range counts {
		idx := int(normalizeDate(row.Date).Sub(weekStart).Hours() / 24)
		if idx < 0 || idx > 6 {
			continue
		}
		summary.DailyCounts[idx] = row.Completed
		summary.TotalCompleted += row.Completed
		if row.Completed > bestCount {
			bestCount = row.Completed
			summary.BestDay = normalizeDate(row.Date)
		}
	}

	return summary, nil
}

// GetInsights generates behavioral observations from the last month of activity.
func (srv *analyticsService) GetInsights(ctx context.Context, userID uuid.UUID) ([]usecase.Insight, error) {
	today := normalizeDate(srv.now())
	from := today.AddDate(0, 0, -insightWindowDays+1)

	counts, err := srv.analyticsRepo.ListDailyCounts(ctx, userID, from, today)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load activity for insights")
	}

	srv.log(ctx).Debug("Generating insights", slog.Any("userID", userID), slog.Int("activeDays", len(counts)))

	return buildInsights(counts, today), nil
}

// ExportProgressCSV renders a habit's progress history as CSV.
func (srv *analyticsService) ExportProgressCSV(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]byte, error) {
	rows, err := srv.exportRows(ctx, userID, habitID, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"date", "completed_count", "notes"}); err != nil {
		return nil, errors.Wrap(err, "failed to write CSV header")
	}
	for _, row := range rows {
		record := []string{
			row.Date.Format("2006-01-02"),
			fmt.Sprintf("%d", row.CompletedCount),
			row.Notes,
		}
		if err := writer.Write(record); err != nil {
			return nil, errors.Wrap(err, "failed to write CSV row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush CSV")
	}

	return buf.Bytes(), nil
}

// ExportProgressJSON renders a habit's progress history as JSON.
func (srv *analyticsService) ExportProgressJSON(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]byte, error) {
	rows, err := srv.exportRows(ctx, userID, habitID, from, to)
	if err != nil {
		return nil, err
	}

	records := make([]progressExportRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, progressExportRecord{
			Date:           row.Date.Format("2006-01-02"),
			CompletedCount: row.CompletedCount,
			Notes:          row.Notes,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal progress export")
	}

	return data, nil
}

type progressExportRecord struct {
	Date           string `json:"date"`
	CompletedCount int    `json:"completed_count"`
	Notes          string `json:"notes,omitempty"`
}

func (srv *analyticsService) exportRows(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitProgress, error) {
	habit, err := srv.loadOwnedHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	if to.IsZero() {
		to = srv.now()
	}
	if from.IsZero() {
		from = normalizeDate(habit.CreatedAt)
	}
	if to.Before(from) {
		return nil, domainerrors.ErrInvalidDates.WrapMessage("export range end precedes start")
	}

	rows, err := srv.habitRepo.ListProgressByHabit(ctx, habitID, normalizeDate(from), normalizeDate(to))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list progress for export")
	}

	return rows, nil
}

func (srv *analyticsService) loadOwnedHabit(ctx context.Context, userID, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := srv.habitRepo.FindHabitByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			return nil, domainerrors.ErrHabitNotFound.WrapMessage("habit lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load habit")
	}
	if habit.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("habit belongs to another user")
	}

	return habit, nil
}

// computeStreaks derives the current and longest run of consecutive
// completion days. The current streak tolerates a missing entry for today,
// so a streak is not broken before the day is over.
func computeStreaks(dates []time.Time, today time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	normalized := make([]time.Time, len(dates))
	for i, d := range dates {
		normalized[i] = normalizeDate(d)
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i].After(normalized[j]) })

	// Current streak: walk backwards from today (or yesterday).
	cursor := today
	if !normalized[0].Equal(today) {
		cursor = today.AddDate(0, 0, -1)
	}
	for _, d := range normalized {
		if d.Equal(cursor) {
			current++
			cursor = cursor.AddDate(0, 0, -1)
		} else if d.Before(cursor) {
			break
		}
	}

	// Longest streak: scan all runs.
	run := 1
	longest = 1
	for i := 1; i < len(normalized); i++ {
		if normalized[i-1].AddDate(0, 0, -1).Equal(normalized[i]) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	return current, longest
}

func buildInsights(counts []repository.DailyCount, today time.Time) []usecase.Insight {
	insights := make([]usecase.Insight, 0, 3)

	activeDays := len(counts)
	recentIdle := true
	streakDates := make([]time.Time, 0, len(counts))
	for _, row := range counts {
		day := normalizeDate(row.Date)
		streakDates = append(streakDates, day)
		if today.Sub(day).Hours() < 72 {
			recentIdle = false
		}
	}

	current, _ := computeStreaks(streakDates, today)
	if current >= 7 {
		insights = append(insights, usecase.Insight{
			Type:    "streak",
			Message: fmt.Sprintf("You are on a %d-day streak. Keep it going!", current),
		})
	}

	if activeDays > 0 && recentIdle {
		insights = append(insights, usecase.Insight{
			Type:    "slump",
			Message: "No completions in the last few days. A small step today restarts the momentum.",
		})
	}

	if activeDays >= insightWindowDays*4/5 {
		insights = append(insights, usecase.Insight{
			Type:    "consistency",
			Message: fmt.Sprintf("You were active on %d of the last %d days. Remarkable consistency.", activeDays, insightWindowDays),
		})
	}

	return insights
}

func startOfWeek(t time.Time) time.Time {
	day := normalizeDate(t)
	weekday := int(day.Weekday())
	// Monday-based week.
	offset := (weekday + 6) % 7

	return day.AddDate(0, 0, -offset)
}

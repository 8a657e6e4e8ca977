package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	mockRepo "habitude/internal/mocks/repository"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service       usecase.AnalyticsUsecase
	habitRepo     *mockRepo.MockHabitRepository
	analyticsRepo *mockRepo.MockAnalyticsRepository
}

func createTestAnalyticsService(t *testing.T, now time.Time) analyticsServiceFixtures {
	habitRepo := mockRepo.NewMockHabitRepository(t)
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)

	service := NewAnalyticsService(AnalyticsServiceParams{
		HabitRepo:     habitRepo,
		AnalyticsRepo: analyticsRepo,
		Logger:        newDiscardLogger(),
	})
	service.(*analyticsService).now = func() time.Time { return now }

	return analyticsServiceFixtures{
		service:       service,
		habitRepo:     habitRepo,
		analyticsRepo: analyticsRepo,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAnalyticsService_GetHabitStats_StreaksAndRate(t *testing.T) {
	today := day(2025, 3, 10)
	fx := createTestAnalyticsService(t, today.Add(15*time.Hour))

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID, CreatedAt: day(2025, 3, 1)}, nil)
	fx.analyticsRepo.EXPECT().
		ListCompletionDates(ctx, habitID).
		Return([]time.Time{
			day(2025, 3, 10),
			day(2025, 3, 9),
			day(2025, 3, 8),
			day(2025, 3, 5),
			day(2025, 3, 4),
		}, nil)

	stats, err := fx.service.GetHabitStats(ctx, userID, habitID)

	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalDays)
	assert.Equal(t, 5, stats.CompletedDays)
	assert.InDelta(t, 0.5, stats.CompletionRate, 0.001)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestAnalyticsService_GetHabitStats_MissingTodayKeepsStreak(t *testing.T) {
	today := day(2025, 3, 10)
	fx := createTestAnalyticsService(t, today)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID, CreatedAt: day(2025, 3, 1)}, nil)
	// Nothing logged today yet; the streak from yesterday must survive.
	fx.analyticsRepo.EXPECT().
		ListCompletionDates(ctx, habitID).
		Return([]time.Time{day(2025, 3, 9), day(2025, 3, 8)}, nil)

	stats, err := fx.service.GetHabitStats(ctx, userID, habitID)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.CurrentStreak)
}

func TestAnalyticsService_GetHabitStats_NotOwner(t *testing.T) {
	fx := createTestAnalyticsService(t, day(2025, 3, 10))

	ctx := context.Background()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: uuid.New()}, nil)

	stats, err := fx.service.GetHabitStats(ctx, uuid.New(), habitID)

	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAnalyticsService_GetHabitStats_HabitNotFound(t *testing.T) {
	fx := createTestAnalyticsService(t, day(2025, 3, 10))

	ctx := context.Background()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(nil, repository.ErrHabitNotFound)

	stats, err := fx.service.GetHabitStats(ctx, uuid.New(), habitID)

	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, domainerrors.ErrHabitNotFound))
}

func TestAnalyticsService_GetWeeklySummary_NormalizesToMonday(t *testing.T) {
	fx := createTestAnalyticsService(t, day(2025, 3, 14))

	ctx := context.Background()
	userID := uuid.New()
	monday := day(2025, 3, 10)
	sunday := day(2025, 3, 16)

	fx.analyticsRepo.EXPECT().
		ListDailyCounts(ctx, userID, monday, sunday).
		Return([]repository.DailyCount{
			{Date: day(2025, 3, 10), Completed: 2},
			{Date: day(2025, 3, 12), Completed: 5},
		}, nil)
	fx.habitRepo.EXPECT().CountActiveHabitsByUser(ctx, userID).Return(3, nil)

	// A Wednesday input must resolve to the same Monday-based week.
	summary, err := fx.service.GetWeeklySummary(ctx, userID, day(2025, 3, 12))

	require.NoError(t, err)
	assert.Equal(t, monday, summary.WeekStart)
	assert.Equal(t, 7, summary.TotalCompleted)
	assert.Equal(t, [7]int{2, 0, 5, 0, 0, 0, 0}, summary.DailyCounts)
	assert.Equal(t, day(2025, 3, 12), summary.BestDay)
	assert.Equal(t, 3, summary.ActiveHabits)
}

func TestAnalyticsService_GetWeeklySummary_ZeroWeekStartUsesCurrentWeek(t *testing.T) {
	// Friday 2025-03-14; the current week starts Monday 2025-03-10.
	fx := createTestAnalyticsService(t, day(2025, 3, 14).Add(9*time.Hour))

	ctx := context.Background()
	userID := uuid.New()

	fx.analyticsRepo.EXPECT().
		ListDailyCounts(ctx, userID, day(2025, 3, 10), day(2025, 3, 16)).
		Return([]repository.DailyCount{}, nil)
	fx.habitRepo.EXPECT().CountActiveHabitsByUser(ctx, userID).Return(0, nil)

	summary, err := fx.service.GetWeeklySummary(ctx, userID, time.Time{})

	require.NoError(t, err)
	assert.Equal(t, day(2025, 3, 10), summary.WeekStart)
	assert.Equal(t, 0, summary.TotalCompleted)
}

func TestAnalyticsService_GetInsights_StreakDetected(t *testing.T) {
	today := day(2025, 3, 10)
	fx := createTestAnalyticsService(t, today)

	ctx := context.Background()
	userID := uuid.New()

	counts := make([]repository.DailyCount, 0, 7)
	for i := 0; i < 7; i++ {
		counts = append(counts, repository.DailyCount{Date: today.AddDate(0, 0, -i), Completed: 1})
	}
	fx.analyticsRepo.EXPECT().
		ListDailyCounts(ctx, userID, today.AddDate(0, 0, -insightWindowDays+1), today).
		Return(counts, nil)

	insights, err := fx.service.GetInsights(ctx, userID)

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "streak", insights[0].Type)
}

func TestAnalyticsService_GetInsights_SlumpAfterIdleDays(t *testing.T) {
	today := day(2025, 3, 10)
	fx := createTestAnalyticsService(t, today)

	ctx := context.Background()
	userID := uuid.New()

	fx.analyticsRepo.EXPECT().
		ListDailyCounts(ctx, userID, today.AddDate(0, 0, -insightWindowDays+1), today).
		Return([]repository.DailyCount{
			{Date: today.AddDate(0, 0, -10), Completed: 2},
			{Date: today.AddDate(0, 0, -12), Completed: 1},
		}, nil)

	insights, err := fx.service.GetInsights(ctx, userID)

	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "slump", insights[0].Type)
}

func TestAnalyticsService_GetInsights_NoActivity(t *testing.T) {
	today := day(2025, 3, 10)
	fx := createTestAnalyticsService(t, today)

	ctx := context.Background()
	userID := uuid.New()

	fx.analyticsRepo.EXPECT().
		ListDailyCounts(ctx, userID, today.AddDate(0, 0, -insightWindowDays+1), today).
		Return([]repository.DailyCount{}, nil)

	insights, err := fx.service.GetInsights(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestAnalyticsService_ExportProgressCSV(t *testing.T) {
	fx := createTestAnalyticsService(t, day(2025, 3, 10))

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()
	from := day(2025, 3, 1)
	to := day(2025, 3, 7)

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID, CreatedAt: day(2025, 2, 1)}, nil)
	fx.habitRepo.EXPECT().
		ListProgressByHabit(ctx, habitID, from, to).
		Return([]*entity.HabitProgress{
			{Date: day(2025, 3, 2), CompletedCount: 1, Notes: "morning run"},
			{Date: day(2025, 3, 3), CompletedCount: 2},
		}, nil)

	data, err := fx.service.ExportProgressCSV(ctx, userID, habitID, from, to)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,completed_count,notes", lines[0])
	assert.Equal(t, "2025-03-02,1,morning run", lines[1])
	assert.Equal(t, "2025-03-03,2,", lines[2])
}

func TestAnalyticsService_ExportProgressCSV_InvalidRange(t *testing.T) {
	fx := createTestAnalyticsService(t, day(2025, 3, 10))

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID, CreatedAt: day(2025, 2, 1)}, nil)

	data, err := fx.service.ExportProgressCSV(ctx, userID, habitID, day(2025, 3, 7), day(2025, 3, 1))

	assert.Nil(t, data)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDates))
}

func TestAnalyticsService_ExportProgressJSON(t *testing.T) {
	fx := createTestAnalyticsService(t, day(2025, 3, 10))

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()
	from := day(2025, 3, 1)
	to := day(2025, 3, 7)

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID, CreatedAt: day(2025, 2, 1)}, nil)
	fx.habitRepo.EXPECT().
		ListProgressByHabit(ctx, habitID, from, to).
		Return([]*entity.HabitProgress{
			{Date: day(2025, 3, 2), CompletedCount: 1, Notes: "morning run"},
			{Date: day(2025, 3, 3), CompletedCount: 2},
		}, nil)

	data, err := fx.service.ExportProgressJSON(ctx, userID, habitID, from, to)

	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "2025-03-02", records[0]["date"])
	assert.Equal(t, float64(1), records[0]["completed_count"])
	assert.Equal(t, "morning run", records[0]["notes"])
	// Empty notes are omitted rather than serialized as "".
	assert.NotContains(t, records[1], "notes")
}

func TestAnalyticsService_ExportProgressJSON_EmptyRangeYieldsEmptyArray(t *testing.T) {
	fx := createTestAnalyticsService(t, day(2025, 3, 10))

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()
	from := day(2025, 3, 1)
	to := day(2025, 3, 7)

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID, CreatedAt: day(2025, 2, 1)}, nil)
	fx.habitRepo.EXPECT().
		ListProgressByHabit(ctx, habitID, from, to).
		Return([]*entity.HabitProgress{}, nil)

	data, err := fx.service.ExportProgressJSON(ctx, userID, habitID, from, to)

	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{"monday maps to itself", day(2025, 3, 10), day(2025, 3, 10)},
		{"wednesday maps back", day(2025, 3, 12), day(2025, 3, 10)},
		{"sunday maps back six days", day(2025, 3, 16), day(2025, 3, 10)},
		{"time of day is dropped", day(2025, 3, 12).Add(23 * time.Hour), day(2025, 3, 10)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, startOfWeek(tc.input))
		})
	}
}

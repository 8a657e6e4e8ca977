package impl

import (
	"context"
	"testing"
	"time"

	"habitude/internal/domain/entity"
	"habitude/internal/domain/repository"
	"habitude/internal/domain/service"
	mockRepo "habitude/internal/mocks/repository"
	mockUsecase "habitude/internal/mocks/usecase"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// achievementServiceFixtures holds all test dependencies for achievement service tests.
type achievementServiceFixtures struct {
	service       usecase.AchievementUsecase
	userRepo      *mockRepo.MockUserRepository
	activityRepo  *mockRepo.MockActivityRepository
	analyticsRepo *mockRepo.MockAnalyticsRepository
	notifications *mockUsecase.MockNotificationUsecase
}

func createTestAchievementService(t *testing.T, now time.Time) achievementServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	notifications := mockUsecase.NewMockNotificationUsecase(t)

	service := NewAchievementService(AchievementServiceParams{
		UserRepo:      userRepo,
		ActivityRepo:  activityRepo,
		AnalyticsRepo: analyticsRepo,
		Notifications: notifications,
		Logger:        newDiscardLogger(),
	})
	service.(*achievementService).now = func() time.Time { return now }

	return achievementServiceFixtures{
		service:       service,
		userRepo:      userRepo,
		activityRepo:  activityRepo,
		analyticsRepo: analyticsRepo,
		notifications: notifications,
	}
}

func progressEvent(userID, habitID uuid.UUID) *service.ProgressEvent {
	return &service.ProgressEvent{
		UserID:         userID.String(),
		HabitID:        habitID.String(),
		Date:           "2025-03-10",
		CompletedCount: 1,
		TargetCount:    1,
	}
}

func TestAchievementService_ProcessProgressEvent_AwardsExperience(t *testing.T) {
	today := day(2025, 3, 10)
	fx := createTestAchievementService(t, today)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	avatar := entity.DefaultAvatar(userID)
	avatar.Experience = 95
	avatar.Mood = 98
	avatar.Energy = 50

	fx.userRepo.EXPECT().FindAvatar(ctx, userID).Return(avatar, nil)
	fx.userRepo.EXPECT().
		SaveAvatar(ctx, avatar).
		Run(func(ctx context.Context, saved *entity.Avatar) {
			// 95+10 crosses the level-1 threshold of 100.
			assert.Equal(t, 2, saved.Level)
			assert.Equal(t, 5, saved.Experience)
			assert.Equal(t, 100, saved.Mood)
			assert.Equal(t, 52, saved.Energy)
		}).
		Return(nil)
	fx.analyticsRepo.EXPECT().
		ListCompletionDates(ctx, habitID).
		Return([]time.Time{today, today.AddDate(0, 0, -1)}, nil)

	err := fx.service.ProcessProgressEvent(ctx, progressEvent(userID, habitID))

	require.NoError(t, err)
}

func TestAchievementService_ProcessProgressEvent_BootstrapsAvatar(t *testing.T) {
	today := day(2025, 3, 10)
	fx := createTestAchievementService(t, today)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.userRepo.EXPECT().FindAvatar(ctx, userID).Return(nil, repository.ErrAvatarNotFound)
	fx.userRepo.EXPECT().
		SaveAvatar(ctx, mock.AnythingOfType("*entity.Avatar")).
		Run(func(ctx context.Context, saved *entity.Avatar) {
			assert.Equal(t, userID, saved.UserID)
			assert.Equal(t, 1, saved.Level)
			assert.Equal(t, completionExperience, saved.Experience)
		}).
		Return(nil)
	fx.analyticsRepo.EXPECT().ListCompletionDates(ctx, habitID).Return(nil, nil)

	err := fx.service.ProcessProgressEvent(ctx, progressEvent(userID, habitID))

	require.NoError(t, err)
}

func TestAchievementService_ProcessProgressEvent_StreakMilestone(t *testing.T) {
	today := day(2025, 3, 10)
	fx := createTestAchievementService(t, today)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.userRepo.EXPECT().FindAvatar(ctx, userID).Return(entity.DefaultAvatar(userID), nil)
	fx.userRepo.EXPECT().SaveAvatar(ctx, mock.AnythingOfType("*entity.Avatar")).Return(nil)

	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, today.AddDate(0, 0, -i))
	}
	fx.analyticsRepo.EXPECT().ListCompletionDates(ctx, habitID).Return(dates, nil)

	fx.activityRepo.EXPECT().
		CreateActivity(ctx, mock.AnythingOfType("*entity.Activity")).
		Run(func(ctx context.Context, activity *entity.Activity) {
			assert.Equal(t, userID, activity.UserID)
			assert.Equal(t, "achievement", activity.Type)
			assert.Equal(t, "7", activity.Payload["streak"])
		}).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, mock.AnythingOfType("usecase.NotifyInput")).
		Run(func(ctx context.Context, input usecase.NotifyInput) {
			assert.Equal(t, entity.NotificationAchievement, input.Type)
			assert.Equal(t, "7", input.Data["streak"])
		}).
		Return(&entity.Notification{}, nil)

	err := fx.service.ProcessProgressEvent(ctx, progressEvent(userID, habitID))

	require.NoError(t, err)
}

func TestAchievementService_ProcessProgressEvent_OffMilestoneStreakIsQuiet(t *testing.T) {
	today := day(2025, 3, 10)
	fx := createTestAchievementService(t, today)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.userRepo.EXPECT().FindAvatar(ctx, userID).Return(entity.DefaultAvatar(userID), nil)
	fx.userRepo.EXPECT().SaveAvatar(ctx, mock.AnythingOfType("*entity.Avatar")).Return(nil)

	// An 8-day streak already passed the 7-day milestone; it must not fire again.
	dates := make([]time.Time, 0, 8)
	for i := 0; i < 8; i++ {
		dates = append(dates, today.AddDate(0, 0, -i))
	}
	fx.analyticsRepo.EXPECT().ListCompletionDates(ctx, habitID).Return(dates, nil)

	err := fx.service.ProcessProgressEvent(ctx, progressEvent(userID, habitID))

	require.NoError(t, err)
}

func TestAchievementService_ProcessProgressEvent_NotifyFailureTolerated(t *testing.T) {
	today := day(2025, 3, 10)
	fx := createTestAchievementService(t, today)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.userRepo.EXPECT().FindAvatar(ctx, userID).Return(entity.DefaultAvatar(userID), nil)
	fx.userRepo.EXPECT().SaveAvatar(ctx, mock.AnythingOfType("*entity.Avatar")).Return(nil)

	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, today.AddDate(0, 0, -i))
	}
	fx.analyticsRepo.EXPECT().ListCompletionDates(ctx, habitID).Return(dates, nil)
	fx.activityRepo.EXPECT().CreateActivity(ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, mock.AnythingOfType("usecase.NotifyInput")).
		Return(nil, errors.New("push backend down"))

	err := fx.service.ProcessProgressEvent(ctx, progressEvent(userID, habitID))

	// The achievement is recorded even when the notification cannot be sent.
	require.NoError(t, err)
}

func TestAchievementService_ProcessProgressEvent_InvalidUserID(t *testing.T) {
	fx := createTestAchievementService(t, day(2025, 3, 10))

	err := fx.service.ProcessProgressEvent(context.Background(), &service.ProgressEvent{
		UserID:  "not-a-uuid",
		HabitID: uuid.New().String(),
	})

	assert.Error(t, err)
}

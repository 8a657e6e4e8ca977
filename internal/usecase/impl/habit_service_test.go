package impl

import (
	"context"
	"testing"
	"time"

	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	mockRepo "habitude/internal/mocks/repository"
	mockSvc "habitude/internal/mocks/service"
	mockUc "habitude/internal/mocks/usecase"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// habitServiceFixtures holds all test dependencies for habit service tests.
type habitServiceFixtures struct {
	service        usecase.HabitUsecase
	txManager      *mockRepo.MockTransactionManager
	habitRepo      *mockRepo.MockHabitRepository
	challengeRepo  *mockRepo.MockChallengeRepository
	eventPublisher *mockSvc.MockEventPublisher
	notifications  *mockUc.MockNotificationUsecase
}

func createTestHabitService(t *testing.T) habitServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	habitRepo := mockRepo.NewMockHabitRepository(t)
	challengeRepo := mockRepo.NewMockChallengeRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	notifications := mockUc.NewMockNotificationUsecase(t)

	service := NewHabitService(HabitServiceParams{
		TxManager:      txManager,
		HabitRepo:      habitRepo,
		ChallengeRepo:  challengeRepo,
		EventPublisher: eventPublisher,
		Notifications:  notifications,
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	})

	return habitServiceFixtures{
		service:        service,
		txManager:      txManager,
		habitRepo:      habitRepo,
		challengeRepo:  challengeRepo,
		eventPublisher: eventPublisher,
		notifications:  notifications,
	}
}

func TestHabitService_CreateHabit_Success(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.CreateHabitInput{
		Name:      "Morning run",
		Frequency: entity.FrequencyDaily,
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txHabitRepo := mockRepo.NewMockHabitRepository(t)

	mockFactory.EXPECT().NewHabitRepository().Return(txHabitRepo)

	txHabitRepo.EXPECT().AcquireHabitMutex(ctx, userID).Return(nil)
	txHabitRepo.EXPECT().CountHabitsByUser(ctx, userID).Return(1, nil)
	txHabitRepo.EXPECT().
		CreateHabit(ctx, mock.AnythingOfType("*entity.Habit")).
		Run(func(ctx context.Context, habit *entity.Habit) {
			habit.ID = uuid.New()
		}).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	habit, err := fx.service.CreateHabit(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Morning run", habit.Name)
	assert.True(t, habit.IsActive)
	// Target count defaults to one when unset.
	assert.Equal(t, 1, habit.TargetCount)
}

func TestHabitService_CreateHabit_LimitReached(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.CreateHabitInput{
		Name:      "One too many",
		Frequency: entity.FrequencyDaily,
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txHabitRepo := mockRepo.NewMockHabitRepository(t)

	mockFactory.EXPECT().NewHabitRepository().Return(txHabitRepo)

	// The cap check runs under a row lock so racing creations serialize.
	// Archived habits count toward the cap, so archiving cannot bypass it.
	txHabitRepo.EXPECT().AcquireHabitMutex(ctx, userID).Return(nil)
	txHabitRepo.EXPECT().CountHabitsByUser(ctx, userID).Return(3, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	habit, err := fx.service.CreateHabit(ctx, userID, input)

	assert.Nil(t, habit)
	assert.True(t, errors.Is(err, domainerrors.ErrHabitLimitReached))
}

func TestHabitService_CreateHabit_InvalidFrequency(t *testing.T) {
	fx := createTestHabitService(t)

	habit, err := fx.service.CreateHabit(context.Background(), uuid.New(), usecase.CreateHabitInput{
		Name:      "Bad frequency",
		Frequency: "hourly",
	})

	assert.Nil(t, habit)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestHabitService_CreateHabit_CustomFrequencyNeedsDays(t *testing.T) {
	fx := createTestHabitService(t)

	habit, err := fx.service.CreateHabit(context.Background(), uuid.New(), usecase.CreateHabitInput{
		Name:      "Gym",
		Frequency: entity.FrequencyCustom,
	})

	assert.Nil(t, habit)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestHabitService_CreateHabit_InvalidReminderTime(t *testing.T) {
	fx := createTestHabitService(t)

	habit, err := fx.service.CreateHabit(context.Background(), uuid.New(), usecase.CreateHabitInput{
		Name:         "Read",
		Frequency:    entity.FrequencyDaily,
		ReminderTime: "25:99",
	})

	assert.Nil(t, habit)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTimeFormat))
}

func TestHabitService_GetHabit_PrivateHabitOfOtherUser(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: uuid.New(), IsPublic: false}, nil)

	habit, err := fx.service.GetHabit(ctx, viewerID, habitID)

	assert.Nil(t, habit)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestHabitService_GetHabit_PublicHabitVisible(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	viewerID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: uuid.New(), IsPublic: true}, nil)

	habit, err := fx.service.GetHabit(ctx, viewerID, habitID)

	require.NoError(t, err)
	assert.Equal(t, habitID, habit.ID)
}

func TestHabitService_UpdateHabit_PartialChanges(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()
	newName := "Evening run"

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{
			ID:          habitID,
			UserID:      userID,
			Name:        "Morning run",
			Frequency:   entity.FrequencyDaily,
			TargetCount: 1,
			IsActive:    true,
		}, nil)
	fx.habitRepo.EXPECT().
		UpdateHabit(ctx, mock.AnythingOfType("*entity.Habit")).
		Run(func(ctx context.Context, habit *entity.Habit) {
			assert.Equal(t, "Evening run", habit.Name)
			assert.Equal(t, entity.FrequencyDaily, habit.Frequency)
		}).
		Return(nil)

	habit, err := fx.service.UpdateHabit(ctx, userID, habitID, usecase.UpdateHabitInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Evening run", habit.Name)
}

func TestHabitService_ArchiveHabit_NotOwner(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: uuid.New()}, nil)

	err := fx.service.ArchiveHabit(ctx, uuid.New(), habitID)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestHabitService_LogProgress_BelowTarget(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{
			ID:          habitID,
			UserID:      userID,
			Name:        "Pushups",
			Frequency:   entity.FrequencyDaily,
			TargetCount: 5,
			IsActive:    true,
		}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txHabitRepo := mockRepo.NewMockHabitRepository(t)

	mockFactory.EXPECT().NewHabitRepository().Return(txHabitRepo)

	txHabitRepo.EXPECT().
		UpsertProgress(ctx, mock.AnythingOfType("*entity.HabitProgress")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	// No activity, no event and no notification below the target.
	progress, err := fx.service.LogProgress(ctx, userID, usecase.LogProgressInput{
		HabitID:        habitID,
		Date:           time.Now(),
		CompletedCount: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, progress.CompletedCount)
}

func TestHabitService_LogProgress_TargetMetAdvancesChallenges(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()
	challengeID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{
			ID:          habitID,
			UserID:      userID,
			Name:        "Pushups",
			Frequency:   entity.FrequencyDaily,
			TargetCount: 1,
			IsActive:    true,
		}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txHabitRepo := mockRepo.NewMockHabitRepository(t)
	txActivityRepo := mockRepo.NewMockActivityRepository(t)
	txChallengeRepo := mockRepo.NewMockChallengeRepository(t)

	mockFactory.EXPECT().NewHabitRepository().Return(txHabitRepo)
	mockFactory.EXPECT().NewActivityRepository().Return(txActivityRepo)
	mockFactory.EXPECT().NewChallengeRepository().Return(txChallengeRepo)

	txHabitRepo.EXPECT().
		FindProgress(ctx, habitID, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrProgressNotFound)
	txHabitRepo.EXPECT().
		UpsertProgress(ctx, mock.AnythingOfType("*entity.HabitProgress")).
		Return(nil)
	txActivityRepo.EXPECT().
		CreateActivity(ctx, mock.AnythingOfType("*entity.Activity")).
		Return(nil)

	challenge := &entity.Challenge{ID: challengeID, Name: "Spring sprint", TargetCount: 2}
	txChallengeRepo.EXPECT().
		ListActiveChallengesByHabit(ctx, habitID).
		Return([]*entity.Challenge{challenge}, nil)
	txChallengeRepo.EXPECT().
		IncrementParticipantProgress(ctx, challengeID, userID, 1).
		Return(&entity.ChallengeParticipant{ChallengeID: challengeID, UserID: userID, ProgressCount: 2}, nil)
	txChallengeRepo.EXPECT().MarkParticipantCompleted(ctx, challengeID, userID).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishProgressEvent(ctx, mock.AnythingOfType("*service.ProgressEvent")).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, mock.AnythingOfType("usecase.NotifyInput")).
		Run(func(ctx context.Context, input usecase.NotifyInput) {
			assert.Equal(t, entity.NotificationChallenge, input.Type)
			assert.Equal(t, userID, input.UserID)
		}).
		Return(&entity.Notification{}, nil)

	progress, err := fx.service.LogProgress(ctx, userID, usecase.LogProgressInput{
		HabitID:        habitID,
		Date:           time.Now(),
		CompletedCount: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, progress.CompletedCount)
}

func TestHabitService_UpdateHabit_ResumesArchivedHabit(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()
	active := true

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{
			ID:          habitID,
			UserID:      userID,
			Name:        "Morning run",
			Frequency:   entity.FrequencyDaily,
			TargetCount: 1,
			IsActive:    false,
		}, nil)
	fx.habitRepo.EXPECT().
		UpdateHabit(ctx, mock.AnythingOfType("*entity.Habit")).
		Run(func(ctx context.Context, habit *entity.Habit) {
			assert.True(t, habit.IsActive)
		}).
		Return(nil)

	habit, err := fx.service.UpdateHabit(ctx, userID, habitID, usecase.UpdateHabitInput{IsActive: &active})

	require.NoError(t, err)
	assert.True(t, habit.IsActive)
}

func TestHabitService_DeleteHabit_Success(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txHabitRepo := mockRepo.NewMockHabitRepository(t)

	mockFactory.EXPECT().NewHabitRepository().Return(txHabitRepo)

	// The habit and its progress rows go in one transaction.
	txHabitRepo.EXPECT().DeleteHabit(ctx, habitID).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	err := fx.service.DeleteHabit(ctx, userID, habitID)

	assert.NoError(t, err)
}

func TestHabitService_DeleteHabit_NotOwner(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: uuid.New()}, nil)

	err := fx.service.DeleteHabit(ctx, uuid.New(), habitID)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestHabitService_LogProgress_RelogAfterTargetMetSkipsSideEffects(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{
			ID:          habitID,
			UserID:      userID,
			Name:        "Pushups",
			Frequency:   entity.FrequencyDaily,
			TargetCount: 1,
			IsActive:    true,
		}, nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txHabitRepo := mockRepo.NewMockHabitRepository(t)

	mockFactory.EXPECT().NewHabitRepository().Return(txHabitRepo)

	// The day already met the target, so the overwrite must not advance
	// challenges, record another activity or publish a second event.
	txHabitRepo.EXPECT().
		FindProgress(ctx, habitID, mock.AnythingOfType("time.Time")).
		Return(&entity.HabitProgress{
			HabitID:        habitID,
			UserID:         userID,
			CompletedCount: 2,
		}, nil)
	txHabitRepo.EXPECT().
		UpsertProgress(ctx, mock.AnythingOfType("*entity.HabitProgress")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	progress, err := fx.service.LogProgress(ctx, userID, usecase.LogProgressInput{
		HabitID:        habitID,
		Date:           time.Now(),
		CompletedCount: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, progress.CompletedCount)
}

func TestHabitService_LogProgress_FutureDate(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{
			ID:          habitID,
			UserID:      userID,
			Frequency:   entity.FrequencyDaily,
			TargetCount: 1,
			IsActive:    true,
		}, nil)

	progress, err := fx.service.LogProgress(ctx, userID, usecase.LogProgressInput{
		HabitID:        habitID,
		Date:           time.Now().AddDate(0, 0, 2),
		CompletedCount: 1,
	})

	assert.Nil(t, progress)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDates))
}

func TestHabitService_LogProgress_ArchivedHabit(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID, IsActive: false}, nil)

	progress, err := fx.service.LogProgress(ctx, userID, usecase.LogProgressInput{
		HabitID:        habitID,
		Date:           time.Now(),
		CompletedCount: 1,
	})

	assert.Nil(t, progress)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestHabitService_GetProgress_InvalidRange(t *testing.T) {
	fx := createTestHabitService(t)

	ctx := context.Background()
	userID := uuid.New()
	habitID := uuid.New()

	fx.habitRepo.EXPECT().
		FindHabitByID(ctx, habitID).
		Return(&entity.Habit{ID: habitID, UserID: userID, IsActive: true}, nil)

	from := time.Now()
	to := from.AddDate(0, 0, -7)

	rows, err := fx.service.GetProgress(ctx, userID, habitID, from, to)

	assert.Nil(t, rows)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDates))
}

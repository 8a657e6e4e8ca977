// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"habitude/config"
	deliverycontext "habitude/internal/delivery/context"
	"habitude/internal/domain/entity"
	domainerrors "habitude/internal/domain/errors"
	"habitude/internal/domain/repository"
	"habitude/internal/domain/service"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxHabitsPerUser = 50

// habitService implements the HabitUsecase interface.
type habitService struct {
	txManager        repository.TransactionManager
	habitRepo        repository.HabitRepository
	challengeRepo    repository.ChallengeRepository
	eventPublisher   service.EventPublisher
	notifications    usecase.NotificationUsecase
	maxHabitsPerUser int
	logger           *slog.Logger
}

// HabitServiceParams holds dependencies for HabitService, injected by Fx.
type HabitServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	HabitRepo      repository.HabitRepository
	ChallengeRepo  repository.ChallengeRepository
	EventPublisher service.EventPublisher
	Notifications  usecase.NotificationUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// NewHabitService is the constructor for habitService.
func NewHabitService(params HabitServiceParams) usecase.HabitUsecase {
	maxHabits := defaultMaxHabitsPerUser
	if params.Config != nil && params.Config.Habits != nil && params.Config.Habits.MaxPerUser > 0 {
		maxHabits = params.Config.Habits.MaxPerUser
	}

	return &habitService{
		txManager:        params.TxManager,
		habitRepo:        params.HabitRepo,
		challengeRepo:    params.ChallengeRepo,
		eventPublisher:   params.EventPublisher,
		notifications:    params.Notifications,
		maxHabitsPerUser: maxHabits,
		logger:           params.Logger,
	}
}

func (srv *habitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateHabit creates a habit for the caller. The per-user cap counts
// archived habits too and is enforced under a row lock inside the
// transaction, so two racing creations at the cap boundary serialize and
// the second one fails cleanly.
func (srv *habitService) CreateHabit(ctx context.Context, userID uuid.UUID, input usecase.CreateHabitInput) (*entity.Habit, error) {
	srv.log(ctx).Debug("Creating habit", slog.Any("userID", userID), slog.String("name", input.Name))

	if err := validateHabitBasics(input.Name, input.Frequency, input.CustomFrequencyDays, input.ReminderTime); err != nil {
		return nil, err
	}

	targetCount := input.TargetCount
	if targetCount <= 0 {
		targetCount = 1
	}

	habit := &entity.Habit{
		UserID:              userID,
		Name:                input.Name,
		Description:         input.Description,
		Frequency:           input.Frequency,
		CustomFrequencyDays: input.CustomFrequencyDays,
		TargetCount:         targetCount,
		Category:            input.Category,
		Difficulty:          input.Difficulty,
		ReminderTime:        input.ReminderTime,
		IsActive:            true,
		IsPublic:            input.IsPublic,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		habitRepo := repoFactory.NewHabitRepository()

		if lockErr := habitRepo.AcquireHabitMutex(ctx, userID); lockErr != nil {
			return errors.Wrap(lockErr, "failed to lock user row for habit quota check")
		}

		count, countErr := habitRepo.CountHabitsByUser(ctx, userID)
		if countErr != nil {
			return errors.Wrap(countErr, "failed to count habits")
		}
		if count >= srv.maxHabitsPerUser {
			return domainerrors.ErrHabitLimitReached.WrapMessage("habit creation rejected")
		}

		return errors.Wrap(habitRepo.CreateHabit(ctx, habit), "failed to create habit")
	})

	if err != nil {
		srv.log(ctx).Warn("Habit creation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return habit, nil
}

// GetHabit retrieves a habit. Non-owners may only see public habits.
func (srv *habitService) GetHabit(ctx context.Context, userID, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := srv.loadHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}

	if habit.UserID != userID && !habit.IsPublic {
		return nil, domainerrors.ErrForbidden.WrapMessage("habit belongs to another user")
	}

	return habit, nil
}

// ListHabits retrieves the caller's active habits.
func (srv *habitService) ListHabits(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error) {
	habits, err := srv.habitRepo.FindHabitsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}

	return habits, nil
}

// UpdateHabit applies partial changes to a habit the caller owns. Setting
// IsActive pauses or resumes the habit; an archived habit comes back the
// same way.
func (srv *habitService) UpdateHabit(ctx context.Context, userID, habitID uuid.UUID, input usecase.UpdateHabitInput) (*entity.Habit, error) {
	habit, err := srv.loadOwnedHabit(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		habit.Name = *input.Name
	}
	if input.Description != nil {
		habit.Description = *input.Description
	}
	if input.Frequency != nil {
		habit.Frequency = *input.Frequency
	}
	if input.CustomFrequencyDays != nil {
		habit.CustomFrequencyDays = *input.CustomFrequencyDays
	}
	if input.TargetCount != nil {
		habit.TargetCount = *input.TargetCount
	}
	if input.Category != nil {
		habit.Category = *input.Category
	}
	if input.Difficulty != nil {
		habit.Difficulty = *input.Difficulty
	}
	if input.ReminderTime != nil {
		habit.ReminderTime = *input.ReminderTime
	}
	if input.IsActive != nil {
		habit.IsActive = *input.IsActive
	}
	if input.IsPublic != nil {
		habit.IsPublic = *input.IsPublic
	}

	if err := validateHabitBasics(habit.Name, habit.Frequency, habit.CustomFrequencyDays, habit.ReminderTime); err != nil {
		return nil, err
	}
	if habit.TargetCount < 1 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("target count must be at least 1")
	}

	if err := srv.habitRepo.UpdateHabit(ctx, habit); err != nil {
		return nil, errors.Wrap(err, "failed to update habit")
	}

	return habit, nil
}

// ArchiveHabit deactivates a habit the caller owns. Progress history and
// challenge references stay intact.
func (srv *habitService) ArchiveHabit(ctx context.Context, userID, habitID uuid.UUID) error {
	if _, err := srv.loadOwnedHabit(ctx, userID, habitID); err != nil {
		return err
	}

	if err := srv.habitRepo.ArchiveHabit(ctx, habitID); err != nil {
		return errors.Wrap(err, "failed to archive habit")
	}

	srv.log(ctx).Debug("Habit archived", slog.Any("habitID", habitID))

	return nil
}

// DeleteHabit removes a habit the caller owns. The habit and its progress
// rows go in one transaction; challenge history is untouched.
func (srv *habitService) DeleteHabit(ctx context.Context, userID, habitID uuid.UUID) error {
	if _, err := srv.loadOwnedHabit(ctx, userID, habitID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.NewHabitRepository().DeleteHabit(ctx, habitID), "failed to delete habit")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Habit deleted", slog.Any("habitID", habitID))

	return nil
}

// LogProgress records progress for one habit and date. The write is an
// upsert, so a second log for the same day replaces the first. The first
// time a day meets the habit's target, active challenges on the habit
// advance inside the same transaction and a progress event is published
// for the worker; re-logging a day that already met the target only
// rewrites the row.
func (srv *habitService) LogProgress(ctx context.Context, userID uuid.UUID, input usecase.LogProgressInput) (*entity.HabitProgress, error) {
	habit, err := srv.loadOwnedHabit(ctx, userID, input.HabitID)
	if err != nil {
		return nil, err
	}
	if !habit.IsActive {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("cannot log progress on an archived habit")
	}
	if input.CompletedCount < 1 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("completed count must be at least 1")
	}

	date := normalizeDate(input.Date)
	if date.After(normalizeDate(time.Now())) {
		return nil, domainerrors.ErrInvalidDates.WrapMessage("cannot log progress for a future date")
	}

	progress := &entity.HabitProgress{
		HabitID:        habit.ID,
		UserID:         userID,
		Date:           date,
		CompletedCount: input.CompletedCount,
		Notes:          input.Notes,
	}

	targetMet := input.CompletedCount >= habit.TargetCount
	firstTimeMet := false
	var completedChallenges []*entity.Challenge

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		habitRepo := repoFactory.NewHabitRepository()

		if targetMet {
			prior, findErr := habitRepo.FindProgress(ctx, habit.ID, date)
			if findErr != nil && !errors.Is(findErr, repository.ErrProgressNotFound) {
				return errors.Wrap(findErr, "failed to check prior progress")
			}
			firstTimeMet = prior == nil || prior.CompletedCount < habit.TargetCount
		}

		if upsertErr := habitRepo.UpsertProgress(ctx, progress); upsertErr != nil {
			return errors.Wrap(upsertErr, "failed to upsert progress")
		}

		if !firstTimeMet {
			return nil
		}

		activityRepo := repoFactory.NewActivityRepository()
		activity := &entity.Activity{
			UserID: userID,
			Type:   "habit_completed",
			Payload: map[string]string{
				"habit_id":   habit.ID.String(),
				"habit_name": habit.Name,
				"date":       date.Format("2006-01-02"),
			},
		}
		if actErr := activityRepo.CreateActivity(ctx, activity); actErr != nil {
			return errors.Wrap(actErr, "failed to record activity")
		}

		var advErr error
		completedChallenges, advErr = srv.advanceChallenges(ctx, repoFactory, habit, userID)

		return advErr
	})

	if err != nil {
		srv.log(ctx).Warn("Progress logging failed", slog.Any("habitID", habit.ID), slog.Any("error", err))

		return nil, err
	}

	if firstTimeMet {
		srv.publishProgressEvent(ctx, habit, progress)
	}

	for _, challenge := range completedChallenges {
		srv.notifyChallengeCompleted(ctx, userID, challenge)
	}

	return progress, nil
}

// GetProgress retrieves progress rows for a habit the caller owns.
func (srv *habitService) GetProgress(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]*entity.HabitProgress, error) {
	if _, err := srv.loadOwnedHabit(ctx, userID, habitID); err != nil {
		return nil, err
	}

	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, -1, 0)
	}
	if to.Before(from) {
		return nil, domainerrors.ErrInvalidDates.WrapMessage("progress range end precedes start")
	}

	rows, err := srv.habitRepo.ListProgressByHabit(ctx, habitID, normalizeDate(from), normalizeDate(to))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list progress")
	}

	return rows, nil
}

func (srv *habitService) loadHabit(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := srv.habitRepo.FindHabitByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			return nil, domainerrors.ErrHabitNotFound.WrapMessage("habit lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load habit")
	}

	return habit, nil
}

func (srv *habitService) loadOwnedHabit(ctx context.Context, userID, habitID uuid.UUID) (*entity.Habit, error) {
	habit, err := srv.loadHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("habit belongs to another user")
	}

	return habit, nil
}

// advanceChallenges bumps the caller's progress in every active challenge
// bound to the habit and returns the challenges the caller just completed.
func (srv *habitService) advanceChallenges(ctx context.Context, repoFactory repository.RepositoryFactory, habit *entity.Habit, userID uuid.UUID) ([]*entity.Challenge, error) {
	challengeRepo := repoFactory.NewChallengeRepository()

	challenges, err := challengeRepo.ListActiveChallengesByHabit(ctx, habit.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active challenges for habit")
	}

	var completed []*entity.Challenge
	for _, challenge := range challenges {
		participant, incrErr := challengeRepo.IncrementParticipantProgress(ctx, challenge.ID, userID, 1)
		if incrErr != nil {
			if errors.Is(incrErr, repository.ErrParticipantNotFound) {
				continue
			}

			return nil, errors.Wrap(incrErr, "failed to advance challenge progress")
		}

		if participant.CompletedAt == nil && participant.ProgressCount >= challenge.TargetCount {
			if markErr := challengeRepo.MarkParticipantCompleted(ctx, challenge.ID, userID); markErr != nil {
				return nil, errors.Wrap(markErr, "failed to mark challenge completion")
			}
			completed = append(completed, challenge)
		}
	}

	return completed, nil
}

func (srv *habitService) publishProgressEvent(ctx context.Context, habit *entity.Habit, progress *entity.HabitProgress) {
	event := &service.ProgressEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		UserID:         habit.UserID.String(),
		HabitID:        habit.ID.String(),
		Date:           progress.Date.Format("2006-01-02"),
		CompletedCount: progress.CompletedCount,
		TargetCount:    habit.TargetCount,
	}

	// Best effort: the progress row is already committed, a publish failure
	// only delays achievement processing.
	if err := srv.eventPublisher.PublishProgressEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish progress event", slog.Any("habitID", habit.ID), slog.Any("error", err))
	}
}

func (srv *habitService) notifyChallengeCompleted(ctx context.Context, userID uuid.UUID, challenge *entity.Challenge) {
	_, err := srv.notifications.Notify(ctx, usecase.NotifyInput{
		UserID:  userID,
		Type:    entity.NotificationChallenge,
		Title:   "Challenge complete",
		Message: "You reached the target in " + challenge.Name,
		Data: map[string]string{
			"challenge_id": challenge.ID.String(),
		},
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to send challenge completion notification", slog.Any("challengeID", challenge.ID), slog.Any("error", err))
	}
}

func validateHabitBasics(name string, frequency entity.FrequencyType, customDays []int, reminderTime string) error {
	if name == "" {
		return domainerrors.ErrInvalidInput.WrapMessage("habit name is required")
	}

	switch frequency {
	case entity.FrequencyDaily, entity.FrequencyWeekly:
	case entity.FrequencyCustom:
		if len(customDays) == 0 {
			return domainerrors.ErrInvalidInput.WrapMessage("custom frequency requires at least one weekday")
		}
		for _, day := range customDays {
			if day < 0 || day > 6 {
				return domainerrors.ErrInvalidInput.WrapMessage("custom frequency weekdays must be 0-6")
			}
		}
	default:
		return domainerrors.ErrInvalidInput.WrapMessage("unknown habit frequency")
	}

	if reminderTime != "" {
		if _, err := time.Parse("15:04", reminderTime); err != nil {
			return domainerrors.ErrInvalidTimeFormat.WrapMessage("reminder time must be HH:MM")
		}
	}

	return nil
}

func normalizeDate(t time.Time) time.Time {
	utc := t.UTC()

	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

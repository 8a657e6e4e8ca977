// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "habitude/internal/delivery/context"
	"habitude/internal/domain/entity"
	"habitude/internal/domain/repository"
	"habitude/internal/domain/service"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const completionExperience = 10

// Streak lengths that earn an achievement.
var streakMilestones = []int{7, 30, 100}

// achievementService implements the AchievementUsecase interface. It runs
// inside the worker process and consumes progress events published by the
// API server.
type achievementService struct {
	userRepo      repository.UserRepository
	activityRepo  repository.ActivityRepository
	analyticsRepo repository.AnalyticsRepository
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
	now           func() time.Time
}

// AchievementServiceParams holds dependencies for AchievementService, injected by Fx.
type AchievementServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	ActivityRepo  repository.ActivityRepository
	AnalyticsRepo repository.AnalyticsRepository
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewAchievementService is the constructor for achievementService.
func NewAchievementService(params AchievementServiceParams) usecase.AchievementUsecase {
	return &achievementService{
		userRepo:      params.UserRepo,
		activityRepo:  params.ActivityRepo,
		analyticsRepo: params.AnalyticsRepo,
		notifications: params.Notifications,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *achievementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessProgressEvent awards avatar experience for a completed habit and
// turns streak milestones into achievement notifications.
func (srv *achievementService) ProcessProgressEvent(ctx context.Context, event *service.ProgressEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.Wrap(err, "progress event carries invalid user id")
	}
	habitID, err := uuid.Parse(event.HabitID)
	if err != nil {
		return errors.Wrap(err, "progress event carries invalid habit id")
	}

	srv.log(ctx).Debug("Processing progress event",
		slog.Any("userID", userID),
		slog.Any("habitID", habitID),
		slog.String("date", event.Date))

	if err := srv.awardExperience(ctx, userID); err != nil {
		return err
	}

	return srv.checkStreakMilestones(ctx, userID, habitID)
}

// awardExperience grants flat experience for the completion and levels the
// avatar up when the threshold for its level is crossed.
func (srv *achievementService) awardExperience(ctx context.Context, userID uuid.UUID) error {
	avatar, err := srv.userRepo.FindAvatar(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrAvatarNotFound) {
			return errors.Wrap(err, "failed to load avatar")
		}
		avatar = entity.DefaultAvatar(userID)
	}

	avatar.Experience += completionExperience
	for avatar.Experience >= avatar.Level*100 {
		avatar.Experience -= avatar.Level * 100
		avatar.Level++
	}
	avatar.Mood = clamp(avatar.Mood+5, 0, 100)
	avatar.Energy = clamp(avatar.Energy+2, 0, 100)

	if err := srv.userRepo.SaveAvatar(ctx, avatar); err != nil {
		return errors.Wrap(err, "failed to save avatar after experience award")
	}

	return nil
}

// checkStreakMilestones notifies the user when the habit's current streak
// lands exactly on a milestone, so each milestone fires once per streak.
func (srv *achievementService) checkStreakMilestones(ctx context.Context, userID, habitID uuid.UUID) error {
	dates, err := srv.analyticsRepo.ListCompletionDates(ctx, habitID)
	if err != nil {
		return errors.Wrap(err, "failed to list completion dates for milestone check")
	}

	current, _ := computeStreaks(dates, normalizeDate(srv.now()))

	for _, milestone := range streakMilestones {
		if current != milestone {
			continue
		}

		activity := &entity.Activity{
			UserID: userID,
			Type:   "achievement",
			Payload: map[string]string{
				"habit_id": habitID.String(),
				"streak":   fmt.Sprintf("%d", milestone),
			},
		}
		if err := srv.activityRepo.CreateActivity(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to record achievement activity")
		}

		_, notifyErr := srv.notifications.Notify(ctx, usecase.NotifyInput{
			UserID:  userID,
			Type:    entity.NotificationAchievement,
			Title:   "Achievement unlocked",
			Message: fmt.Sprintf("%d-day streak reached!", milestone),
			Data: map[string]string{
				"habit_id": habitID.String(),
				"streak":   fmt.Sprintf("%d", milestone),
			},
		})
		if notifyErr != nil {
			srv.log(ctx).Warn("Failed to send achievement notification", slog.Any("userID", userID), slog.Any("error", notifyErr))
		}
	}

	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

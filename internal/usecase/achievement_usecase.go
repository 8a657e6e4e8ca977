// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"habitude/internal/domain/service"
)

// AchievementUsecase defines the interface for asynchronous progress event
// processing. It runs in the worker, not the API server.
type AchievementUsecase interface {
	// ProcessProgressEvent awards avatar experience for a completed habit,
	// detects streak milestones, and notifies the user of achievements.
	ProcessProgressEvent(ctx context.Context, event *service.ProgressEvent) error
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityRepository defines the interface for the append-only activity feed.
type ActivityRepository interface {
	// CreateActivity appends a feed entry.
	CreateActivity(ctx context.Context, activity *entity.Activity) error

	// ListFeedForUser retrieves feed entries visible to the viewer: entries
	// from accepted friends whose privacy settings expose activity, plus the
	// viewer's own. The visibility join happens in SQL so hidden rows never
	// leave the database.
	ListFeedForUser(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]*entity.Activity, error)

	// ListActivitiesByUser retrieves one user's own entries, newest first.
	// Visibility toward the caller is the service layer's concern.
	ListActivitiesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Activity, error)
}

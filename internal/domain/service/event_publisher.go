package service

import (
	"context"
)

// ProgressEvent represents a habit completion to be processed by the
// achievement worker.
type ProgressEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	UserID         string `json:"user_id"`
	HabitID        string `json:"habit_id"`
	Date           string `json:"date"` // YYYY-MM-DD
	CompletedCount int    `json:"completed_count"`
	TargetCount    int    `json:"target_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProgressEvent publishes a habit progress event for async processing
	PublishProgressEvent(ctx context.Context, event *ProgressEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

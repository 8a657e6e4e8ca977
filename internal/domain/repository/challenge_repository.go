// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for challenge persistence.
var (
	// ErrChallengeNotFound is returned when a challenge is not found.
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrParticipantNotFound is returned when a user is not a participant of a challenge.
	ErrParticipantNotFound = errors.New("challenge participant not found")
	// ErrDuplicateParticipant is returned when the (challenge_id, user_id)
	// unique index rejects a second join.
	ErrDuplicateParticipant = errors.New("already a challenge participant")
)

// ChallengeRepository defines the interface for challenge persistence.
type ChallengeRepository interface {
	// CreateChallenge persists a new challenge.
	CreateChallenge(ctx context.Context, challenge *entity.Challenge) error

	// FindChallengeByID retrieves a challenge by its unique ID.
	FindChallengeByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)

	// ListChallengesByUser retrieves all challenges the user participates in.
	ListChallengesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error)

	// ListActiveChallengesByHabit retrieves challenges bound to a habit that
	// are currently in the active state.
	ListActiveChallengesByHabit(ctx context.Context, habitID uuid.UUID) ([]*entity.Challenge, error)

	// UpdateChallengeStatus transitions a challenge to a new status.
	UpdateChallengeStatus(ctx context.Context, id uuid.UUID, status entity.ChallengeStatus) error

	// AddParticipant persists a challenge membership. A duplicate join
	// surfaces as ErrDuplicateParticipant via the pair unique index.
	AddParticipant(ctx context.Context, participant *entity.ChallengeParticipant) error

	// FindParticipant retrieves one user's membership row for a challenge.
	FindParticipant(ctx context.Context, challengeID, userID uuid.UUID) (*entity.ChallengeParticipant, error)

	// ListParticipants retrieves all membership rows for a challenge,
	// ordered by progress descending for leaderboard display.
	ListParticipants(ctx context.Context, challengeID uuid.UUID) ([]*entity.ChallengeParticipant, error)

	// IncrementParticipantProgress atomically adds delta to a participant's
	// progress counter and returns the updated row.
	IncrementParticipantProgress(ctx context.Context, challengeID, userID uuid.UUID, delta int) (*entity.ChallengeParticipant, error)

	// MarkParticipantCompleted stamps the participant's completion time if not already set.
	MarkParticipantCompleted(ctx context.Context, challengeID, userID uuid.UUID) error

	// RemoveParticipant deletes a user's membership row. A missing row
	// surfaces as ErrParticipantNotFound.
	RemoveParticipant(ctx context.Context, challengeID, userID uuid.UUID) error
}

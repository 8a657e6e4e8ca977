package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeStatus is the lifecycle state of a challenge.
// There is no cancelled state; challenges only move forward to completed.
type ChallengeStatus string

const (
	ChallengePending   ChallengeStatus = "pending"
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
)

// Challenge is a competition over one habit between several users.
// EndDate must be strictly after StartDate.
type Challenge struct {
	ID          uuid.UUID
	CreatorID   uuid.UUID
	HabitID     uuid.UUID
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	TargetCount int
	Status      ChallengeStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChallengeParticipant tracks one user's progress in one challenge.
// The (ChallengeID, UserID) pair is unique. ProgressCount only ever grows.
type ChallengeParticipant struct {
	ID            uuid.UUID
	ChallengeID   uuid.UUID
	UserID        uuid.UUID
	ProgressCount int
	CompletedAt   *time.Time
	JoinedAt      time.Time
	UpdatedAt     time.Time
}

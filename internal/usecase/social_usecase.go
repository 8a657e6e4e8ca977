// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateChallengeInput defines the data required to create a challenge.
type CreateChallengeInput struct {
	HabitID        uuid.UUID
	Name           string
	Description    string
	StartDate      time.Time
	EndDate        time.Time
	TargetCount    int
	ParticipantIDs []uuid.UUID
}

// ChallengeDetail bundles a challenge with its leaderboard.
type ChallengeDetail struct {
	Challenge    *entity.Challenge
	Participants []*entity.ChallengeParticipant
}

// SocialUsecase defines the interface for friendship, block, challenge and
// activity feed operations.
type SocialUsecase interface {
	// SendFriendRequest creates a pending friendship toward the recipient.
	// Requests to blockers, blockees, and users who disallow requests fail;
	// at most one request can exist per pair in either direction.
	SendFriendRequest(ctx context.Context, userID, recipientID uuid.UUID) (*entity.Friendship, error)

	// RespondFriendRequest accepts or rejects a pending request addressed to
	// the caller. Rejection removes the row so a new request can be sent later.
	RespondFriendRequest(ctx context.Context, userID, requestID uuid.UUID, accept bool) error

	// RemoveFriend deletes an accepted friendship between the caller and friend.
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error

	// ListFriends retrieves the caller's accepted friends.
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error)

	// ListFriendRequests retrieves pending requests addressed to the caller.
	ListFriendRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)

	// BlockUser blocks another user, severing any friendship in the same transaction.
	BlockUser(ctx context.Context, userID, blockedID uuid.UUID) error

	// UnblockUser removes a block the caller placed.
	UnblockUser(ctx context.Context, userID, blockedID uuid.UUID) error

	// ListBlocked retrieves the users the caller has blocked.
	ListBlocked(ctx context.Context, userID uuid.UUID) ([]*entity.Block, error)

	// GenerateInviteQR renders a QR code other users can scan to friend the caller.
	GenerateInviteQR(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// AcceptInviteQR turns scanned invite data into a friend request from the caller.
	AcceptInviteQR(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Friendship, error)

	// CreateChallenge creates a challenge on one of the caller's habits and
	// invites the listed participants, all within one transaction.
	CreateChallenge(ctx context.Context, userID uuid.UUID, input CreateChallengeInput) (*entity.Challenge, error)

	// JoinChallenge adds the caller to a challenge they were not yet part of.
	JoinChallenge(ctx context.Context, userID, challengeID uuid.UUID) error

	// LeaveChallenge removes the caller from a challenge. Leaving a
	// completed challenge is not allowed.
	LeaveChallenge(ctx context.Context, userID, challengeID uuid.UUID) error

	// UpdateChallengeProgress adds increment to the caller's progress
	// counter. Reaching the challenge target completes the caller's
	// participation and the challenge itself.
	UpdateChallengeProgress(ctx context.Context, userID, challengeID uuid.UUID, increment int) (*entity.ChallengeParticipant, error)

	// GetChallenge retrieves a challenge with its leaderboard. Only
	// participants and the creator may view it.
	GetChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*ChallengeDetail, error)

	// ListChallenges retrieves the challenges the caller participates in.
	ListChallenges(ctx context.Context, userID uuid.UUID) ([]*entity.Challenge, error)

	// GetActivityFeed retrieves feed entries visible to the caller.
	GetActivityFeed(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Activity, error)
}

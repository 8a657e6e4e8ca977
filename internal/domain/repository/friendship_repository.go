// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for friendship persistence.
var (
	// ErrFriendshipNotFound is returned when a friendship or friend request is not found.
	ErrFriendshipNotFound = errors.New("friendship not found")
	// ErrDuplicateFriendship is returned when the symmetric pair index
	// rejects a second request between the same two users.
	ErrDuplicateFriendship = errors.New("friendship already exists")
	// ErrBlockNotFound is returned when a block relation is not found.
	ErrBlockNotFound = errors.New("block not found")
	// ErrDuplicateBlock is returned when the (blocker, blocked) unique index rejects an insert.
	ErrDuplicateBlock = errors.New("block already exists")
)

// FriendshipRepository defines the interface for friendship and block persistence.
type FriendshipRepository interface {
	// CreateFriendRequest persists a pending friendship. The unique index on
	// the ordered user pair guarantees at most one row per pair regardless of
	// direction; a duplicate surfaces as ErrDuplicateFriendship.
	CreateFriendRequest(ctx context.Context, friendship *entity.Friendship) error

	// FindFriendshipByID retrieves a friendship row by its unique ID.
	FindFriendshipByID(ctx context.Context, id uuid.UUID) (*entity.Friendship, error)

	// FindFriendshipBetween retrieves the friendship row between two users,
	// in either direction.
	FindFriendshipBetween(ctx context.Context, userID, otherID uuid.UUID) (*entity.Friendship, error)

	// UpdateFriendshipStatus transitions a friendship to a new status.
	UpdateFriendshipStatus(ctx context.Context, id uuid.UUID, status entity.FriendshipStatus) error

	// DeleteFriendship removes a friendship row entirely (unfriend, or reject cleanup).
	DeleteFriendship(ctx context.Context, id uuid.UUID) error

	// ListFriends retrieves the profiles of all accepted friends of a user.
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error)

	// ListPendingRequests retrieves incoming pending requests addressed to a user.
	ListPendingRequests(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)

	// CountFriends returns the number of accepted friendships a user has.
	CountFriends(ctx context.Context, userID uuid.UUID) (int, error)

	// CreateBlock persists a block relation. A duplicate surfaces as
	// ErrDuplicateBlock via the (blocker, blocked) unique index.
	CreateBlock(ctx context.Context, block *entity.Block) error

	// DeleteBlock removes a block relation.
	DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error

	// IsBlocked reports whether a block exists between two users in either direction.
	IsBlocked(ctx context.Context, userID, otherID uuid.UUID) (bool, error)

	// ListBlocked retrieves the users blocked by the given user.
	ListBlocked(ctx context.Context, blockerID uuid.UUID) ([]*entity.Block, error)
}

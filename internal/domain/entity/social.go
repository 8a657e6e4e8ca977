package entity

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipStatus is the state of a directed friendship edge.
type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipRejected FriendshipStatus = "rejected"
)

// Friendship is a directed edge from the requester (UserID) to the
// recipient (FriendID). At most one edge exists per unordered pair;
// reads OR-match both orderings for symmetric semantics.
type Friendship struct {
	ID        uuid.UUID
	UserID    uuid.UUID // Requester.
	FriendID  uuid.UUID // Recipient; only this side may accept or reject.
	Status    FriendshipStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Block is a directed edge. A block in either direction vetoes new friend
// requests, and creating one removes any existing friendship.
type Block struct {
	ID        uuid.UUID
	BlockerID uuid.UUID
	BlockedID uuid.UUID
	CreatedAt time.Time
}

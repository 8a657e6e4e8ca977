package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipModel mirrors the 'friendships' table. One directed edge per
// pair; reads OR-match both orderings.
type FriendshipModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair"`
	FriendID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair"`
	Status    string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "friendships"
}

// BlockModel mirrors the 'blocks' table.
type BlockModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BlockerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blocks_pair"`
	BlockedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blocks_pair"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlockModel) TableName() string {
	return "blocks"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeModel mirrors the 'challenges' table.
type ChallengeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CreatorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	HabitID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	TargetCount int       `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Participants []ChallengeParticipantModel `gorm:"foreignKey:ChallengeID"`
}

// TableName explicitly sets the table name for GORM.
func (ChallengeModel) TableName() string {
	return "challenges"
}

// ChallengeParticipantModel mirrors the 'challenge_participants' table.
// The (challenge_id, user_id) unique index makes double-joining a
// constraint violation.
type ChallengeParticipantModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ChallengeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_participants_pair"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_participants_pair"`
	ProgressCount int       `gorm:"not null;default:0"`
	CompletedAt   *time.Time
	JoinedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChallengeParticipantModel) TableName() string {
	return "challenge_participants"
}

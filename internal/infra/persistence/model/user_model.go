package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	Profile         *ProfileModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Avatar          *AvatarModel          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. The username unique index is
// the single source of truth for handle uniqueness.
type ProfileModel struct {
	UserID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username            string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_profiles_username"`
	DisplayName         string    `gorm:"type:varchar(100)"`
	AvatarURL           string    `gorm:"type:varchar(512)"`
	Bio                 string    `gorm:"type:text"`
	ProfileVisibility   string    `gorm:"type:varchar(20);not null;default:'public'"`
	ShowActivity        bool      `gorm:"not null;default:true"`
	AllowFriendRequests bool      `gorm:"not null;default:true"`
	ShowStats           bool      `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// AvatarModel mirrors the 'avatars' table, 1:1 with users.
type AvatarModel struct {
	UserID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	EncouragementStyle     string    `gorm:"type:varchar(50);not null"`
	CommunicationFrequency string    `gorm:"type:varchar(50);not null"`
	HumorLevel             int       `gorm:"not null"`
	Formality              int       `gorm:"not null"`
	Body                   string    `gorm:"type:varchar(50);not null"`
	Skin                   string    `gorm:"type:varchar(50);not null"`
	Hair                   string    `gorm:"type:varchar(50);not null"`
	Outfit                 string    `gorm:"type:varchar(50);not null"`
	Accessories            string    `gorm:"type:varchar(100)"`
	Level                  int       `gorm:"not null;default:1"`
	Experience             int       `gorm:"not null;default:0"`
	Mood                   int       `gorm:"not null"`
	Energy                 int       `gorm:"not null"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (AvatarModel) TableName() string {
	return "avatars"
}

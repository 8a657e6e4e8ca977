package entity

import (
	"time"

	"github.com/google/uuid"
)

// Avatar is the user's companion character. One per user, created lazily
// with fixed defaults the first time the profile is fetched.
type Avatar struct {
	UserID     uuid.UUID
	Traits     AvatarTraits
	Appearance AvatarAppearance
	Level      int
	Experience int
	Mood       int // 0-100
	Energy     int // 0-100
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AvatarTraits tunes how the avatar communicates.
type AvatarTraits struct {
	EncouragementStyle     string
	CommunicationFrequency string
	HumorLevel             int // 0-10
	Formality              int // 0-10
}

// AvatarAppearance describes the rendered look of the avatar.
type AvatarAppearance struct {
	Body        string
	Skin        string
	Hair        string
	Outfit      string
	Accessories string
}

// DefaultAvatar returns the avatar bootstrapped for a user who has none yet.
func DefaultAvatar(userID uuid.UUID) *Avatar {
	return &Avatar{
		UserID: userID,
		Traits: AvatarTraits{
			EncouragementStyle:     "supportive",
			CommunicationFrequency: "daily",
			HumorLevel:             5,
			Formality:              3,
		},
		Appearance: AvatarAppearance{
			Body:   "default",
			Skin:   "default",
			Hair:   "default",
			Outfit: "casual",
		},
		Level:      1,
		Experience: 0,
		Mood:       80,
		Energy:     100,
	}
}

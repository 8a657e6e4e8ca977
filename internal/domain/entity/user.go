// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It contains only the fundamental identity information; everything
// user-facing lives on the Profile.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, used as the login identifier.
	Profile   *Profile  // The public-facing profile. Nil until the user completes onboarding.
	Avatar    *Avatar   // The companion avatar. Nil until bootstrapped on first profile read.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileVisibility controls who may see a profile.
type ProfileVisibility string

const (
	VisibilityPublic  ProfileVisibility = "public"
	VisibilityFriends ProfileVisibility = "friends"
	VisibilityPrivate ProfileVisibility = "private"
)

// Profile holds the public-facing identity of a user.
type Profile struct {
	UserID      uuid.UUID // Foreign key to the core User entity.
	Username    string    // Unique handle, enforced by a database unique index.
	DisplayName string
	AvatarURL   string
	Bio         string
	Privacy     PrivacySettings
	UpdatedAt   time.Time
}

// PrivacySettings gates profile discovery, activity feeds, and friend requests.
type PrivacySettings struct {
	ProfileVisibility   ProfileVisibility
	ShowActivity        bool
	AllowFriendRequests bool
	ShowStats           bool
}

// DefaultPrivacySettings returns the settings applied to profiles created at sign-up.
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		ProfileVisibility:   VisibilityPublic,
		ShowActivity:        true,
		AllowFriendRequests: true,
		ShowStats:           true,
	}
}

// UserStats aggregates per-user counters shown on the profile screen.
type UserStats struct {
	TotalHabits       int
	TotalAchievements int
	TotalFriends      int
	CurrentStreak     int
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the closed set of notification categories. Each
// maps to exactly one preference toggle; see PreferenceFor.
type NotificationType string

const (
	NotificationFriendRequest NotificationType = "friend_request"
	NotificationHabitReminder NotificationType = "habit_reminder"
	NotificationAchievement   NotificationType = "achievement"
	NotificationSocial        NotificationType = "social"
	NotificationChallenge     NotificationType = "challenge"
	NotificationSystem        NotificationType = "system"
)

// Notification is a per-user inbox entry. Created as a side effect by any
// service; mutated only to flip the read flag; deleted individually.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	Data      map[string]string // Opaque payload forwarded to the client.
	Read      bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

// NotificationPreferences is 1:1 with a user, default-created on first
// read. Quiet hours are "HH:MM" strings; an empty pair disables the window.
type NotificationPreferences struct {
	UserID          uuid.UUID
	PushEnabled     bool
	FriendRequests  bool
	HabitReminders  bool
	Achievements    bool
	SocialActivity  bool
	Challenges      bool
	QuietHoursStart string
	QuietHoursEnd   string
	UpdatedAt       time.Time
}

// DefaultNotificationPreferences returns the bundle written on first access.
func DefaultNotificationPreferences(userID uuid.UUID) *NotificationPreferences {
	return &NotificationPreferences{
		UserID:         userID,
		PushEnabled:    true,
		FriendRequests: true,
		HabitReminders: true,
		Achievements:   true,
		SocialActivity: true,
		Challenges:     true,
	}
}

// PreferenceFor reports whether prefs enable the given notification type.
// System notifications are always delivered.
func (p *NotificationPreferences) PreferenceFor(t NotificationType) bool {
	switch t {
	case NotificationFriendRequest:
		return p.FriendRequests
	case NotificationHabitReminder:
		return p.HabitReminders
	case NotificationAchievement:
		return p.Achievements
	case NotificationSocial:
		return p.SocialActivity
	case NotificationChallenge:
		return p.Challenges
	case NotificationSystem:
		return true
	default:
		return true
	}
}

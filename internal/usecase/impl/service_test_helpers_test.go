package impl

import (
	"io"
	"log/slog"
	"time"

	"habitude/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:         12,
			MaxActiveSessions:  maxActiveSessions,
			MaxLoginAttempts:   5,
			LoginAttemptWindow: 15 * time.Minute,
			ResetCooldown:      time.Minute,
		},
		Habits: &config.HabitsConfig{
			MaxPerUser: 3,
		},
	}
}

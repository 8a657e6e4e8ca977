// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"habitude/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create a new account.
type SignUpInput struct {
	Email    string
	Password string
	Username string
}

// LoginInput defines the data required for a user to log in.
// MFACode is required only for accounts with MFA enabled.
type LoginInput struct {
	Email    string
	Password string
	MFACode  string
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput returns the session tokens and user after a successful
// sign-up, login, or refresh.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// MFAEnrollmentOutput returns the secret and provisioning URL produced by
// MFA enrollment. The secret stays pending until the first code is verified.
type MFAEnrollmentOutput struct {
	Secret string
	URL    string
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp creates the user, credential, profile, avatar and notification
	// preferences atomically and opens the first session.
	SignUp(ctx context.Context, input SignUpInput) (*AuthOutput, error)

	// Login authenticates an email/password pair, enforcing the failed
	// attempt limit and the account's MFA requirement.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// LoginWithGoogle authenticates a Google ID token, creating the account
	// on first sign-in.
	LoginWithGoogle(ctx context.Context, idToken string) (*AuthOutput, error)

	// RefreshSession rotates a refresh token into a new token pair.
	RefreshSession(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout ends the session identified by the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// LogoutAll ends every session of the user.
	LogoutAll(ctx context.Context, userID uuid.UUID) error

	// RequestPasswordReset starts a reset flow for the email, subject to a
	// per-email cooldown. It does not reveal whether the email is registered.
	RequestPasswordReset(ctx context.Context, email string) error

	// ChangePassword rotates the password after verifying the current one,
	// and revokes all other sessions.
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error

	// EnrollMFA generates a pending TOTP secret for the account.
	EnrollMFA(ctx context.Context, userID uuid.UUID) (*MFAEnrollmentOutput, error)

	// ActivateMFA verifies the first code against the pending secret and
	// turns enforcement on.
	ActivateMFA(ctx context.Context, userID uuid.UUID, code string) error

	// DisableMFA verifies a current code and turns enforcement off.
	DisableMFA(ctx context.Context, userID uuid.UUID, code string) error
}

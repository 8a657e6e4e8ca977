// Package errors defines the application error taxonomy. Every service
// failure is expressed as an AppError carrying a stable business code
// (for client-side branching) and the HTTP status the delivery layer maps
// it to. Messages are human-readable and not guaranteed stable.
package errors

import (
	"net/http"

	"habitude/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error with detailed information attached.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication and session errors
	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Email address is not valid",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"Password must be at least 8 characters",
		"",
	)

	ErrEmailExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many attempts, try again later",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Session has expired",
		"",
	)

	ErrSignupFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGNUP_FAILED",
		"Account could not be created",
		"",
	)

	ErrOAuth = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_ERROR",
		"OAuth authentication failed",
		"",
	)

	ErrInvalidMFACode = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_MFA_CODE",
		"Verification code is invalid",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Access control errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Resource absence errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrHabitNotFound = NewBaseError(
		http.StatusNotFound,
		"HABIT_NOT_FOUND",
		"Habit not found",
		"",
	)

	ErrChallengeNotFound = NewBaseError(
		http.StatusNotFound,
		"CHALLENGE_NOT_FOUND",
		"Challenge not found",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrFriendRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"FRIEND_REQUEST_NOT_FOUND",
		"Friend request not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// Validation errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Input validation failed",
		"",
	)

	ErrInvalidDates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATES",
		"End date must be after start date",
		"",
	)

	ErrInvalidTimeFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIME_FORMAT",
		"Time must be in HH:MM format",
		"",
	)

	ErrNoParticipants = NewBaseError(
		http.StatusBadRequest,
		"NO_PARTICIPANTS",
		"At least one participant is required",
		"",
	)

	// Conflict errors
	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"This username is already taken",
		"",
	)

	ErrRequestExists = NewBaseError(
		http.StatusConflict,
		"REQUEST_EXISTS",
		"A friend request already exists between these users",
		"",
	)

	ErrAlreadyBlocked = NewBaseError(
		http.StatusConflict,
		"ALREADY_BLOCKED",
		"User is already blocked",
		"",
	)

	ErrAlreadyParticipating = NewBaseError(
		http.StatusConflict,
		"ALREADY_PARTICIPATING",
		"Already participating in this challenge",
		"",
	)

	ErrHabitLimitReached = NewBaseError(
		http.StatusConflict,
		"HABIT_LIMIT_REACHED",
		"Habit limit reached",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	// Notification dispatch errors
	ErrNotificationsDisabled = NewBaseError(
		http.StatusUnprocessableEntity,
		"NOTIFICATIONS_DISABLED",
		"Recipient has disabled this notification type",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface. It wraps the raw driver error as an opaque
// upstream failure.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

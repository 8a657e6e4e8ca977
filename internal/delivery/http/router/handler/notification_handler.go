package handler

import (
	"log/slog"
	"net/http"

	"habitude/internal/delivery/http/response"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for inbox, preference and device handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListNotifications retrieves the caller's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	limit, offset, err := parsePagination(c, 20, 100)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	onlyUnread := c.QueryParam("unread") == "true"

	notifications, err := h.uc.ListNotifications(c.Request().Context(), userID, onlyUnread, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// GetUnreadCount returns the caller's unread notification count.
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	count, err := h.uc.GetUnreadCount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"unread": count}, "Unread count retrieved successfully")
}

// MarkRead marks one of the caller's notifications as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead marks all of the caller's notifications as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	if err := h.uc.MarkAllRead(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All notifications marked as read")
}

// DeleteNotification removes one of the caller's notifications.
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	if err := h.uc.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

// GetPreferences retrieves the caller's notification preferences.
func (h *NotificationHandler) GetPreferences(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	prefs, err := h.uc.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences retrieved successfully")
}

type updatePreferencesRequest struct {
	PushEnabled     *bool   `json:"push_enabled"`
	FriendRequests  *bool   `json:"friend_requests"`
	HabitReminders  *bool   `json:"habit_reminders"`
	Achievements    *bool   `json:"achievements"`
	SocialActivity  *bool   `json:"social_activity"`
	Challenges      *bool   `json:"challenges"`
	QuietHoursStart *string `json:"quiet_hours_start"`
	QuietHoursEnd   *string `json:"quiet_hours_end"`
}

// UpdatePreferences applies partial preference changes.
func (h *NotificationHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req updatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	prefs, err := h.uc.UpdatePreferences(c.Request().Context(), userID, usecase.UpdatePreferencesInput{
		PushEnabled:     req.PushEnabled,
		FriendRequests:  req.FriendRequests,
		HabitReminders:  req.HabitReminders,
		Achievements:    req.Achievements,
		SocialActivity:  req.SocialActivity,
		Challenges:      req.Challenges,
		QuietHoursStart: req.QuietHoursStart,
		QuietHoursEnd:   req.QuietHoursEnd,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences updated successfully")
}

type registerDeviceRequest struct {
	Platform   string `json:"platform" validate:"required,oneof=ios android web"`
	DeviceName string `json:"device_name" validate:"max=100"`
	PushToken  string `json:"push_token" validate:"required"`
}

// RegisterDevice registers or refreshes a push device for the caller.
func (h *NotificationHandler) RegisterDevice(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), userID, usecase.RegisterDeviceInput{
		Platform:   req.Platform,
		DeviceName: req.DeviceName,
		PushToken:  req.PushToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// ListDevices retrieves the caller's active devices.
func (h *NotificationHandler) ListDevices(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	devices, err := h.uc.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

// DeactivateDevice deactivates one of the caller's devices.
func (h *NotificationHandler) DeactivateDevice(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device ID")
	}

	if err := h.uc.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deactivated")
}

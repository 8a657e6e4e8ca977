package handler

import (
	"log/slog"
	"net/http"
	"time"

	"habitude/internal/delivery/http/response"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SocialHandler holds dependencies for friendship, block, challenge and
// activity feed handlers.
type SocialHandler struct {
	uc     usecase.SocialUsecase
	logger *slog.Logger
}

// NewSocialHandler is the constructor for SocialHandler, injected by Fx.
func NewSocialHandler(uc usecase.SocialUsecase, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{
		uc:     uc,
		logger: logger,
	}
}

type friendRequestRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
}

// SendFriendRequest creates a pending friendship toward the recipient.
func (h *SocialHandler) SendFriendRequest(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req friendRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend request input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Recipient ID must be a valid UUID")
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Recipient ID must be a valid UUID")
	}

	friendship, err := h.uc.SendFriendRequest(c.Request().Context(), userID, recipientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, friendship, "Friend request sent")
}

type respondFriendRequestRequest struct {
	Accept bool `json:"accept"`
}

// RespondFriendRequest accepts or rejects a pending request addressed to the caller.
func (h *SocialHandler) RespondFriendRequest(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	var req respondFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := h.uc.RespondFriendRequest(c.Request().Context(), userID, requestID, req.Accept); err != nil {
		return errors.WithStack(err)
	}

	message := "Friend request rejected"
	if req.Accept {
		message = "Friend request accepted"
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// RemoveFriend deletes an accepted friendship.
func (h *SocialHandler) RemoveFriend(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid friend ID")
	}

	if err := h.uc.RemoveFriend(c.Request().Context(), userID, friendID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Friend removed")
}

// ListFriends retrieves the caller's accepted friends.
func (h *SocialHandler) ListFriends(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	friends, err := h.uc.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, friends, "Friends retrieved successfully")
}

// ListFriendRequests retrieves pending requests addressed to the caller.
func (h *SocialHandler) ListFriendRequests(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	requests, err := h.uc.ListFriendRequests(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Friend requests retrieved successfully")
}

// BlockUser blocks another user, severing any friendship.
func (h *SocialHandler) BlockUser(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	blockedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.BlockUser(c.Request().Context(), userID, blockedID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User blocked")
}

// UnblockUser removes a block the caller placed.
func (h *SocialHandler) UnblockUser(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	blockedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if err := h.uc.UnblockUser(c.Request().Context(), userID, blockedID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User unblocked")
}

// ListBlocked retrieves the users the caller has blocked.
func (h *SocialHandler) ListBlocked(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	blocked, err := h.uc.ListBlocked(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blocked, "Blocked users retrieved successfully")
}

// GenerateInviteQR renders a QR code other users can scan to friend the caller.
func (h *SocialHandler) GenerateInviteQR(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	png, err := h.uc.GenerateInviteQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type acceptInviteRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// AcceptInviteQR turns scanned invite data into a friend request from the caller.
func (h *SocialHandler) AcceptInviteQR(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req acceptInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "QR data is required")
	}

	friendship, err := h.uc.AcceptInviteQR(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, friendship, "Friend request sent")
}

type createChallengeRequest struct {
	HabitID        string   `json:"habit_id" validate:"required,uuid"`
	Name           string   `json:"name" validate:"required,max=100"`
	Description    string   `json:"description" validate:"max=500"`
	StartDate      string   `json:"start_date" validate:"required"`
	EndDate        string   `json:"end_date" validate:"required"`
	TargetCount    int      `json:"target_count" validate:"required,min=1"`
	ParticipantIDs []string `json:"participant_ids" validate:"required,min=1,dive,uuid"`
}

// CreateChallenge creates a challenge on one of the caller's habits.
func (h *SocialHandler) CreateChallenge(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req createChallengeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid challenge input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	habitID, err := uuid.Parse(req.HabitID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Habit ID must be a valid UUID")
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Start date must be in YYYY-MM-DD format")
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "End date must be in YYYY-MM-DD format")
	}

	participantIDs := make([]uuid.UUID, 0, len(req.ParticipantIDs))
	for _, idStr := range req.ParticipantIDs {
		id, parseErr := uuid.Parse(idStr)
		if parseErr != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Participant IDs must be valid UUIDs")
		}
		participantIDs = append(participantIDs, id)
	}

	challenge, err := h.uc.CreateChallenge(c.Request().Context(), userID, usecase.CreateChallengeInput{
		HabitID:        habitID,
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      startDate,
		EndDate:        endDate,
		TargetCount:    req.TargetCount,
		ParticipantIDs: participantIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, challenge, "Challenge created successfully")
}

// JoinChallenge adds the caller to a challenge.
func (h *SocialHandler) JoinChallenge(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid challenge ID")
	}

	if err := h.uc.JoinChallenge(c.Request().Context(), userID, challengeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Joined challenge")
}

// LeaveChallenge removes the caller from a challenge.
func (h *SocialHandler) LeaveChallenge(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid challenge ID")
	}

	if err := h.uc.LeaveChallenge(c.Request().Context(), userID, challengeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Left challenge")
}

type challengeProgressRequest struct {
	Increment int `json:"increment" validate:"required,min=1"`
}

// UpdateChallengeProgress adds to the caller's progress in a challenge.
func (h *SocialHandler) UpdateChallengeProgress(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid challenge ID")
	}

	var req challengeProgressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid progress input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Increment must be at least 1")
	}

	participant, err := h.uc.UpdateChallengeProgress(c.Request().Context(), userID, challengeID, req.Increment)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, participant, "Challenge progress updated")
}

// GetChallenge retrieves a challenge with its leaderboard.
func (h *SocialHandler) GetChallenge(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid challenge ID")
	}

	detail, err := h.uc.GetChallenge(c.Request().Context(), userID, challengeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Challenge retrieved successfully")
}

// ListChallenges retrieves the challenges the caller participates in.
func (h *SocialHandler) ListChallenges(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	challenges, err := h.uc.ListChallenges(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, challenges, "Challenges retrieved successfully")
}

// GetActivityFeed retrieves feed entries visible to the caller.
func (h *SocialHandler) GetActivityFeed(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	limit, offset, err := parsePagination(c, 20, 100)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	feed, err := h.uc.GetActivityFeed(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feed, "Activity feed retrieved successfully")
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"habitude/internal/delivery/http/response"
	"habitude/internal/domain/entity"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile, avatar and privacy handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile retrieves a profile as seen by the caller. With no id parameter
// it returns the caller's own profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	viewerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	targetID := viewerID
	if idParam := c.Param("id"); idParam != "" {
		parsed, err := uuid.Parse(idParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
		}
		targetID = parsed
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), viewerID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

type updateProfileRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=3,max=30"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,url"`
	Bio         *string `json:"bio" validate:"omitempty,max=500"`
}

// UpdateProfile applies partial changes to the caller's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
		Bio:         req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

type updatePrivacyRequest struct {
	ProfileVisibility   string `json:"profile_visibility" validate:"required,oneof=public friends private"`
	ShowActivity        bool   `json:"show_activity"`
	AllowFriendRequests bool   `json:"allow_friend_requests"`
	ShowStats           bool   `json:"show_stats"`
}

// UpdatePrivacy replaces the caller's privacy settings.
func (h *UserHandler) UpdatePrivacy(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req updatePrivacyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid privacy input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	err := h.uc.UpdatePrivacy(c.Request().Context(), userID, entity.PrivacySettings{
		ProfileVisibility:   entity.ProfileVisibility(req.ProfileVisibility),
		ShowActivity:        req.ShowActivity,
		AllowFriendRequests: req.AllowFriendRequests,
		ShowStats:           req.ShowStats,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Privacy settings updated successfully")
}

// GetAvatar retrieves the caller's avatar, bootstrapping the default one on
// first access.
func (h *UserHandler) GetAvatar(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	avatar, err := h.uc.GetAvatar(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, avatar, "Avatar retrieved successfully")
}

type updateAvatarTraitsRequest struct {
	EncouragementStyle     string `json:"encouragement_style" validate:"required"`
	CommunicationFrequency string `json:"communication_frequency" validate:"required"`
	HumorLevel             int    `json:"humor_level" validate:"min=0,max=10"`
	Formality              int    `json:"formality" validate:"min=0,max=10"`
}

// UpdateAvatarTraits replaces the avatar's personality traits.
func (h *UserHandler) UpdateAvatarTraits(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req updateAvatarTraitsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid avatar traits input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	avatar, err := h.uc.UpdateAvatarTraits(c.Request().Context(), userID, entity.AvatarTraits{
		EncouragementStyle:     req.EncouragementStyle,
		CommunicationFrequency: req.CommunicationFrequency,
		HumorLevel:             req.HumorLevel,
		Formality:              req.Formality,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, avatar, "Avatar traits updated successfully")
}

type updateAvatarAppearanceRequest struct {
	Body        string `json:"body"`
	Skin        string `json:"skin"`
	Hair        string `json:"hair"`
	Outfit      string `json:"outfit"`
	Accessories string `json:"accessories"`
}

// UpdateAvatarAppearance replaces the avatar's appearance.
func (h *UserHandler) UpdateAvatarAppearance(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req updateAvatarAppearanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid avatar appearance input")
	}

	avatar, err := h.uc.UpdateAvatarAppearance(c.Request().Context(), userID, entity.AvatarAppearance{
		Body:        req.Body,
		Skin:        req.Skin,
		Hair:        req.Hair,
		Outfit:      req.Outfit,
		Accessories: req.Accessories,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, avatar, "Avatar appearance updated successfully")
}

// SearchUsers finds profiles matching the query, honoring each owner's
// visibility toward the caller.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	viewerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	query := c.QueryParam("q")
	if query == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Search query is required")
	}

	limit := 20
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 || parsed > 100 {
			return response.BadRequest(c, "INVALID_INPUT", "Limit must be between 1 and 100")
		}
		limit = parsed
	}

	profiles, err := h.uc.SearchUsers(c.Request().Context(), viewerID, query, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profiles, "Search completed successfully")
}

// ListActivities retrieves a user's activity entries, honoring the owner's
// ShowActivity setting.
func (h *UserHandler) ListActivities(c echo.Context) error {
	viewerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	targetID := viewerID
	if idParam := c.Param("id"); idParam != "" {
		parsed, err := uuid.Parse(idParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
		}
		targetID = parsed
	}

	limit, offset, err := parsePagination(c, 50, 200)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	activities, err := h.uc.ListActivities(c.Request().Context(), viewerID, targetID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activities, "Activities retrieved successfully")
}

// DeleteAccount removes the caller's account and everything attached to it.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

// GetUserStats aggregates public statistics for a user.
func (h *UserHandler) GetUserStats(c echo.Context) error {
	viewerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	targetID := viewerID
	if idParam := c.Param("id"); idParam != "" {
		parsed, err := uuid.Parse(idParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
		}
		targetID = parsed
	}

	stats, err := h.uc.GetUserStats(c.Request().Context(), viewerID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats retrieved successfully")
}

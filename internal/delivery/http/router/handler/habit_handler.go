package handler

import (
	"log/slog"
	"net/http"
	"time"

	"habitude/internal/delivery/http/response"
	"habitude/internal/domain/entity"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is the wire format for progress dates.
const dateLayout = "2006-01-02"

// HabitHandler holds dependencies for habit lifecycle and progress handlers.
type HabitHandler struct {
	uc     usecase.HabitUsecase
	logger *slog.Logger
}

// NewHabitHandler is the constructor for HabitHandler, injected by Fx.
func NewHabitHandler(uc usecase.HabitUsecase, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{
		uc:     uc,
		logger: logger,
	}
}

type createHabitRequest struct {
	Name                string `json:"name" validate:"required,max=100"`
	Description         string `json:"description" validate:"max=500"`
	Frequency           string `json:"frequency" validate:"required,oneof=daily weekly custom"`
	CustomFrequencyDays []int  `json:"custom_frequency_days" validate:"omitempty,dive,min=0,max=6"`
	TargetCount         int    `json:"target_count" validate:"required,min=1"`
	Category            string `json:"category"`
	Difficulty          string `json:"difficulty"`
	ReminderTime        string `json:"reminder_time"`
	IsPublic            bool   `json:"is_public"`
}

// CreateHabit creates a habit for the caller.
func (h *HabitHandler) CreateHabit(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req createHabitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid habit input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	habit, err := h.uc.CreateHabit(c.Request().Context(), userID, usecase.CreateHabitInput{
		Name:                req.Name,
		Description:         req.Description,
		Frequency:           entity.FrequencyType(req.Frequency),
		CustomFrequencyDays: req.CustomFrequencyDays,
		TargetCount:         req.TargetCount,
		Category:            req.Category,
		Difficulty:          req.Difficulty,
		ReminderTime:        req.ReminderTime,
		IsPublic:            req.IsPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, habit, "Habit created successfully")
}

// GetHabit retrieves a single habit.
func (h *HabitHandler) GetHabit(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid habit ID")
	}

	habit, err := h.uc.GetHabit(c.Request().Context(), userID, habitID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, habit, "Habit retrieved successfully")
}

// ListHabits retrieves the caller's active habits.
func (h *HabitHandler) ListHabits(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	habits, err := h.uc.ListHabits(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, habits, "Habits retrieved successfully")
}

type updateHabitRequest struct {
	Name                *string `json:"name" validate:"omitempty,max=100"`
	Description         *string `json:"description" validate:"omitempty,max=500"`
	Frequency           *string `json:"frequency" validate:"omitempty,oneof=daily weekly custom"`
	CustomFrequencyDays *[]int  `json:"custom_frequency_days"`
	TargetCount         *int    `json:"target_count" validate:"omitempty,min=1"`
	Category            *string `json:"category"`
	Difficulty          *string `json:"difficulty"`
	ReminderTime        *string `json:"reminder_time"`
	IsActive            *bool   `json:"is_active"`
	IsPublic            *bool   `json:"is_public"`
}

// UpdateHabit applies partial changes to a habit the caller owns.
func (h *HabitHandler) UpdateHabit(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid habit ID")
	}

	var req updateHabitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid habit input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	input := usecase.UpdateHabitInput{
		Name:                req.Name,
		Description:         req.Description,
		CustomFrequencyDays: req.CustomFrequencyDays,
		TargetCount:         req.TargetCount,
		Category:            req.Category,
		Difficulty:          req.Difficulty,
		ReminderTime:        req.ReminderTime,
		IsActive:            req.IsActive,
		IsPublic:            req.IsPublic,
	}
	if req.Frequency != nil {
		frequency := entity.FrequencyType(*req.Frequency)
		input.Frequency = &frequency
	}

	habit, err := h.uc.UpdateHabit(c.Request().Context(), userID, habitID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, habit, "Habit updated successfully")
}

// ArchiveHabit deactivates a habit the caller owns.
func (h *HabitHandler) ArchiveHabit(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid habit ID")
	}

	if err := h.uc.ArchiveHabit(c.Request().Context(), userID, habitID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Habit archived successfully")
}

// DeleteHabit removes a habit the caller owns along with its progress.
func (h *HabitHandler) DeleteHabit(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid habit ID")
	}

	if err := h.uc.DeleteHabit(c.Request().Context(), userID, habitID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Habit deleted successfully")
}

type logProgressRequest struct {
	Date           string `json:"date" validate:"required"`
	CompletedCount int    `json:"completed_count" validate:"min=0"`
	Notes          string `json:"notes" validate:"max=500"`
}

// LogProgress records progress for one habit and date. Logging the same
// date twice overwrites the earlier entry.
func (h *HabitHandler) LogProgress(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid habit ID")
	}

	var req logProgressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid progress input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Date must be in YYYY-MM-DD format")
	}

	progress, err := h.uc.LogProgress(c.Request().Context(), userID, usecase.LogProgressInput{
		HabitID:        habitID,
		Date:           date,
		CompletedCount: req.CompletedCount,
		Notes:          req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, progress, "Progress logged successfully")
}

// GetProgress retrieves progress rows for a habit within a date range.
func (h *HabitHandler) GetProgress(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid habit ID")
	}

	from, to, err := parseDateRange(c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	progress, err := h.uc.GetProgress(c.Request().Context(), userID, habitID, from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, progress, "Progress retrieved successfully")
}

// parseDateRange parses optional from/to query parameters, defaulting to the
// last 30 days.
func parseDateRange(fromParam, toParam string) (from, to time.Time, err error) {
	to = time.Now().UTC().Truncate(24 * time.Hour)
	from = to.AddDate(0, 0, -30)

	if fromParam != "" {
		from, err = time.Parse(dateLayout, fromParam)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("from must be in YYYY-MM-DD format")
		}
	}
	if toParam != "" {
		to, err = time.Parse(dateLayout, toParam)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("to must be in YYYY-MM-DD format")
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to must not be before from")
	}

	return from, to, nil
}

package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"habitude/internal/delivery/http/response"
	"habitude/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler holds dependencies for statistics and insight handlers.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetHabitStats computes completion rate and streaks for a habit the caller owns.
func (h *AnalyticsHandler) GetHabitStats(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	habitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid habit ID")
	}

	stats, err := h.uc.GetHabitStats(c.Request().Context(), userID, habitID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Habit stats retrieved successfully")
}

// GetWeeklySummary aggregates the caller's completions for one week.
// The week query parameter is the week start in YYYY-MM-DD, defaulting to
// the current week.
func (h *AnalyticsHandler) GetWeeklySummary(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	weekStart := time.Now().UTC()
	if weekParam := c.QueryParam("week"); weekParam != "" {
		parsed, err := time.Parse(dateLayout, weekParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Week must be in YYYY-MM-DD format")
		}
		weekStart = parsed
	}

	summary, err := h.uc.GetWeeklySummary(c.Request().Context(), userID, weekStart)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Weekly summary retrieved successfully")
}

// GetInsights generates behavioral observations from recent activity.
func (h *AnalyticsHandler) GetInsights(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	insights, err := h.uc.GetInsights(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, insights, "Insights retrieved successfully")
}

// ExportProgress renders a habit's progress history as a downloadable file.
// The format query parameter selects csv (the default) or json.
func (h *AnalyticsHandler) ExportProgress(c echo.Context) error {
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

	ctx := c.Request().Context()

	var body []byte
	contentType := "text/csv"
	extension := "csv"

	switch format := c.QueryParam("format"); format {
	case "", "csv":
		body, err = h.uc.ExportProgressCSV(ctx, userID, habitID, from, to)
	case "json":
		body, err = h.uc.ExportProgressJSON(ctx, userID, habitID, from, to)
		contentType = echo.MIMEApplicationJSON
		extension = "json"
	default:
		return response.BadRequest(c, "INVALID_INPUT", "Format must be csv or json")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	filename := fmt.Sprintf("progress-%s.%s", habitID, extension)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, contentType, body)
}

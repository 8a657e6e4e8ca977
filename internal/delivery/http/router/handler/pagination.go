package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// parsePagination parses optional limit/offset query parameters.
func parsePagination(c echo.Context, defaultLimit, maxLimit int) (limit, offset int, err error) {
	limit = defaultLimit
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, errors.Errorf("limit must be between 1 and %d", maxLimit)
		}
	}

	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		offset, err = strconv.Atoi(offsetParam)
		if err != nil || offset < 0 {
			return 0, 0, errors.New("offset must be a non-negative integer")
		}
	}

	return limit, offset, nil
}

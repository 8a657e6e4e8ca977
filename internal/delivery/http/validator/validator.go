// Package validator wires go-playground validation into Echo's binding.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator adapts validator.Validate to echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a new CustomValidator.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate validates the bound request struct against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

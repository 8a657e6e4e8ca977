package middleware

import (
	"net/http"
	"strings"

	deliverycontext "habitude/internal/delivery/context"
	"habitude/internal/delivery/http/response"
	"habitude/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and puts the user ID on
// the context. Refresh tokens are rejected here; they are only accepted by
// the session endpoints that consume them explicitly.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		if claims.Type != "access" {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is not an access token", "")
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

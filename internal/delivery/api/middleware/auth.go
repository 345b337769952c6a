// Package middleware holds API-specific echo middleware.
package middleware

import (
	"strings"

	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const userIDContextKey = "userID"

const bearerScheme = "Bearer"

// AuthMiddleware guards protected routes with bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header and the access token it
// carries. The three failure modes stay distinct for the client: absent
// header, malformed header, and rejected token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrAuthHeaderMissing
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || scheme != bearerScheme || tokenString == "" {
			return domainerrors.ErrAuthHeaderMalformed
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// Already a typed domain error: expired vs. invalid.
			return err
		}

		c.Set(userIDContextKey, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the authenticated user's ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDContextKey).(uuid.UUID)

	return userID, ok
}

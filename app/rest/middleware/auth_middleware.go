package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"member-service/app/port"
)

// MemberIDKey is the echo context key carrying the authenticated member's id
const MemberIDKey = "member_id"

// AuthMiddleware provides bearer token authentication
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_middleware"),
	}
}

// RequireAuth rejects requests without a valid, unrevoked access token
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractBearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			memberID, err := m.authUsecase.Authorize(c.Request().Context(), token)
			if err != nil {
				m.logger.Debug("token rejected", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			c.Set(MemberIDKey, memberID)
			return next(c)
		}
	}
}

// OptionalAuth resolves the member id when a valid token is present but lets
// anonymous requests through.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractBearerToken(c)
			if token == "" {
				return next(c)
			}

			memberID, err := m.authUsecase.Authorize(c.Request().Context(), token)
			if err != nil {
				m.logger.Debug("optional auth failed", "error", err)
				return next(c)
			}

			c.Set(MemberIDKey, memberID)
			return next(c)
		}
	}
}

// MemberID returns the authenticated member's id from the echo context,
// or uuid.Nil for anonymous requests.
func MemberID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(MemberIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// ExtractBearerToken pulls the raw token out of the Authorization header
func ExtractBearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if auth == "" {
		return ""
	}
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return auth
}

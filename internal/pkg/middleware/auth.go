package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/nebengdinas/internal/pkg/jwt"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/requestcontext"
	"github.com/piresc/nebengdinas/internal/utils"
)

// Echo context keys set by JWTAuthMiddleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyIdentity = "identity"
)

// JWTAuthMiddleware validates the bearer token and stores the caller identity
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			identity, err := jwtpkg.ValidateToken(parts[1], config)
			if err != nil {
				logger.Security(c.Request().Context(), "Rejected bearer token",
					logger.String("path", c.Path()),
					logger.String("client_ip", c.RealIP()),
					logger.Err(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextKeyUserID, identity.UserID)
			c.Set(ContextKeyUserRole, identity.Role)
			c.Set(ContextKeyIdentity, identity)
			requestcontext.Update(c, func(ctx context.Context) context.Context {
				return requestcontext.WithActor(ctx, identity.UserID, identity.Email)
			})

			return next(c)
		}
	}
}

// RequireAdmin rejects callers without the administrator role. It must run
// after JWTAuthMiddleware.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			if !identity.IsAdmin() {
				logger.Security(c.Request().Context(), "Non-admin called admin endpoint",
					logger.UUID("user_id", identity.UserID),
					logger.String("path", c.Path()))
				return utils.ForbiddenResponse(c, "Administrator role required")
			}
			return next(c)
		}
	}
}

// IdentityFromContext returns the authenticated caller
func IdentityFromContext(c echo.Context) (models.Identity, bool) {
	identity, ok := c.Get(ContextKeyIdentity).(models.Identity)
	return identity, ok
}

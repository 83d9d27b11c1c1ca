package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/requestcontext"
)

const ContextKeyRequestID = "request_id"

// RequestIDMiddleware keeps an inbound X-Request-ID or mints one, echoes it
// on the response and stores it in the request context for logs and
// outbound HTTP calls.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(ContextKeyRequestID, requestID)
			requestcontext.Update(c, func(ctx context.Context) context.Context {
				return requestcontext.WithRequestID(ctx, requestID)
			})

			return next(c)
		}
	}
}

// RequestID returns the id assigned to this request, if any
func RequestID(c echo.Context) string {
	if id, ok := c.Get(ContextKeyRequestID).(string); ok && id != "" {
		return id
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

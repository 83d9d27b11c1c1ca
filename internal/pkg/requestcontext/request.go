// Package requestcontext carries per-request metadata through context.Context
// so that code below the handlers can log and forward it.
package requestcontext

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	actorKey
	userIDKey
)

// RequestContext is the metadata known about one inbound request
type RequestContext struct {
	RequestID string
	UserID    uuid.UUID
	Actor     string
}

// WithRequestID stores the request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithActor stores the authenticated caller
func WithActor(ctx context.Context, userID uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, actorKey, email)
}

// GetRequestID extracts the request id, or ""
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetActor extracts the caller email, or ""
func GetActor(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey).(string); ok {
		return actor
	}
	return ""
}

// GetUserID extracts the caller id, or uuid.Nil
func GetUserID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(userIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// FromContext collects everything stored in ctx
func FromContext(ctx context.Context) RequestContext {
	return RequestContext{
		RequestID: GetRequestID(ctx),
		UserID:    GetUserID(ctx),
		Actor:     GetActor(ctx),
	}
}

// Update replaces the echo request context with fn applied to it
func Update(c echo.Context, fn func(ctx context.Context) context.Context) {
	c.SetRequest(c.Request().WithContext(fn(c.Request().Context())))
}

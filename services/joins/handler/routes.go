package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/middleware"
	"github.com/piresc/nebengdinas/services/joins"
	httpHandler "github.com/piresc/nebengdinas/services/joins/handler/http"
)

// Handler combines all handlers for the join service
type Handler struct {
	joinHTTP *httpHandler.JoinHandler
}

// NewHandler creates a new combined handler
func NewHandler(joinUC joins.JoinUC) *Handler {
	return &Handler{
		joinHTTP: httpHandler.NewJoinHandler(joinUC),
	}
}

// RegisterRoutes registers the join request routes
func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	api.POST("/trips/:id/join-requests", h.joinHTTP.RequestJoin, auth)
	api.POST("/join-requests/:id/cancel", h.joinHTTP.Cancel, auth)

	admin := api.Group("/admin/join-requests", auth, middleware.RequireAdmin())
	admin.GET("", h.joinHTTP.List)
	admin.POST("/:id/approve", h.joinHTTP.Approve)
	admin.POST("/:id/reject", h.joinHTTP.Reject)
}

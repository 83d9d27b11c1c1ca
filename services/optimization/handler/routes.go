package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/middleware"
	"github.com/piresc/nebengdinas/services/optimization"
	httpHandler "github.com/piresc/nebengdinas/services/optimization/handler/http"
)

// Handler combines all handlers for the optimization service
type Handler struct {
	optimizationHTTP *httpHandler.OptimizationHandler
}

// NewHandler creates a new combined handler
func NewHandler(optimizationUC optimization.OptimizationUC) *Handler {
	return &Handler{
		optimizationHTTP: httpHandler.NewOptimizationHandler(optimizationUC),
	}
}

// RegisterRoutes registers the admin-only consolidation routes
func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	admin := api.Group("/admin/optimizations", auth, middleware.RequireAdmin())
	admin.POST("", h.optimizationHTTP.Propose)
	admin.GET("", h.optimizationHTTP.List)
	admin.GET("/:id", h.optimizationHTTP.Get)
	admin.POST("/:id/approve", h.optimizationHTTP.Approve)
	admin.POST("/:id/reject", h.optimizationHTTP.Reject)
}

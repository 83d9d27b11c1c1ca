package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/middleware"
	"github.com/piresc/nebengdinas/services/trips"
	httpHandler "github.com/piresc/nebengdinas/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripHTTP *httpHandler.TripHandler
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
	}
}

// RegisterRoutes registers the trip routes on the versioned API group.
// Approval links carry their own signed token and skip bearer auth. GET on a
// link never decides; the manager confirms with POST.
func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc) {
	approvals := api.Group("/approvals")
	approvals.GET("/:token", h.tripHTTP.PreviewByToken)
	approvals.POST("/:token", h.tripHTTP.DecideByToken)
	approvals.POST("/:token/reject", h.tripHTTP.RejectByToken)

	tripGroup := api.Group("/trips", auth)
	tripGroup.POST("", h.tripHTTP.SubmitTrip)
	tripGroup.GET("", h.tripHTTP.ListMyTrips)
	tripGroup.GET("/:id", h.tripHTTP.GetTrip)
	tripGroup.POST("/:id/cancel", h.tripHTTP.CancelTrip)

	admin := api.Group("/admin/trips", auth, middleware.RequireAdmin())
	admin.POST("/:id/override", h.tripHTTP.AdminOverride)
	admin.POST("/:id/escalate", h.tripHTTP.Escalate)
}

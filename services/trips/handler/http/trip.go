package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/middleware"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/utils"
	"github.com/piresc/nebengdinas/services/trips"
)

// TripHandler handles HTTP requests for trips and their approval
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// SubmitTrip handles POST /trips
func (h *TripHandler) SubmitTrip(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SubmitTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	trip, err := h.tripUC.SubmitTrip(c.Request().Context(), identity, &req)
	if err != nil {
		logger.Warn("Trip submission failed",
			logger.UUID("user_id", identity.UserID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trip submitted", trip)
}

// GetTrip handles GET /trips/:id
func (h *TripHandler) GetTrip(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), identity, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", trip)
}

// ListMyTrips handles GET /trips
func (h *TripHandler) ListMyTrips(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.tripUC.ListMyTrips(c.Request().Context(), identity)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// CancelTrip handles POST /trips/:id/cancel
func (h *TripHandler) CancelTrip(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.CancelTrip(c.Request().Context(), identity, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled", trip)
}

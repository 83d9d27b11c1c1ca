package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/middleware"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/utils"
)

// PreviewByToken handles GET /approvals/:token, the link a manager clicks.
// It only shows what confirming would do.
func (h *TripHandler) PreviewByToken(c echo.Context) error {
	preview, err := h.tripUC.PreviewByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Confirm to record the decision", preview)
}

// DecideByToken handles POST /approvals/:token. The action comes from the
// token itself.
func (h *TripHandler) DecideByToken(c echo.Context) error {
	decision, err := h.tripUC.DecideByToken(c.Request().Context(), c.Param("token"), nil)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Decision recorded", decision)
}

// RejectByToken handles POST /approvals/:token/reject
func (h *TripHandler) RejectByToken(c echo.Context) error {
	var req models.ManagerDecisionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	decision, err := h.tripUC.RejectByToken(c.Request().Context(), c.Param("token"), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip rejected", decision)
}

// AdminOverride handles POST /admin/trips/:id/override
func (h *TripHandler) AdminOverride(c echo.Context) error {
	admin, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}
	var req models.AdminOverrideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	trip, err := h.tripUC.AdminOverride(c.Request().Context(), admin, id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Approval overridden", trip)
}

// Escalate handles POST /admin/trips/:id/escalate. The body is optional.
func (h *TripHandler) Escalate(c echo.Context) error {
	admin, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}
	var req models.EscalateRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request body")
		}
	}

	trip, err := h.tripUC.Escalate(c.Request().Context(), admin, id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Approval escalated", trip)
}

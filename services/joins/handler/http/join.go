package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/middleware"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/utils"
	"github.com/piresc/nebengdinas/services/joins"
)

// JoinHandler serves the join request endpoints
type JoinHandler struct {
	joinUC joins.JoinUC
}

// NewJoinHandler creates a new join handler
func NewJoinHandler(joinUC joins.JoinUC) *JoinHandler {
	return &JoinHandler{joinUC: joinUC}
}

// RequestJoin handles POST /trips/:id/join-requests
func (h *JoinHandler) RequestJoin(c echo.Context) error {
	requester, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}
	var req models.JoinTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	join, err := h.joinUC.RequestJoin(c.Request().Context(), requester, tripID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Join request submitted", join)
}

// Approve handles POST /admin/join-requests/:id/approve
func (h *JoinHandler) Approve(c echo.Context) error {
	admin, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid join request ID")
	}
	req, err := bindDecision(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	approval, err := h.joinUC.ApproveJoinRequest(c.Request().Context(), admin, id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Join request approved", approval)
}

// Reject handles POST /admin/join-requests/:id/reject
func (h *JoinHandler) Reject(c echo.Context) error {
	admin, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid join request ID")
	}
	req, err := bindDecision(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	join, err := h.joinUC.RejectJoinRequest(c.Request().Context(), admin, id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Join request rejected", join)
}

// bindDecision reads the optional admin notes
func bindDecision(c echo.Context) (*models.JoinDecisionRequest, error) {
	var req models.JoinDecisionRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return nil, apperror.ValidationError{Field: "body", Msg: "invalid request body", Err: err}
		}
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Cancel handles POST /join-requests/:id/cancel
func (h *JoinHandler) Cancel(c echo.Context) error {
	requester, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid join request ID")
	}

	join, err := h.joinUC.CancelJoinRequest(c.Request().Context(), requester, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Join request cancelled", join)
}

// List handles GET /admin/join-requests?status=pending
func (h *JoinHandler) List(c echo.Context) error {
	requests, err := h.joinUC.ListJoinRequests(c.Request().Context(), models.JoinRequestStatus(c.QueryParam("status")))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Join requests retrieved", requests)
}

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/middleware"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/utils"
	"github.com/piresc/nebengdinas/services/optimization"
)

// OptimizationHandler serves the admin consolidation endpoints
type OptimizationHandler struct {
	optimizationUC optimization.OptimizationUC
}

// NewOptimizationHandler creates a new optimization handler
func NewOptimizationHandler(optimizationUC optimization.OptimizationUC) *OptimizationHandler {
	return &OptimizationHandler{optimizationUC: optimizationUC}
}

// Propose handles POST /admin/optimizations
func (h *OptimizationHandler) Propose(c echo.Context) error {
	admin, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.optimizationUC.ProposeOptimization(c.Request().Context(), admin)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Optimization proposals created", result)
}

// List handles GET /admin/optimizations?status=
func (h *OptimizationHandler) List(c echo.Context) error {
	groups, err := h.optimizationUC.ListProposals(c.Request().Context(), models.GroupStatus(c.QueryParam("status")))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Optimization groups retrieved", groups)
}

// Get handles GET /admin/optimizations/:id
func (h *OptimizationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group ID")
	}

	group, err := h.optimizationUC.GetProposal(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Optimization group retrieved", group)
}

// Approve handles POST /admin/optimizations/:id/approve
func (h *OptimizationHandler) Approve(c echo.Context) error {
	admin, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group ID")
	}

	group, err := h.optimizationUC.ApproveProposal(c.Request().Context(), admin, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Optimization approved", group)
}

// Reject handles POST /admin/optimizations/:id/reject. The reason is optional.
func (h *OptimizationHandler) Reject(c echo.Context) error {
	admin, ok := middleware.IdentityFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group ID")
	}
	var req models.ProposalDecisionRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request body")
		}
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	group, err := h.optimizationUC.RejectProposal(c.Request().Context(), admin, id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Optimization rejected", group)
}

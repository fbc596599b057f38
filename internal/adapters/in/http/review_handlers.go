package http

import (
	"net/http"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/review"
	"shopfloor/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
)

type validateRouteRequest struct {
	OrderID    string `json:"orderId"`
	EmpNo      string `json:"empNo"`
	ActingRole string `json:"actingRole"`
	Note       string `json:"note"`
}

// ValidateRoute handles POST /api/v1/lines/:lineId/route/validate.
func (s *Server) ValidateRoute(ctx echo.Context) error {
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req validateRouteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, err)
	}
	actingRole, err := kernel.RoleFromString(req.ActingRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewValidateRouteCommand(
		orderID, lineID, kernel.EmpNo(req.EmpNo), actingRole, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.ValidateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type adjustRouteRequest struct {
	OrderID     string                  `json:"orderId"`
	Adjustments []stepAdjustmentRequest `json:"adjustments"`
	EmpNo       string                  `json:"empNo"`
}

type stepAdjustmentRequest struct {
	StepID       string `json:"stepId"`
	Sequence     int    `json:"sequence"`
	WorkCenterID string `json:"workCenterId"`
}

// AdjustRoute handles POST /api/v1/lines/:lineId/route/adjust.
func (s *Server) AdjustRoute(ctx echo.Context) error {
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req adjustRouteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	adjustments := make([]route.StepAdjustment, 0, len(req.Adjustments))
	for _, adj := range req.Adjustments {
		stepID, adjErr := kernel.UUIDFromString(adj.StepID)
		if adjErr != nil {
			return badRequest(ctx, adjErr)
		}
		workCenterID, adjErr := kernel.UUIDFromString(adj.WorkCenterID)
		if adjErr != nil {
			return badRequest(ctx, adjErr)
		}
		adjustments = append(adjustments, route.StepAdjustment{
			StepID:       stepID,
			Sequence:     adj.Sequence,
			WorkCenterID: workCenterID,
		})
	}

	cmd, err := commands.NewAdjustRouteCommand(orderID, lineID, adjustments, kernel.EmpNo(req.EmpNo))
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.AdjustRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type decideReviewRequest struct {
	Approved bool   `json:"approved"`
	Note     string `json:"note"`
	Reviewer string `json:"reviewer"`
	Role     string `json:"actingRole"`
}

// DecideReview handles POST /api/v1/lines/:lineId/route/decision.
func (s *Server) DecideReview(ctx echo.Context) error {
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req decideReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	actingRole, err := kernel.RoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDecideRouteReviewCommand(
		lineID, req.Approved, req.Note, kernel.EmpNo(req.Reviewer), actingRole)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.DecideReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reopenRouteRequest struct {
	EmpNo      string `json:"empNo"`
	ActingRole string `json:"actingRole"`
}

// ReopenRoute handles POST /api/v1/lines/:lineId/route/reopen.
func (s *Server) ReopenRoute(ctx echo.Context) error {
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req reopenRouteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	actingRole, err := kernel.RoleFromString(req.ActingRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewReopenRouteCommand(lineID, kernel.EmpNo(req.EmpNo), actingRole)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.ReopenRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingReviews handles GET /api/v1/reviews?phase=.
func (s *Server) GetPendingReviews(ctx echo.Context) error {
	phase, err := review.PhaseFromString(ctx.QueryParam("phase"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetPendingReviewsQuery(phase)
	if err != nil {
		return respondError(ctx, err)
	}
	response, err := s.handlers.GetPendingReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

package http

import (
	"net/http"
	"strconv"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type createHoldReasonRequest struct {
	HoldType    string `json:"holdType"`
	Code        string `json:"code"`
	Description string `json:"description"`
	ActingRole  string `json:"actingRole"`
}

type createHoldReasonResponse struct {
	ReasonID string `json:"reasonId"`
}

// CreateHoldReason handles POST /api/v1/hold-reasons.
func (s *Server) CreateHoldReason(ctx echo.Context) error {
	var req createHoldReasonRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	holdType, err := order.HoldTypeFromString(req.HoldType)
	if err != nil {
		return badRequest(ctx, err)
	}
	actingRole, err := kernel.RoleFromString(req.ActingRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	reasonID := kernel.NewUUID()
	cmd, err := commands.NewCreateHoldReasonCommand(reasonID, holdType, req.Code, req.Description, actingRole)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.CreateHoldReason.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createHoldReasonResponse{ReasonID: reasonID.String()})
}

type updateHoldReasonRequest struct {
	Description string `json:"description"`
	Active      bool   `json:"active"`
	ActingRole  string `json:"actingRole"`
}

// UpdateHoldReason handles PUT /api/v1/hold-reasons/:reasonId.
func (s *Server) UpdateHoldReason(ctx echo.Context) error {
	reasonID, err := kernel.UUIDFromString(ctx.Param("reasonId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req updateHoldReasonRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	actingRole, err := kernel.RoleFromString(req.ActingRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateHoldReasonCommand(reasonID, req.Description, req.Active, actingRole)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.UpdateHoldReason.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteHoldReason handles DELETE /api/v1/hold-reasons/:reasonId. The
// caller's role travels as a query parameter since DELETE carries no
// body.
func (s *Server) DeleteHoldReason(ctx echo.Context) error {
	reasonID, err := kernel.UUIDFromString(ctx.Param("reasonId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	actingRole, err := kernel.RoleFromString(ctx.QueryParam("actingRole"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteHoldReasonCommand(reasonID, actingRole)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.DeleteHoldReason.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetHoldReasons handles GET /api/v1/hold-reasons?holdType=&activeOnly=.
func (s *Server) GetHoldReasons(ctx echo.Context) error {
	holdType, err := order.HoldTypeFromString(ctx.QueryParam("holdType"))
	if err != nil {
		return badRequest(ctx, err)
	}

	activeOnly := true
	if raw := ctx.QueryParam("activeOnly"); raw != "" {
		activeOnly, err = strconv.ParseBool(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	query, err := queries.NewGetHoldReasonsQuery(holdType, activeOnly)
	if err != nil {
		return respondError(ctx, err)
	}
	response, err := s.handlers.GetHoldReasons.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

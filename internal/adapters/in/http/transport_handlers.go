package http

import (
	"net/http"
	"strconv"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/dispatch"
	"shopfloor/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	defaultBoardPage     = 1
	defaultBoardPageSize = 50
)

// GetTransportBoard handles GET /api/v1/transport-board?page=&pageSize=.
func (s *Server) GetTransportBoard(ctx echo.Context) error {
	page := defaultBoardPage
	pageSize := defaultBoardPageSize
	var err error

	if raw := ctx.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return badRequest(ctx, err)
		}
	}
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil {
			return badRequest(ctx, err)
		}
	}

	query, err := queries.NewGetTransportBoardQuery(page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}
	response, err := s.handlers.GetTransportBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type saveTransportBoardRequest struct {
	Patches []transportPatchRequest `json:"patches"`
}

type transportPatchRequest struct {
	OrderID string         `json:"orderId"`
	Fields  map[string]any `json:"fields"`
}

// SaveTransportBoard handles POST /api/v1/transport-board/save. Only one
// save runs at a time; a save arriving while another is in flight gets
// 409 and the client retries with its dirty rows intact.
func (s *Server) SaveTransportBoard(ctx echo.Context) error {
	var req saveTransportBoardRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	patches := make([]dispatch.Patch, 0, len(req.Patches))
	for _, patch := range req.Patches {
		orderID, err := kernel.UUIDFromString(patch.OrderID)
		if err != nil {
			return badRequest(ctx, err)
		}
		patches = append(patches, dispatch.Patch{
			OrderID: orderID,
			Fields:  patch.Fields,
		})
	}

	cmd, err := commands.NewSaveTransportBoardCommand(patches)
	if err != nil {
		return respondError(ctx, err)
	}

	if !s.boardGuard.TryAcquire("save", "transport-board") {
		return writeError(ctx, http.StatusConflict, errSaveInProgress)
	}
	defer s.boardGuard.Release("save", "transport-board")

	if err = s.handlers.SaveBoard.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Package http exposes the application's commands and queries as a JSON
// API on Echo. Handlers translate transport payloads into constructed
// commands and map domain errors onto HTTP statuses; no business rule
// lives here.
package http

import (
	"errors"
	"net/http"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/route"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/syncutil"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handlers bundles every command and query handler the server needs.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	AdvanceOrder      commands.AdvanceOrderStatusCommandHandler
	ApplyHold         commands.ApplyHoldCommandHandler
	ClearHold         commands.ClearHoldCommandHandler
	SubmitInvoice     commands.SubmitInvoiceCommandHandler
	CreateHoldReason  commands.CreateHoldReasonCommandHandler
	UpdateHoldReason  commands.UpdateHoldReasonCommandHandler
	DeleteHoldReason  commands.DeleteHoldReasonCommandHandler
	ScanInStep        commands.ScanInStepCommandHandler
	ScanOutStep       commands.ScanOutStepCommandHandler
	RecordProgress    commands.RecordStepProgressCommandHandler
	CompleteStep      commands.CompleteStepCommandHandler
	AddUsage          commands.AddStepUsageCommandHandler
	UpdateUsage       commands.UpdateStepUsageCommandHandler
	DeleteUsage       commands.DeleteStepUsageCommandHandler
	AddScrap          commands.AddStepScrapCommandHandler
	AddSerial         commands.AddStepSerialCommandHandler
	AddChecklist      commands.AddChecklistEntryCommandHandler
	OverrideChecklist commands.OverrideChecklistItemCommandHandler
	ValidateRoute     commands.ValidateRouteCommandHandler
	AdjustRoute       commands.AdjustRouteCommandHandler
	DecideReview      commands.DecideRouteReviewCommandHandler
	ReopenRoute       commands.ReopenRouteCommandHandler
	SaveBoard         commands.SaveTransportBoardCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	GetLineRoute      queries.GetLineRouteQueryHandler
	GetStepLedgers    queries.GetStepLedgersQueryHandler
	GetWorkCenterQ    queries.GetWorkCenterQueueQueryHandler
	GetPendingReviews queries.GetPendingReviewsQueryHandler
	GetTransportBoard queries.GetTransportBoardQueryHandler
	GetHoldReasons    queries.GetHoldReasonsQueryHandler
}

// Server wires the HTTP routes to application handlers.
type Server struct {
	handlers Handlers

	// boardGuard serializes transport board saves: a second save arriving
	// while one runs is refused, never queued.
	boardGuard *syncutil.BusyGuard
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		handlers:   handlers,
		boardGuard: syncutil.NewBusyGuard(),
	}
}

// RegisterRoutes mounts every route on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/advance", s.AdvanceOrder)
	api.POST("/orders/:orderId/holds", s.ApplyHold)
	api.POST("/orders/:orderId/holds/clear", s.ClearHold)
	api.POST("/orders/:orderId/invoice", s.SubmitInvoice)

	api.GET("/hold-reasons", s.GetHoldReasons)
	api.POST("/hold-reasons", s.CreateHoldReason)
	api.PUT("/hold-reasons/:reasonId", s.UpdateHoldReason)
	api.DELETE("/hold-reasons/:reasonId", s.DeleteHoldReason)

	api.GET("/lines/:lineId/route", s.GetLineRoute)
	api.POST("/lines/:lineId/steps/:stepId/scan-in", s.ScanInStep)
	api.POST("/lines/:lineId/steps/:stepId/scan-out", s.ScanOutStep)
	api.POST("/lines/:lineId/steps/:stepId/progress", s.RecordProgress)
	api.POST("/lines/:lineId/steps/:stepId/complete", s.CompleteStep)
	api.GET("/lines/:lineId/steps/:stepId/ledgers", s.GetStepLedgers)
	api.POST("/lines/:lineId/steps/:stepId/usage", s.AddUsage)
	api.PUT("/lines/:lineId/steps/:stepId/usage/:entryId", s.UpdateUsage)
	api.DELETE("/lines/:lineId/steps/:stepId/usage/:entryId", s.DeleteUsage)
	api.POST("/lines/:lineId/steps/:stepId/scrap", s.AddScrap)
	api.POST("/lines/:lineId/steps/:stepId/serials", s.AddSerial)
	api.POST("/lines/:lineId/steps/:stepId/checklist", s.AddChecklist)
	api.POST("/lines/:lineId/steps/:stepId/checklist/:entryId/override", s.OverrideChecklist)

	api.GET("/work-centers/:workCenterId/queue", s.GetWorkCenterQueue)

	api.POST("/lines/:lineId/route/validate", s.ValidateRoute)
	api.POST("/lines/:lineId/route/adjust", s.AdjustRoute)
	api.POST("/lines/:lineId/route/decision", s.DecideReview)
	api.POST("/lines/:lineId/route/reopen", s.ReopenRoute)
	api.GET("/reviews", s.GetPendingReviews)

	api.GET("/transport-board", s.GetTransportBoard)
	api.POST("/transport-board/save", s.SaveTransportBoard)
}

// errSaveInProgress refuses a transport board save that arrives while
// another one is still running.
var errSaveInProgress = errors.New("a transport board save is already in progress")

// conflictErrors are domain refusals: the request was well formed but the
// aggregate's current state forbids it.
var conflictErrors = []error{
	order.ErrHoldBlocksAdvance,
	commands.ErrProductionIncomplete,
	route.ErrStepAlreadyCompleted,
	route.ErrStepNotInProgress,
	route.ErrDuplicateSerial,
	route.ErrQuantityShort,
}

// respondError maps an application error onto an HTTP status. Gate
// refusals and state conflicts are 409 so terminals can distinguish
// "fix your input" from "the floor moved under you".
func respondError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return writeError(ctx, http.StatusNotFound, err)
	}

	for _, conflict := range conflictErrors {
		if errors.Is(err, conflict) {
			return writeError(ctx, http.StatusConflict, err)
		}
	}

	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) {
		if invalid.ParamName == "captureGate" {
			return writeError(ctx, http.StatusConflict, err)
		}
		return writeError(ctx, http.StatusBadRequest, err)
	}

	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &required) || errors.As(err, &outOfRange) ||
		errors.Is(err, commands.ErrWizardConfirmationMissing) {
		return writeError(ctx, http.StatusBadRequest, err)
	}

	return writeError(ctx, http.StatusInternalServerError, err)
}

func badRequest(ctx echo.Context, err error) error {
	return writeError(ctx, http.StatusBadRequest, err)
}

func writeError(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

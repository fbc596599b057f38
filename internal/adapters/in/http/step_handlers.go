package http

import (
	"fmt"
	"net/http"
	"time"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
	"shopfloor/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// pathIDs extracts the lineId and stepId path parameters.
func pathIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	stepID, err := kernel.UUIDFromString(ctx.Param("stepId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return lineID, stepID, nil
}

func conditionFromString(s string) (route.ConditionStatus, error) {
	switch s {
	case "Good":
		return route.ConditionGood, nil
	case "Bad":
		return route.ConditionBad, nil
	}
	return route.ConditionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"condition", fmt.Errorf("%q is not a valid condition status", s))
}

type serialCaptureRequest struct {
	SerialNo        string     `json:"serialNo"`
	Manufacturer    string     `json:"manufacturer"`
	ManufactureDate *time.Time `json:"manufactureDate"`
	TestDate        *time.Time `json:"testDate"`
	LidColorID      *string    `json:"lidColorId"`
	LidSizeID       *string    `json:"lidSizeId"`
	Condition       string     `json:"condition"`
}

func (req serialCaptureRequest) toInput() (commands.SerialCaptureInput, error) {
	condition, err := conditionFromString(req.Condition)
	if err != nil {
		return commands.SerialCaptureInput{}, err
	}

	input := commands.SerialCaptureInput{
		SerialNo:        req.SerialNo,
		Manufacturer:    req.Manufacturer,
		ManufactureDate: req.ManufactureDate,
		TestDate:        req.TestDate,
		Condition:       condition,
	}
	if req.LidColorID != nil {
		id, idErr := kernel.UUIDFromString(*req.LidColorID)
		if idErr != nil {
			return commands.SerialCaptureInput{}, idErr
		}
		input.LidColorID = &id
	}
	if req.LidSizeID != nil {
		id, idErr := kernel.UUIDFromString(*req.LidSizeID)
		if idErr != nil {
			return commands.SerialCaptureInput{}, idErr
		}
		input.LidSizeID = &id
	}
	return input, nil
}

type scanRequest struct {
	EmpNo        string `json:"empNo"`
	DeviceID     string `json:"deviceId"`
	WorkCenterID string `json:"workCenterId"`
}

// ScanInStep handles POST /api/v1/lines/:lineId/steps/:stepId/scan-in.
func (s *Server) ScanInStep(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req scanRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	workCenterID, err := kernel.UUIDFromString(req.WorkCenterID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewScanInStepCommand(lineID, stepID, kernel.EmpNo(req.EmpNo), req.DeviceID, workCenterID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.ScanInStep.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ScanOutStep handles POST /api/v1/lines/:lineId/steps/:stepId/scan-out.
func (s *Server) ScanOutStep(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req scanRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	workCenterID, err := kernel.UUIDFromString(req.WorkCenterID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewScanOutStepCommand(lineID, stepID, kernel.EmpNo(req.EmpNo), req.DeviceID, workCenterID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.ScanOutStep.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type recordProgressRequest struct {
	WorkCenterID      string                `json:"workCenterId"`
	QuantityCompleted int                   `json:"quantityCompleted"`
	QuantityScrapped  int                   `json:"quantityScrapped"`
	Serial            *serialCaptureRequest `json:"serial"`
	EmpNo             string                `json:"empNo"`
}

type recordProgressResponse struct {
	QuantityCompleted int  `json:"quantityCompleted"`
	QuantityScrapped  int  `json:"quantityScrapped"`
	ReadyToComplete   bool `json:"readyToComplete"`
}

// RecordProgress handles POST /api/v1/lines/:lineId/steps/:stepId/progress.
func (s *Server) RecordProgress(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req recordProgressRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	workCenterID, err := kernel.UUIDFromString(req.WorkCenterID)
	if err != nil {
		return badRequest(ctx, err)
	}

	var serial *commands.SerialCaptureInput
	if req.Serial != nil {
		input, serialErr := req.Serial.toInput()
		if serialErr != nil {
			return badRequest(ctx, serialErr)
		}
		serial = &input
	}

	cmd, err := commands.NewRecordStepProgressCommand(
		lineID, stepID, workCenterID,
		req.QuantityCompleted, req.QuantityScrapped,
		serial, kernel.EmpNo(req.EmpNo))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.RecordProgress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, recordProgressResponse{
		QuantityCompleted: result.QuantityCompleted,
		QuantityScrapped:  result.QuantityScrapped,
		ReadyToComplete:   result.ReadyToComplete,
	})
}

type completeStepRequest struct {
	WorkCenterID          string `json:"workCenterId"`
	EmpNo                 string `json:"empNo"`
	Notes                 string `json:"notes"`
	ManualDurationMinutes *int   `json:"manualDurationMinutes"`
}

type completeStepResponse struct {
	RouteComplete    bool    `json:"routeComplete"`
	NextStepID       *string `json:"nextStepId,omitempty"`
	NextStepSequence int     `json:"nextStepSequence"`
}

// CompleteStep handles POST /api/v1/lines/:lineId/steps/:stepId/complete.
func (s *Server) CompleteStep(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req completeStepRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	workCenterID, err := kernel.UUIDFromString(req.WorkCenterID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteStepCommand(
		lineID, stepID, workCenterID,
		kernel.EmpNo(req.EmpNo), req.Notes, req.ManualDurationMinutes)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.CompleteStep.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := completeStepResponse{
		RouteComplete:    result.RouteComplete,
		NextStepSequence: result.NextStepSequence,
	}
	if result.NextStepID != nil {
		next := result.NextStepID.String()
		response.NextStepID = &next
	}
	return ctx.JSON(http.StatusOK, response)
}

type addUsageRequest struct {
	PartItemID   string  `json:"partItemId"`
	LotBatch     string  `json:"lotBatch"`
	QuantityUsed float64 `json:"quantityUsed"`
	Uom          string  `json:"uom"`
	EmpNo        string  `json:"empNo"`
}

// AddUsage handles POST /api/v1/lines/:lineId/steps/:stepId/usage.
func (s *Server) AddUsage(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req addUsageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	partItemID, err := kernel.UUIDFromString(req.PartItemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddStepUsageCommand(
		lineID, stepID, partItemID,
		req.LotBatch, req.QuantityUsed, req.Uom, kernel.EmpNo(req.EmpNo))
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.AddUsage.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateUsage handles PUT /api/v1/lines/:lineId/steps/:stepId/usage/:entryId.
func (s *Server) UpdateUsage(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	entryID, err := kernel.UUIDFromString(ctx.Param("entryId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req addUsageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	partItemID, err := kernel.UUIDFromString(req.PartItemID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateStepUsageCommand(
		lineID, stepID, entryID, partItemID,
		req.LotBatch, req.QuantityUsed, req.Uom, kernel.EmpNo(req.EmpNo))
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.UpdateUsage.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUsage handles DELETE /api/v1/lines/:lineId/steps/:stepId/usage/:entryId.
func (s *Server) DeleteUsage(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	entryID, err := kernel.UUIDFromString(ctx.Param("entryId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteStepUsageCommand(
		lineID, stepID, entryID, kernel.EmpNo(ctx.QueryParam("empNo")))
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.DeleteUsage.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type addScrapRequest struct {
	QuantityScrapped int    `json:"quantityScrapped"`
	ScrapReasonID    string `json:"scrapReasonId"`
	EmpNo            string `json:"empNo"`
}

// AddScrap handles POST /api/v1/lines/:lineId/steps/:stepId/scrap.
func (s *Server) AddScrap(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req addScrapRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	scrapReasonID, err := kernel.UUIDFromString(req.ScrapReasonID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddStepScrapCommand(
		lineID, stepID, req.QuantityScrapped, scrapReasonID, kernel.EmpNo(req.EmpNo))
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.AddScrap.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

type addSerialRequest struct {
	Serial serialCaptureRequest `json:"serial"`
	EmpNo  string               `json:"empNo"`
}

// AddSerial handles POST /api/v1/lines/:lineId/steps/:stepId/serials.
func (s *Server) AddSerial(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req addSerialRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	input, err := req.Serial.toInput()
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddStepSerialCommand(lineID, stepID, input, kernel.EmpNo(req.EmpNo))
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.AddSerial.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

type addChecklistRequest struct {
	ChecklistTemplateID string `json:"checklistTemplateId"`
	ItemCode            string `json:"itemCode"`
	Passed              bool   `json:"passed"`
	FailureNote         string `json:"failureNote"`
	EmpNo               string `json:"empNo"`
}

// AddChecklist handles POST /api/v1/lines/:lineId/steps/:stepId/checklist.
func (s *Server) AddChecklist(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req addChecklistRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	templateID, err := kernel.UUIDFromString(req.ChecklistTemplateID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddChecklistEntryCommand(
		lineID, stepID, templateID,
		req.ItemCode, req.Passed, req.FailureNote, kernel.EmpNo(req.EmpNo))
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.AddChecklist.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

type overrideChecklistRequest struct {
	SupervisorEmpNo string `json:"supervisorEmpNo"`
	ActingRole      string `json:"actingRole"`
}

// OverrideChecklist handles
// POST /api/v1/lines/:lineId/steps/:stepId/checklist/:entryId/override.
func (s *Server) OverrideChecklist(ctx echo.Context) error {
	lineID, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	entryID, err := kernel.UUIDFromString(ctx.Param("entryId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req overrideChecklistRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	actingRole, err := kernel.RoleFromString(req.ActingRole)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewOverrideChecklistItemCommand(
		lineID, stepID, entryID, kernel.EmpNo(req.SupervisorEmpNo), actingRole)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.handlers.OverrideChecklist.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStepLedgers handles GET /api/v1/lines/:lineId/steps/:stepId/ledgers.
func (s *Server) GetStepLedgers(ctx echo.Context) error {
	_, stepID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetStepLedgersQuery(stepID)
	if err != nil {
		return respondError(ctx, err)
	}
	response, err := s.handlers.GetStepLedgers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLineRoute handles GET /api/v1/lines/:lineId/route.
func (s *Server) GetLineRoute(ctx echo.Context) error {
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetLineRouteQuery(lineID)
	if err != nil {
		return respondError(ctx, err)
	}
	response, err := s.handlers.GetLineRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkCenterQueue handles GET /api/v1/work-centers/:workCenterId/queue.
func (s *Server) GetWorkCenterQueue(ctx echo.Context) error {
	workCenterID, err := kernel.UUIDFromString(ctx.Param("workCenterId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetWorkCenterQueueQuery(workCenterID)
	if err != nil {
		return respondError(ctx, err)
	}
	items, err := s.handlers.GetWorkCenterQ.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, items)
}

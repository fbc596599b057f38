package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/core/ports"
)

// RecordStepProgressResult is the refreshed rollup state returned to the
// operator terminal after a progress call.
type RecordStepProgressResult struct {
	QuantityCompleted int
	QuantityScrapped  int
	ReadyToComplete   bool
}

// RecordStepProgressCommandHandler routes one progress request through
// the execution engine. All mutations confirm before any ledger write
// survives: a failed call leaves the route untouched.
type RecordStepProgressCommandHandler struct {
	uowFactory RouteUoWFactory
	queueCache ports.WorkCenterQueueCache
	engine     services.RouteExecutionEngine
	clock      func() time.Time
}

// NewRecordStepProgressCommandHandler creates a handler for progress
// recording.
func NewRecordStepProgressCommandHandler(
	uowFactory RouteUoWFactory,
	queueCache ports.WorkCenterQueueCache,
) RecordStepProgressCommandHandler {
	return RecordStepProgressCommandHandler{
		uowFactory: uowFactory,
		queueCache: queueCache,
		engine:     services.NewRouteExecutionEngine(),
		clock:      time.Now,
	}
}

// Handle applies the progress request and persists the route.
func (h RecordStepProgressCommandHandler) Handle(
	ctx context.Context,
	cmd RecordStepProgressCommand,
) (RecordStepProgressResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordStepProgressResult{}, err
	}

	now := h.clock().UTC()
	serial, err := h.buildSerial(cmd, now)
	if err != nil {
		return RecordStepProgressResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RecordStepProgressResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	routeInstance, err := routeRepo.GetByLineID(ctx, cmd.LineID())
	if err != nil {
		return RecordStepProgressResult{}, err
	}

	result, err := h.engine.RecordProgress(routeInstance, cmd.StepID(), services.ProgressParams{
		QuantityCompleted: cmd.QuantityCompleted(),
		QuantityScrapped:  cmd.QuantityScrapped(),
		Serial:            serial,
		EmpNo:             cmd.EmpNo(),
		Now:               now,
	})
	if err != nil {
		return RecordStepProgressResult{}, err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return RecordStepProgressResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return RecordStepProgressResult{}, err
	}

	invalidateQueue(ctx, h.queueCache, cmd.WorkCenterID())

	return RecordStepProgressResult{
		QuantityCompleted: result.QuantityCompleted,
		QuantityScrapped:  result.QuantityScrapped,
		ReadyToComplete:   result.ReadyToComplete,
	}, nil
}

func (h RecordStepProgressCommandHandler) buildSerial(
	cmd RecordStepProgressCommand,
	now time.Time,
) (*route.SerialCaptureEntry, error) {
	input := cmd.Serial()
	if input == nil {
		return nil, nil
	}
	return route.NewSerialCaptureEntry(
		kernel.NewUUID(),
		input.SerialNo,
		route.SerialCaptureAttributes{
			Manufacturer:    input.Manufacturer,
			ManufactureDate: input.ManufactureDate,
			TestDate:        input.TestDate,
			LidColorID:      input.LidColorID,
			LidSizeID:       input.LidSizeID,
		},
		input.Condition,
		cmd.EmpNo(),
		now,
	)
}

package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/ports"
)

// ScanInStepCommandHandler applies a scan-in to a route step and drops
// the work center's cached queue, since the step's state changed.
type ScanInStepCommandHandler struct {
	uowFactory RouteUoWFactory
	queueCache ports.WorkCenterQueueCache
	clock      func() time.Time
}

// NewScanInStepCommandHandler creates a handler for scan-in events.
func NewScanInStepCommandHandler(
	uowFactory RouteUoWFactory,
	queueCache ports.WorkCenterQueueCache,
) ScanInStepCommandHandler {
	return ScanInStepCommandHandler{
		uowFactory: uowFactory,
		queueCache: queueCache,
		clock:      time.Now,
	}
}

// Handle loads the line's route, scans the step in and persists it.
func (h ScanInStepCommandHandler) Handle(ctx context.Context, cmd ScanInStepCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	routeInstance, err := routeRepo.GetByLineID(ctx, cmd.LineID())
	if err != nil {
		return err
	}

	step, err := routeInstance.Step(cmd.StepID())
	if err != nil {
		return err
	}
	if err = step.ScanIn(cmd.EmpNo(), h.clock().UTC()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidateQueue(ctx, h.queueCache, cmd.WorkCenterID())
	return nil
}

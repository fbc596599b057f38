package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/ports"
)

// ScanOutStepCommandHandler applies a scan-out to a route step.
type ScanOutStepCommandHandler struct {
	uowFactory RouteUoWFactory
	queueCache ports.WorkCenterQueueCache
	clock      func() time.Time
}

// NewScanOutStepCommandHandler creates a handler for scan-out events.
func NewScanOutStepCommandHandler(
	uowFactory RouteUoWFactory,
	queueCache ports.WorkCenterQueueCache,
) ScanOutStepCommandHandler {
	return ScanOutStepCommandHandler{
		uowFactory: uowFactory,
		queueCache: queueCache,
		clock:      time.Now,
	}
}

// Handle stamps scanOutUtc and persists the route.
func (h ScanOutStepCommandHandler) Handle(ctx context.Context, cmd ScanOutStepCommand) error {
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
	if err = step.ScanOut(cmd.EmpNo(), h.clock().UTC()); err != nil {
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

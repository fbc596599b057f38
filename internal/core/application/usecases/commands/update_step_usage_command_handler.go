package commands

import (
	"context"
	"time"
)

// UpdateStepUsageCommandHandler rewrites a usage entry in place.
type UpdateStepUsageCommandHandler struct {
	uowFactory RouteUoWFactory
	clock      func() time.Time
}

// NewUpdateStepUsageCommandHandler creates a handler for usage corrections.
func NewUpdateStepUsageCommandHandler(uowFactory RouteUoWFactory) UpdateStepUsageCommandHandler {
	return UpdateStepUsageCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle applies the correction and persists the route.
func (h UpdateStepUsageCommandHandler) Handle(ctx context.Context, cmd UpdateStepUsageCommand) error {
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
	if err = step.UpdateUsage(
		cmd.EntryID(),
		cmd.PartItemID(),
		cmd.LotBatch(),
		cmd.QuantityUsed(),
		cmd.Uom(),
		cmd.EmpNo(),
		h.clock().UTC(),
	); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

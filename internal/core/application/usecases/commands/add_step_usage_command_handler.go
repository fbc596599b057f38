package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
)

// AddStepUsageCommandHandler appends or merges a material usage entry on
// a route step.
type AddStepUsageCommandHandler struct {
	uowFactory RouteUoWFactory
	clock      func() time.Time
}

// NewAddStepUsageCommandHandler creates a handler for usage recording.
func NewAddStepUsageCommandHandler(uowFactory RouteUoWFactory) AddStepUsageCommandHandler {
	return AddStepUsageCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle records the usage entry and persists the route.
func (h AddStepUsageCommandHandler) Handle(ctx context.Context, cmd AddStepUsageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := route.NewMaterialUsageEntry(
		kernel.NewUUID(),
		cmd.PartItemID(),
		cmd.LotBatch(),
		cmd.QuantityUsed(),
		cmd.Uom(),
		cmd.EmpNo(),
		h.clock().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
	if err = step.AddUsage(entry); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

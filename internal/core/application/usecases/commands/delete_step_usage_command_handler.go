package commands

import (
	"context"
)

// DeleteStepUsageCommandHandler removes a usage entry from a route step.
type DeleteStepUsageCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewDeleteStepUsageCommandHandler creates a handler for usage removal.
func NewDeleteStepUsageCommandHandler(uowFactory RouteUoWFactory) DeleteStepUsageCommandHandler {
	return DeleteStepUsageCommandHandler{uowFactory: uowFactory}
}

// Handle removes the entry and persists the route.
func (h DeleteStepUsageCommandHandler) Handle(ctx context.Context, cmd DeleteStepUsageCommand) error {
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
	if err = step.DeleteUsage(cmd.EntryID(), cmd.EmpNo()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrChecklistOverrideForbidden is returned when the acting role may not
// override failed checklist items.
var ErrChecklistOverrideForbidden = errors.New("role may not override checklist items")

// OverrideChecklistItemCommandHandler applies a supervisor override so a
// failed checklist item no longer blocks completion.
type OverrideChecklistItemCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewOverrideChecklistItemCommandHandler creates a handler for checklist
// overrides.
func NewOverrideChecklistItemCommandHandler(uowFactory RouteUoWFactory) OverrideChecklistItemCommandHandler {
	return OverrideChecklistItemCommandHandler{uowFactory: uowFactory}
}

// Handle applies the override and persists the route.
func (h OverrideChecklistItemCommandHandler) Handle(ctx context.Context, cmd OverrideChecklistItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.ActingRole().CanReview() {
		return fmt.Errorf("%w: role is %s", ErrChecklistOverrideForbidden, cmd.ActingRole())
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
	if err = step.OverrideChecklistItem(cmd.EntryID(), cmd.Supervisor()); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

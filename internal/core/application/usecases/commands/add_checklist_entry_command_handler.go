package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
)

// AddChecklistEntryCommandHandler records a checklist item outcome on a
// route step.
type AddChecklistEntryCommandHandler struct {
	uowFactory RouteUoWFactory
	clock      func() time.Time
}

// NewAddChecklistEntryCommandHandler creates a handler for checklist
// recording.
func NewAddChecklistEntryCommandHandler(uowFactory RouteUoWFactory) AddChecklistEntryCommandHandler {
	return AddChecklistEntryCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle records the checklist outcome and persists the route.
func (h AddChecklistEntryCommandHandler) Handle(ctx context.Context, cmd AddChecklistEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := route.NewChecklistEntry(
		kernel.NewUUID(),
		cmd.ChecklistTemplateID(),
		cmd.ItemCode(),
		cmd.Passed(),
		cmd.FailureNote(),
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
	if err = step.AddChecklistEntry(entry); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

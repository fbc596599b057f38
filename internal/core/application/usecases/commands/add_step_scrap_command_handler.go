package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
)

// AddStepScrapCommandHandler appends a scrap entry to a route step.
type AddStepScrapCommandHandler struct {
	uowFactory RouteUoWFactory
	clock      func() time.Time
}

// NewAddStepScrapCommandHandler creates a handler for scrap recording.
func NewAddStepScrapCommandHandler(uowFactory RouteUoWFactory) AddStepScrapCommandHandler {
	return AddStepScrapCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle records the scrap entry and persists the route.
func (h AddStepScrapCommandHandler) Handle(ctx context.Context, cmd AddStepScrapCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := route.NewScrapEntry(
		kernel.NewUUID(),
		cmd.QuantityScrapped(),
		cmd.ScrapReasonID(),
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
	if err = step.AddScrap(entry); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
)

// AddStepSerialCommandHandler appends a serial capture to a route step.
type AddStepSerialCommandHandler struct {
	uowFactory RouteUoWFactory
	clock      func() time.Time
}

// NewAddStepSerialCommandHandler creates a handler for serial capture.
func NewAddStepSerialCommandHandler(uowFactory RouteUoWFactory) AddStepSerialCommandHandler {
	return AddStepSerialCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle records the serial and persists the route. A serial already
// captured on the step is rejected and the ledger stays unchanged.
func (h AddStepSerialCommandHandler) Handle(ctx context.Context, cmd AddStepSerialCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	input := cmd.Serial()
	entry, err := route.NewSerialCaptureEntry(
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
	if err = step.AddSerial(entry); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

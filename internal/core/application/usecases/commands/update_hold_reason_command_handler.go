package commands

import (
	"context"
)

// UpdateHoldReasonCommandHandler rewrites a reason code's mutable fields
// after the administrator gate.
type UpdateHoldReasonCommandHandler struct {
	uowFactory ReasonUoWFactory
}

// NewUpdateHoldReasonCommandHandler creates a handler for reason updates.
func NewUpdateHoldReasonCommandHandler(uowFactory ReasonUoWFactory) UpdateHoldReasonCommandHandler {
	return UpdateHoldReasonCommandHandler{uowFactory: uowFactory}
}

// Handle loads, mutates and stores the reason code.
func (h UpdateHoldReasonCommandHandler) Handle(ctx context.Context, cmd UpdateHoldReasonCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.ActingRole().CanAdminister() {
		return ErrReasonAdministrationForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reasonRepo := uow.HoldReasonRepository()
	reason, err := reasonRepo.Get(ctx, cmd.ReasonID())
	if err != nil {
		return err
	}

	reason.Update(cmd.Description(), cmd.Active())

	if err = reasonRepo.Update(ctx, reason); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// DeleteHoldReasonCommandHandler removes a reason code after the
// administrator gate.
type DeleteHoldReasonCommandHandler struct {
	uowFactory ReasonUoWFactory
}

// NewDeleteHoldReasonCommandHandler creates a handler for reason deletion.
func NewDeleteHoldReasonCommandHandler(uowFactory ReasonUoWFactory) DeleteHoldReasonCommandHandler {
	return DeleteHoldReasonCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the reason code from configuration.
func (h DeleteHoldReasonCommandHandler) Handle(ctx context.Context, cmd DeleteHoldReasonCommand) error {
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

	if err := uow.HoldReasonRepository().Delete(ctx, cmd.ReasonID()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

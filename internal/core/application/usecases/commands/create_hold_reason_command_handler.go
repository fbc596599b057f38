package commands

import (
	"context"

	"shopfloor/internal/core/domain/model/order"
)

// CreateHoldReasonCommandHandler persists a new reason code after the
// administrator gate.
type CreateHoldReasonCommandHandler struct {
	uowFactory ReasonUoWFactory
}

// NewCreateHoldReasonCommandHandler creates a handler for reason creation.
func NewCreateHoldReasonCommandHandler(uowFactory ReasonUoWFactory) CreateHoldReasonCommandHandler {
	return CreateHoldReasonCommandHandler{uowFactory: uowFactory}
}

// Handle stores the new code, active, under its (type, code) key.
func (h CreateHoldReasonCommandHandler) Handle(ctx context.Context, cmd CreateHoldReasonCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.ActingRole().CanAdminister() {
		return ErrReasonAdministrationForbidden
	}

	reason, err := order.NewHoldReasonCode(cmd.ReasonID(), cmd.HoldType(), cmd.Code(), cmd.Description())
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

	if err = uow.HoldReasonRepository().Add(ctx, reason); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

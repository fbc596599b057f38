package commands

import (
	"context"
)

// ClearHoldCommandHandler clears an order's hold overlay. Fails when no
// overlay is applied; never alters the lifecycle status.
type ClearHoldCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClearHoldCommandHandler creates a handler for hold clearing.
func NewClearHoldCommandHandler(uowFactory OrderUoWFactory) ClearHoldCommandHandler {
	return ClearHoldCommandHandler{uowFactory: uowFactory}
}

// Handle removes the overlay and persists the order.
func (h ClearHoldCommandHandler) Handle(ctx context.Context, cmd ClearHoldCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ClearHold(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/order"
)

// ErrReasonCodeInactive rejects a hold using a retired reason code.
var ErrReasonCodeInactive = errors.New(
	"reason code is no longer active for new holds")

// ApplyHoldCommandHandler resolves the submitted reason code against the
// configured codes for the overlay type, then sets the overlay on the
// order atomically.
type ApplyHoldCommandHandler struct {
	uowFactory OrderReasonUoWFactory
}

// NewApplyHoldCommandHandler creates a handler for hold application.
func NewApplyHoldCommandHandler(uowFactory OrderReasonUoWFactory) ApplyHoldCommandHandler {
	return ApplyHoldCommandHandler{uowFactory: uowFactory}
}

// Handle applies the hold overlay. Applying over an existing overlay
// replaces it; the lifecycle status is unchanged either way.
func (h ApplyHoldCommandHandler) Handle(ctx context.Context, cmd ApplyHoldCommand) error {
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

	reason, err := uow.HoldReasonRepository().GetByTypeAndCode(ctx, cmd.HoldType(), cmd.ReasonCode())
	if err != nil {
		return err
	}
	if !reason.IsActive() {
		return ErrReasonCodeInactive
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	overlay, err := order.NewHoldOverlay(cmd.HoldType(), reason.Code(), cmd.ActingRole(), cmd.Note())
	if err != nil {
		return err
	}
	if err = aggregate.ApplyHold(overlay); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

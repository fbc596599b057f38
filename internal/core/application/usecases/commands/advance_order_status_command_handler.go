package commands

import (
	"context"
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/services"
)

// ErrProductionIncomplete rejects advancement to ProductionComplete while
// any route on any line is still active.
var ErrProductionIncomplete = errors.New(
	"order has unfinished routes; every line's route must complete first")

// AdvanceOrderStatusCommandHandler executes lifecycle transitions. The
// order aggregate enforces the hold overlay, required fields and the
// successor rule; the handler adds the one cross-aggregate check, reading
// route completion in the same transaction that moves the order.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderRouteUoWFactory
	engine     services.RouteExecutionEngine
	clock      func() time.Time
}

// NewAdvanceOrderStatusCommandHandler creates a handler for lifecycle
// advancement.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderRouteUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewRouteExecutionEngine(),
		clock:      time.Now,
	}
}

// Handle advances the order and persists the new status with its stage
// timestamp. No partial mutation survives a failed precondition.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	if cmd.TargetStatus() == order.ProductionComplete {
		routes, routesErr := uow.RouteRepository().GetAllByOrderID(ctx, cmd.OrderID())
		if routesErr != nil {
			return routesErr
		}
		if !h.engine.AllRoutesComplete(routes) {
			return ErrProductionIncomplete
		}
	}

	if err = aggregate.Advance(cmd.TargetStatus(), cmd.ActingEmpNo(), h.clock().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

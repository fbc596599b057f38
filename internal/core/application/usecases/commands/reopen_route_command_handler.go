package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrRouteReopenForbidden is returned when the acting role may not
// reopen completed routes.
var ErrRouteReopenForbidden = errors.New("role may not reopen completed routes")

// ReopenRouteCommandHandler returns a completed route to active
// execution. Steps go back to InProgress where a scan-in exists, Pending
// otherwise; every capture ledger survives the reopen.
type ReopenRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewReopenRouteCommandHandler creates a handler for route reopening.
func NewReopenRouteCommandHandler(uowFactory RouteUoWFactory) ReopenRouteCommandHandler {
	return ReopenRouteCommandHandler{uowFactory: uowFactory}
}

// Handle reopens the route and persists it.
func (h ReopenRouteCommandHandler) Handle(ctx context.Context, cmd ReopenRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.ActingRole().CanReview() {
		return fmt.Errorf("%w: role is %s", ErrRouteReopenForbidden, cmd.ActingRole())
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
	if err = routeInstance.ReopenCompletedSteps(); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/review"
)

// ValidateRouteCommandHandler records a route-validation outcome for an
// order line.
type ValidateRouteCommandHandler struct {
	uowFactory ReviewUoWFactory
	clock      func() time.Time
}

// NewValidateRouteCommandHandler creates a handler for route validation.
func NewValidateRouteCommandHandler(uowFactory ReviewUoWFactory) ValidateRouteCommandHandler {
	return ValidateRouteCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle opens a route-validation record and decides it with the
// validator's identity. Any authenticated role may validate.
func (h ValidateRouteCommandHandler) Handle(ctx context.Context, cmd ValidateRouteCommand) error {
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

	routeInstance, err := uow.RouteRepository().GetByLineID(ctx, cmd.LineID())
	if err != nil {
		return err
	}

	now := h.clock().UTC()
	record, err := review.NewReviewRecord(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.LineID(),
		routeInstance.ID(),
		review.RouteValidation,
		now,
	)
	if err != nil {
		return err
	}
	if err = record.Approve(cmd.EmpNo(), cmd.ActingRole(), cmd.Note(), now); err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, record); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

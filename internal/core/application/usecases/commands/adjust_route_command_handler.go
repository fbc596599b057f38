package commands

import (
	"context"
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/review"
	"shopfloor/internal/pkg/errs"
)

// ErrReviewAlreadyPending rejects a second adjustment proposal while one
// awaits a supervisor decision.
var ErrReviewAlreadyPending = errors.New("an adjustment review is already pending for this line")

// AdjustRouteCommandHandler applies a draft's structural changes to the
// route and opens the pending supervisor review recording what changed.
type AdjustRouteCommandHandler struct {
	uowFactory ReviewUoWFactory
	clock      func() time.Time
}

// NewAdjustRouteCommandHandler creates a handler for adjustment proposals.
func NewAdjustRouteCommandHandler(uowFactory ReviewUoWFactory) AdjustRouteCommandHandler {
	return AdjustRouteCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle applies the draft to the route in the same transaction that
// opens the review. A duplicate sequence in the draft rejects the call
// before anything mutates; the diff is frozen against the pre-adjustment
// steps.
func (h AdjustRouteCommandHandler) Handle(ctx context.Context, cmd AdjustRouteCommand) error {
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

	routeRepo := uow.RouteRepository()
	routeInstance, err := routeRepo.GetByLineID(ctx, cmd.LineID())
	if err != nil {
		return err
	}

	reviewRepo := uow.ReviewRepository()
	pending, err := reviewRepo.GetPendingForLine(ctx, cmd.LineID(), review.SupervisorReview)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if pending != nil {
		return ErrReviewAlreadyPending
	}

	diffs := review.ComputeDiff(routeInstance.Steps(), cmd.Adjustments())
	if err = routeInstance.ApplyAdjustments(cmd.Adjustments()); err != nil {
		return err
	}

	record, err := review.NewAdjustmentReview(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.LineID(),
		routeInstance.ID(),
		cmd.Adjustments(),
		diffs,
		h.clock().UTC(),
	)
	if err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return err
	}
	if err = reviewRepo.Add(ctx, record); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/review"
)

// DecideRouteReviewCommandHandler records a supervisor decision on the
// pending adjustment review. The route changed when the adjustment was
// applied; neither approval nor rejection touches its steps. A rejection
// tells the submitter to correct the route through a further adjustment
// or a reopen.
type DecideRouteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	clock      func() time.Time
}

// NewDecideRouteReviewCommandHandler creates a handler for supervisor
// decisions.
func NewDecideRouteReviewCommandHandler(uowFactory ReviewUoWFactory) DecideRouteReviewCommandHandler {
	return DecideRouteReviewCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle decides the pending review.
func (h DecideRouteReviewCommandHandler) Handle(ctx context.Context, cmd DecideRouteReviewCommand) error {
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

	reviewRepo := uow.ReviewRepository()
	record, err := reviewRepo.GetPendingForLine(ctx, cmd.LineID(), review.SupervisorReview)
	if err != nil {
		return err
	}

	now := h.clock().UTC()
	if cmd.Approved() {
		err = record.Approve(cmd.Reviewer(), cmd.ActingRole(), cmd.Note(), now)
	} else {
		err = record.Reject(cmd.Reviewer(), cmd.ActingRole(), cmd.Note(), now)
	}
	if err != nil {
		return err
	}

	if err = reviewRepo.Update(ctx, record); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/core/ports"
)

// CompleteStepResult tells the operator terminal where to go next after a
// completion: the next pending step of the same route, if any.
type CompleteStepResult struct {
	RouteComplete    bool
	NextStepID       *kernel.UUID
	NextStepSequence int
}

// CompleteStepCommandHandler finalizes a step through the capture gate
// and requeues the operator on the next pending step.
type CompleteStepCommandHandler struct {
	uowFactory RouteUoWFactory
	queueCache ports.WorkCenterQueueCache
	engine     services.RouteExecutionEngine
	clock      func() time.Time
}

// NewCompleteStepCommandHandler creates a handler for step completion.
func NewCompleteStepCommandHandler(
	uowFactory RouteUoWFactory,
	queueCache ports.WorkCenterQueueCache,
) CompleteStepCommandHandler {
	return CompleteStepCommandHandler{
		uowFactory: uowFactory,
		queueCache: queueCache,
		engine:     services.NewRouteExecutionEngine(),
		clock:      time.Now,
	}
}

// Handle completes the step and persists the route. Gate errors name the
// unmet requirement category and leave the route untouched.
func (h CompleteStepCommandHandler) Handle(ctx context.Context, cmd CompleteStepCommand) (CompleteStepResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteStepResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteStepResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	routeInstance, err := routeRepo.GetByLineID(ctx, cmd.LineID())
	if err != nil {
		return CompleteStepResult{}, err
	}

	next, err := h.engine.Complete(
		routeInstance, cmd.StepID(), cmd.EmpNo(), cmd.ManualDurationMinutes(), h.clock().UTC())
	if err != nil {
		return CompleteStepResult{}, err
	}

	if err = routeRepo.Update(ctx, routeInstance); err != nil {
		return CompleteStepResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return CompleteStepResult{}, err
	}

	invalidateQueue(ctx, h.queueCache, cmd.WorkCenterID())

	result := CompleteStepResult{RouteComplete: routeInstance.IsComplete()}
	if next != nil {
		nextID := next.ID()
		result.NextStepID = &nextID
		result.NextStepSequence = next.Sequence()
	}
	return result, nil
}

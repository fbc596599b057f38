package services

import (
	"errors"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
)

// ErrQuantityIgnoredInSingleUnit rejects a progress call that supplies a
// batch quantity to a single-unit step: each call is exactly one unit.
var ErrQuantityIgnoredInSingleUnit = errors.New(
	"single-unit steps record exactly one unit per call; omit quantityCompleted")

// ProgressParams carries one progress-recording request into the engine.
// BatchQuantity steps read the quantities; SingleUnit steps read the
// serial.
type ProgressParams struct {
	QuantityCompleted int
	QuantityScrapped  int
	Serial            *route.SerialCaptureEntry
	EmpNo             kernel.EmpNo
	Now               time.Time
}

// ProgressResult reports the rollups after a progress call and, for
// single-unit steps, whether the step is ready to complete.
type ProgressResult struct {
	QuantityCompleted int
	QuantityScrapped  int
	ReadyToComplete   bool
}

// RouteExecutionEngine is the domain service in front of route execution:
// it dispatches progress recording by processing mode and turns step
// completion into the operator's next assignment. The two modes share one
// step state machine; only the progress-recording behavior differs.
type RouteExecutionEngine struct{}

// NewRouteExecutionEngine creates a new RouteExecutionEngine instance.
func NewRouteExecutionEngine() RouteExecutionEngine {
	return RouteExecutionEngine{}
}

// RecordProgress applies one progress request to a step, dispatching on
// the step's processing mode.
func (e RouteExecutionEngine) RecordProgress(
	r *route.RouteInstance,
	stepID kernel.UUID,
	params ProgressParams,
) (ProgressResult, error) {
	if err := r.Validate(); err != nil {
		return ProgressResult{}, err
	}

	step, err := r.Step(stepID)
	if err != nil {
		return ProgressResult{}, err
	}

	switch step.ProcessingMode() {
	case route.SingleUnit:
		if params.QuantityCompleted > 1 {
			return ProgressResult{}, ErrQuantityIgnoredInSingleUnit
		}
		ready, unitErr := r.RecordSingleUnitProgress(stepID, params.Serial, params.EmpNo, params.Now)
		if unitErr != nil {
			return ProgressResult{}, unitErr
		}
		return e.result(r, ready), nil
	default:
		if batchErr := r.RecordBatchProgress(
			stepID, params.QuantityCompleted, params.QuantityScrapped, params.EmpNo,
		); batchErr != nil {
			return ProgressResult{}, batchErr
		}
		return e.result(r, false), nil
	}
}

// Complete finalizes a step through the route's capture gate and returns
// the next pending step to requeue the operator on, nil when the route
// finished.
func (e RouteExecutionEngine) Complete(
	r *route.RouteInstance,
	stepID kernel.UUID,
	empNo kernel.EmpNo,
	manualDurationMinutes *int,
	now time.Time,
) (*route.Step, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.CompleteStep(stepID, empNo, manualDurationMinutes, now)
}

// AllRoutesComplete reports whether every route across an order's lines
// has finished. Lifecycle advancement to ProductionComplete requires it.
func (e RouteExecutionEngine) AllRoutesComplete(routes []*route.RouteInstance) bool {
	if len(routes) == 0 {
		return false
	}
	for _, r := range routes {
		if !r.IsComplete() {
			return false
		}
	}
	return true
}

func (e RouteExecutionEngine) result(r *route.RouteInstance, ready bool) ProgressResult {
	return ProgressResult{
		QuantityCompleted: r.QuantityCompleted(),
		QuantityScrapped:  r.QuantityScrapped(),
		ReadyToComplete:   ready,
	}
}

package route

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var (
	ErrRouteIsNotConstructed = errors.New(
		"RouteInstance must be created via NewRouteInstance constructor")

	// ErrSerialRequiredWithUnit rejects a single-unit progress call that
	// omits the serial capture on a step requiring one.
	ErrSerialRequiredWithUnit = errors.New(
		"step requires serial capture; supply a serial with each unit")

	// ErrQuantityShort rejects completion of a single-unit step before
	// every received unit has been recorded.
	ErrQuantityShort = errors.New(
		"single-unit step cannot complete before all received units are recorded")
)

// RouteState represents the overall state of a route instance.
type RouteState int

const (
	RouteStateUnknown RouteState = iota

	// RouteActive means at least one step has not completed.
	RouteActive

	// RouteCompleted means every step has completed.
	RouteCompleted
)

// Validate checks that the state is Active or Completed.
func (s RouteState) Validate() error {
	if s != RouteActive && s != RouteCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"routeState", fmt.Errorf("%d is not a valid route state", s))
	}
	return nil
}

// String returns the state name.
func (s RouteState) String() string {
	switch s {
	case RouteActive:
		return "Active"
	case RouteCompleted:
		return "Completed"
	case RouteStateUnknown:
	}
	return "Unknown"
}

// RouteInstance is the aggregate root for one order line's production
// route: the ordered steps plus the quantity rollups shared by all of
// them.
//
// Invariants:
//   - 0 <= quantityCompleted <= quantityReceived
//   - quantityCompleted + quantityScrapped <= quantityReceived
//   - step sequences are unique within the route
//
// quantityCompleted and quantityScrapped are aggregate-level rollups, not
// per-step counters: progress recorded at any step advances the same
// totals.
type RouteInstance struct {
	id                kernel.UUID
	lineID            kernel.UUID
	state             RouteState
	quantityOrdered   int
	quantityReceived  int
	quantityCompleted int
	quantityScrapped  int
	steps             []*Step

	isConstructed bool
}

// NewRouteInstance creates an active, empty route for an order line.
func NewRouteInstance(id, lineID kernel.UUID, quantityOrdered, quantityReceived int) (*RouteInstance, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := lineID.Validate(); err != nil {
		return nil, err
	}
	if quantityOrdered <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantityOrdered", fmt.Errorf("%d is not greater than 0", quantityOrdered))
	}
	if quantityReceived < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantityReceived", fmt.Errorf("%d is negative", quantityReceived))
	}

	return &RouteInstance{
		id:               id,
		lineID:           lineID,
		state:            RouteActive,
		quantityOrdered:  quantityOrdered,
		quantityReceived: quantityReceived,
		isConstructed:    true,
	}, nil
}

// RestoreRouteInstance reconstructs a route and its steps from persistence.
func RestoreRouteInstance(
	id, lineID kernel.UUID,
	state RouteState,
	quantityOrdered, quantityReceived, quantityCompleted, quantityScrapped int,
	steps []*Step,
) (*RouteInstance, error) {
	r, err := NewRouteInstance(id, lineID, quantityOrdered, quantityReceived)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}
	if quantityCompleted < 0 || quantityCompleted > quantityReceived {
		return nil, errs.NewValueIsOutOfRangeError(
			"quantityCompleted", quantityCompleted, 0, quantityReceived)
	}
	if quantityCompleted+quantityScrapped > quantityReceived {
		return nil, errs.NewValueIsOutOfRangeError(
			"quantityScrapped", quantityScrapped, 0, quantityReceived-quantityCompleted)
	}

	for _, step := range steps {
		if addErr := r.AddStep(step); addErr != nil {
			return nil, addErr
		}
	}

	r.state = state
	r.quantityCompleted = quantityCompleted
	r.quantityScrapped = quantityScrapped
	return r, nil
}

// Validate ensures the route was created through its constructors.
func (r *RouteInstance) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route's unique identifier.
func (r *RouteInstance) ID() kernel.UUID { return r.id }

// LineID returns the order line this route produces.
func (r *RouteInstance) LineID() kernel.UUID { return r.lineID }

// State returns the route's overall state.
func (r *RouteInstance) State() RouteState { return r.state }

// QuantityOrdered returns the line's ordered quantity.
func (r *RouteInstance) QuantityOrdered() int { return r.quantityOrdered }

// QuantityReceived returns the quantity received for production.
func (r *RouteInstance) QuantityReceived() int { return r.quantityReceived }

// QuantityCompleted returns the aggregate completed rollup.
func (r *RouteInstance) QuantityCompleted() int { return r.quantityCompleted }

// QuantityScrapped returns the aggregate scrapped rollup.
func (r *RouteInstance) QuantityScrapped() int { return r.quantityScrapped }

// Steps returns the steps ordered by sequence.
func (r *RouteInstance) Steps() []*Step {
	sorted := make([]*Step, len(r.steps))
	copy(sorted, r.steps)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Sequence() < sorted[j].Sequence()
	})
	return sorted
}

// Step finds a step by its identifier.
func (r *RouteInstance) Step(stepID kernel.UUID) (*Step, error) {
	for _, s := range r.steps {
		if s.ID().IsEqual(stepID) {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("stepId", stepID.String())
}

// AddStep attaches a step to the route. The sequence must be unique and
// the step must belong to this route.
func (r *RouteInstance) AddStep(step *Step) error {
	if err := step.Validate(); err != nil {
		return err
	}
	if !step.RouteInstanceID().IsEqual(r.id) {
		return errs.NewValueIsInvalidErrorWithCause(
			"routeInstanceId", errors.New("step belongs to a different route"))
	}
	for _, existing := range r.steps {
		if existing.Sequence() == step.Sequence() {
			return errs.NewValueIsInvalidErrorWithCause(
				"stepSequence", fmt.Errorf("sequence %d already used", step.Sequence()))
		}
	}
	r.steps = append(r.steps, step)
	return nil
}

// NextPendingStep returns the lowest-sequence pending step, or nil when
// no step is pending. Completion uses it to requeue the operator.
func (r *RouteInstance) NextPendingStep() *Step {
	var next *Step
	for _, s := range r.steps {
		if s.State() != StepPending {
			continue
		}
		if next == nil || s.Sequence() < next.Sequence() {
			next = s
		}
	}
	return next
}

// RecordBatchProgress adds a completed-quantity increment from a
// batch-quantity step to the aggregate rollups. The step must have been
// scanned in, the increment must be positive and the resulting rollups
// must respect the received quantity.
func (r *RouteInstance) RecordBatchProgress(
	stepID kernel.UUID,
	quantityCompleted, quantityScrapped int,
	empNo kernel.EmpNo,
) error {
	if err := empNo.Validate(); err != nil {
		return err
	}

	step, err := r.Step(stepID)
	if err != nil {
		return err
	}
	if step.ProcessingMode() != BatchQuantity {
		return errs.NewValueIsInvalidErrorWithCause(
			"processingMode", errors.New("step is not in batch-quantity mode"))
	}
	if step.State() == StepCompleted {
		return ErrStepAlreadyCompleted
	}
	if step.State() != StepInProgress {
		return ErrStepNotInProgress
	}
	if quantityCompleted <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityCompleted", fmt.Errorf("%d is not greater than 0", quantityCompleted))
	}
	if quantityScrapped < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityScrapped", fmt.Errorf("%d is negative", quantityScrapped))
	}

	if r.quantityCompleted+quantityCompleted > r.quantityReceived {
		return errs.NewValueIsOutOfRangeError("quantityCompleted",
			r.quantityCompleted+quantityCompleted, 0, r.quantityReceived)
	}
	if r.quantityCompleted+quantityCompleted+r.quantityScrapped+quantityScrapped > r.quantityReceived {
		return errs.NewValueIsOutOfRangeError("quantityScrapped",
			r.quantityScrapped+quantityScrapped, 0,
			r.quantityReceived-r.quantityCompleted-quantityCompleted)
	}

	r.quantityCompleted += quantityCompleted
	r.quantityScrapped += quantityScrapped
	return nil
}

// RecordSingleUnitProgress records exactly one produced unit on a
// single-unit step:
//
//   - a pending step is scanned in implicitly
//   - a step requiring serial capture must receive a serial in the same
//     call, and the serial must be new for the step
//   - materials already listed on the step each absorb one unit of usage
//     when the step requires usage entries
//   - the aggregate completed rollup advances by one, never past what
//     the received quantity leaves after scrap
//
// It returns true when the step is ready to complete, i.e. the completed
// rollup now equals the received quantity.
func (r *RouteInstance) RecordSingleUnitProgress(
	stepID kernel.UUID,
	serial *SerialCaptureEntry,
	empNo kernel.EmpNo,
	now time.Time,
) (readyToComplete bool, err error) {
	if err = empNo.Validate(); err != nil {
		return false, err
	}

	step, err := r.Step(stepID)
	if err != nil {
		return false, err
	}
	if step.ProcessingMode() != SingleUnit {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"processingMode", errors.New("step is not in single-unit mode"))
	}
	if step.State() == StepCompleted {
		return false, ErrStepAlreadyCompleted
	}
	if step.RequiresSerialCapture() && serial == nil {
		return false, ErrSerialRequiredWithUnit
	}
	if r.quantityCompleted+1 > r.quantityReceived {
		return false, errs.NewValueIsOutOfRangeError(
			"quantityCompleted", r.quantityCompleted+1, 0, r.quantityReceived)
	}
	if r.quantityCompleted+1+r.quantityScrapped > r.quantityReceived {
		return false, errs.NewValueIsOutOfRangeError(
			"quantityCompleted", r.quantityCompleted+1, 0,
			r.quantityReceived-r.quantityScrapped)
	}

	// Checks done; mutate in dependency order so a duplicate serial
	// aborts before any rollup moves.
	if serial != nil {
		if err = step.AddSerial(serial); err != nil {
			return false, err
		}
	}
	if step.State() != StepInProgress {
		if err = step.ScanIn(empNo, now); err != nil {
			return false, err
		}
	}
	if step.RequiresUsageEntry() && len(step.Usage()) > 0 {
		step.consumeUnitMaterials(empNo, now)
	}

	r.quantityCompleted++
	return r.quantityCompleted == r.quantityReceived, nil
}

// CompleteStep finalizes a step once the capture gate passes. Single-unit
// steps additionally require the completed rollup to equal the received
// quantity. The returned step is the next pending one, for requeueing the
// operator; nil when the route is finished.
func (r *RouteInstance) CompleteStep(
	stepID kernel.UUID,
	empNo kernel.EmpNo,
	manualDurationMinutes *int,
	now time.Time,
) (*Step, error) {
	step, err := r.Step(stepID)
	if err != nil {
		return nil, err
	}
	if step.State() == StepCompleted {
		return nil, ErrStepAlreadyCompleted
	}

	gate := step.EvaluateGate(empNo)
	if step.ProcessingMode() == SingleUnit && r.quantityCompleted != r.quantityReceived {
		gate.Unmet = append(gate.Unmet, RequirementQuantity)
	}
	if gateErr := gate.Err(); gateErr != nil {
		return nil, gateErr
	}

	if err = step.markCompleted(manualDurationMinutes, now); err != nil {
		return nil, err
	}

	if r.allStepsCompleted() {
		r.state = RouteCompleted
		return nil, nil
	}
	return r.NextPendingStep(), nil
}

// ReopenCompletedSteps is the review workflow's exception path: every
// completed step returns to an editable state and the route becomes
// active again. Ledger entries are preserved.
func (r *RouteInstance) ReopenCompletedSteps() error {
	reopened := false
	for _, s := range r.steps {
		if s.State() != StepCompleted {
			continue
		}
		if err := s.reopen(); err != nil {
			return err
		}
		reopened = true
	}
	if !reopened {
		return errs.NewValueIsInvalidErrorWithCause(
			"routeState", errors.New("route has no completed steps to reopen"))
	}
	r.state = RouteActive
	return nil
}

// StepAdjustment is one row of a review draft: the target sequence and
// work center for a step.
type StepAdjustment struct {
	StepID       kernel.UUID
	Sequence     int
	WorkCenterID kernel.UUID
}

// ApplyAdjustments applies a review draft's structural changes. The draft
// must not assign the same sequence twice, nor collide with a step it does
// not mention. Nothing is mutated when validation fails.
func (r *RouteInstance) ApplyAdjustments(draft []StepAdjustment) error {
	seen := make(map[int]kernel.UUID, len(r.steps))
	drafted := make(map[string]StepAdjustment, len(draft))

	for _, adj := range draft {
		if _, err := r.Step(adj.StepID); err != nil {
			return err
		}
		if holder, dup := seen[adj.Sequence]; dup {
			return errs.NewValueIsInvalidErrorWithCause("stepSequence",
				fmt.Errorf("sequence %d assigned to both %s and %s",
					adj.Sequence, holder.String(), adj.StepID.String()))
		}
		seen[adj.Sequence] = adj.StepID
		drafted[adj.StepID.String()] = adj
	}
	for _, s := range r.steps {
		if _, inDraft := drafted[s.ID().String()]; inDraft {
			continue
		}
		if holder, dup := seen[s.Sequence()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("stepSequence",
				fmt.Errorf("sequence %d assigned to %s collides with unchanged step %s",
					s.Sequence(), holder.String(), s.ID().String()))
		}
		seen[s.Sequence()] = s.ID()
	}

	for _, adj := range draft {
		step, _ := r.Step(adj.StepID)
		if err := step.applyAdjustment(adj.Sequence, adj.WorkCenterID); err != nil {
			return err
		}
	}
	return nil
}

// IsComplete reports whether every step has completed.
func (r *RouteInstance) IsComplete() bool {
	return r.state == RouteCompleted
}

func (r *RouteInstance) allStepsCompleted() bool {
	for _, s := range r.steps {
		if s.State() != StepCompleted {
			return false
		}
	}
	return len(r.steps) > 0
}

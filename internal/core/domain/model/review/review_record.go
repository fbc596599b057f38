package review

import (
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
	"shopfloor/internal/pkg/errs"
)

var (
	ErrReviewRecordIsNotConstructed = errors.New(
		"ReviewRecord must be created via NewReviewRecord constructor")

	// ErrAlreadyDecided rejects a second decision on the same record.
	ErrAlreadyDecided = errors.New("review record has already been decided")

	// ErrReviewerRoleInsufficient rejects a supervisor-review decision from
	// a role without review authority.
	ErrReviewerRoleInsufficient = errors.New(
		"supervisor review decisions require a supervisor or administrator")
)

// ReviewRecord is the aggregate for one review of one order line's route,
// in one phase. A record starts pending and is decided exactly once;
// adjustment reviews carry the applied draft and its structural diff,
// frozen when the adjustment ran.
type ReviewRecord struct {
	id              kernel.UUID
	orderID         kernel.UUID
	lineID          kernel.UUID
	routeInstanceID kernel.UUID
	phase           Phase
	decision        Decision
	reviewer        *kernel.EmpNo
	note            string
	draft           []route.StepAdjustment
	diffs           []StepDiff
	createdUtc      time.Time
	decidedUtc      *time.Time

	isConstructed bool
}

// NewReviewRecord opens a pending review for a line's route in the given
// phase.
func NewReviewRecord(
	id, orderID, lineID, routeInstanceID kernel.UUID,
	phase Phase,
	createdUtc time.Time,
) (*ReviewRecord, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		lineID.Validate(),
		routeInstanceID.Validate(),
		phase.Validate(),
	); err != nil {
		return nil, err
	}

	return &ReviewRecord{
		id:              id,
		orderID:         orderID,
		lineID:          lineID,
		routeInstanceID: routeInstanceID,
		phase:           phase,
		decision:        DecisionPending,
		createdUtc:      createdUtc,
		isConstructed:   true,
	}, nil
}

// NewAdjustmentReview opens a pending supervisor review for an applied
// step adjustment. The draft has already changed the route; the record
// carries it together with the structural diff it produced, awaiting the
// supervisor's decision.
func NewAdjustmentReview(
	id, orderID, lineID, routeInstanceID kernel.UUID,
	draft []route.StepAdjustment,
	diffs []StepDiff,
	createdUtc time.Time,
) (*ReviewRecord, error) {
	if len(draft) == 0 {
		return nil, errs.NewValueIsRequiredError("draft")
	}
	r, err := NewReviewRecord(id, orderID, lineID, routeInstanceID, SupervisorReview, createdUtc)
	if err != nil {
		return nil, err
	}
	r.draft = draft
	r.diffs = diffs
	return r, nil
}

// RestoreReviewRecord reconstructs a record from persistence.
func RestoreReviewRecord(
	id, orderID, lineID, routeInstanceID kernel.UUID,
	phase Phase,
	decision Decision,
	reviewer *kernel.EmpNo,
	note string,
	draft []route.StepAdjustment,
	diffs []StepDiff,
	createdUtc time.Time,
	decidedUtc *time.Time,
) (*ReviewRecord, error) {
	r, err := NewReviewRecord(id, orderID, lineID, routeInstanceID, phase, createdUtc)
	if err != nil {
		return nil, err
	}
	if err = decision.Validate(); err != nil {
		return nil, err
	}
	if decision != DecisionPending && decidedUtc == nil {
		return nil, errs.NewValueIsRequiredError("decidedUtc")
	}

	r.decision = decision
	r.reviewer = reviewer
	r.note = note
	r.draft = draft
	r.diffs = diffs
	r.decidedUtc = decidedUtc
	return r, nil
}

// Validate ensures the record was created through its constructors.
func (r *ReviewRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *ReviewRecord) ID() kernel.UUID { return r.id }

// OrderID returns the reviewed order.
func (r *ReviewRecord) OrderID() kernel.UUID { return r.orderID }

// LineID returns the reviewed order line.
func (r *ReviewRecord) LineID() kernel.UUID { return r.lineID }

// RouteInstanceID returns the reviewed route instance.
func (r *ReviewRecord) RouteInstanceID() kernel.UUID { return r.routeInstanceID }

// Phase returns the review phase.
func (r *ReviewRecord) Phase() Phase { return r.phase }

// Decision returns the current decision.
func (r *ReviewRecord) Decision() Decision { return r.decision }

// Reviewer returns who decided the record, nil while pending.
func (r *ReviewRecord) Reviewer() *kernel.EmpNo { return r.reviewer }

// Note returns the reviewer's note.
func (r *ReviewRecord) Note() string { return r.note }

// Draft returns the applied adjustments under review, nil for
// route-validation reviews.
func (r *ReviewRecord) Draft() []route.StepAdjustment { return r.draft }

// Diffs returns the structural changes frozen when the adjustment ran.
func (r *ReviewRecord) Diffs() []StepDiff { return r.diffs }

// CreatedUtc returns when the review was opened.
func (r *ReviewRecord) CreatedUtc() time.Time { return r.createdUtc }

// DecidedUtc returns when the review was decided, nil while pending.
func (r *ReviewRecord) DecidedUtc() *time.Time { return r.decidedUtc }

// IsPending reports whether the record awaits a decision.
func (r *ReviewRecord) IsPending() bool { return r.decision == DecisionPending }

// Approve decides the record positively. The decision alters nothing but
// the record itself; any route change under review happened when the
// adjustment was applied.
func (r *ReviewRecord) Approve(
	reviewer kernel.EmpNo,
	role kernel.Role,
	note string,
	now time.Time,
) error {
	if err := r.authorizeDecision(reviewer, role); err != nil {
		return err
	}
	r.decision = DecisionApproved
	r.reviewer = &reviewer
	r.note = note
	r.decidedUtc = &now
	return nil
}

// Reject decides the record negatively. A rejection reason is required so
// the operator knows what to correct.
func (r *ReviewRecord) Reject(
	reviewer kernel.EmpNo,
	role kernel.Role,
	reason string,
	now time.Time,
) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}
	if err := r.authorizeDecision(reviewer, role); err != nil {
		return err
	}
	r.decision = DecisionRejected
	r.reviewer = &reviewer
	r.note = reason
	r.decidedUtc = &now
	return nil
}

func (r *ReviewRecord) authorizeDecision(reviewer kernel.EmpNo, role kernel.Role) error {
	if err := reviewer.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}
	if r.decision != DecisionPending {
		return ErrAlreadyDecided
	}
	if r.phase == SupervisorReview && !role.CanReview() {
		return fmt.Errorf("%w: role is %s", ErrReviewerRoleInsufficient, role.String())
	}
	return nil
}

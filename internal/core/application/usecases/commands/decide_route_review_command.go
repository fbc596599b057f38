package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrDecideRouteReviewCommandIsNotConstructed = errors.New(
	"DecideRouteReviewCommand must be created via NewDecideRouteReviewCommand constructor",
)

// DecideRouteReviewCommand carries a supervisor's decision on the
// pending adjustment review of an order line.
type DecideRouteReviewCommand struct { //nolint:recvcheck //using for validation
	lineID     kernel.UUID
	approved   bool
	note       string
	reviewer   kernel.EmpNo
	actingRole kernel.Role

	guard guard.ConstructorGuard
}

// NewDecideRouteReviewCommand creates a validated decision command. A
// rejection requires a note explaining what to correct.
func NewDecideRouteReviewCommand(
	lineID kernel.UUID,
	approved bool,
	note string,
	reviewer kernel.EmpNo,
	actingRole kernel.Role,
) (DecideRouteReviewCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		reviewer.Validate(),
		actingRole.Validate(),
	); err != nil {
		return DecideRouteReviewCommand{}, err
	}
	if !approved && note == "" {
		return DecideRouteReviewCommand{}, errs.NewValueIsRequiredError("note")
	}

	return DecideRouteReviewCommand{
		lineID:     lineID,
		approved:   approved,
		note:       note,
		reviewer:   reviewer,
		actingRole: actingRole,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideRouteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDecideRouteReviewCommandIsNotConstructed)
}

// LineID returns the order line whose pending review is decided.
func (c DecideRouteReviewCommand) LineID() kernel.UUID { return c.lineID }

// Approved reports whether the proposal is accepted.
func (c DecideRouteReviewCommand) Approved() bool { return c.approved }

// Note returns the decision note.
func (c DecideRouteReviewCommand) Note() string { return c.note }

// Reviewer returns the deciding supervisor.
func (c DecideRouteReviewCommand) Reviewer() kernel.EmpNo { return c.reviewer }

// ActingRole returns the role of the deciding user.
func (c DecideRouteReviewCommand) ActingRole() kernel.Role { return c.actingRole }

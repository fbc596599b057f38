package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrScanInStepCommandIsNotConstructed = errors.New(
	"ScanInStepCommand must be created via NewScanInStepCommand constructor",
)

// ScanInStepCommand records an operator badge scan onto a route step,
// moving it to InProgress. Re-scanning an in-progress step is idempotent.
type ScanInStepCommand struct { //nolint:recvcheck //using for validation
	lineID       kernel.UUID
	stepID       kernel.UUID
	empNo        kernel.EmpNo
	deviceID     string
	workCenterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewScanInStepCommand creates a validated scan-in command.
func NewScanInStepCommand(
	lineID, stepID kernel.UUID,
	empNo kernel.EmpNo,
	deviceID string,
	workCenterID kernel.UUID,
) (ScanInStepCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		empNo.Validate(),
		workCenterID.Validate(),
	); err != nil {
		return ScanInStepCommand{}, err
	}

	return ScanInStepCommand{
		lineID:       lineID,
		stepID:       stepID,
		empNo:        empNo,
		deviceID:     deviceID,
		workCenterID: workCenterID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ScanInStepCommand) Validate() error {
	return c.guard.Validate(ErrScanInStepCommandIsNotConstructed)
}

// LineID returns the order line whose route is scanned.
func (c ScanInStepCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the step receiving the scan.
func (c ScanInStepCommand) StepID() kernel.UUID { return c.stepID }

// EmpNo returns the scanning operator.
func (c ScanInStepCommand) EmpNo() kernel.EmpNo { return c.empNo }

// DeviceID returns the scanning terminal, for the audit trail.
func (c ScanInStepCommand) DeviceID() string { return c.deviceID }

// WorkCenterID returns the work center the scan happened at.
func (c ScanInStepCommand) WorkCenterID() kernel.UUID { return c.workCenterID }

package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrScanOutStepCommandIsNotConstructed = errors.New(
	"ScanOutStepCommand must be created via NewScanOutStepCommand constructor",
)

// ScanOutStepCommand stamps an operator's scan-out time on a step. The
// step stays in its current state; scanning out never completes it.
type ScanOutStepCommand struct { //nolint:recvcheck //using for validation
	lineID       kernel.UUID
	stepID       kernel.UUID
	empNo        kernel.EmpNo
	deviceID     string
	workCenterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewScanOutStepCommand creates a validated scan-out command.
func NewScanOutStepCommand(
	lineID, stepID kernel.UUID,
	empNo kernel.EmpNo,
	deviceID string,
	workCenterID kernel.UUID,
) (ScanOutStepCommand, error) {
	if err := errors.Join(
		lineID.Validate(),
		stepID.Validate(),
		empNo.Validate(),
		workCenterID.Validate(),
	); err != nil {
		return ScanOutStepCommand{}, err
	}

	return ScanOutStepCommand{
		lineID:       lineID,
		stepID:       stepID,
		empNo:        empNo,
		deviceID:     deviceID,
		workCenterID: workCenterID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ScanOutStepCommand) Validate() error {
	return c.guard.Validate(ErrScanOutStepCommandIsNotConstructed)
}

// LineID returns the order line whose route is scanned.
func (c ScanOutStepCommand) LineID() kernel.UUID { return c.lineID }

// StepID returns the step receiving the scan.
func (c ScanOutStepCommand) StepID() kernel.UUID { return c.stepID }

// EmpNo returns the scanning operator.
func (c ScanOutStepCommand) EmpNo() kernel.EmpNo { return c.empNo }

// DeviceID returns the scanning terminal, for the audit trail.
func (c ScanOutStepCommand) DeviceID() string { return c.deviceID }

// WorkCenterID returns the work center the scan happened at.
func (c ScanOutStepCommand) WorkCenterID() kernel.UUID { return c.workCenterID }

package kernel

import "shopfloor/internal/pkg/errs"

// ErrEmpNoIsRequired indicates an empty employee number on an operation
// that must be attributable to a person.
var ErrEmpNoIsRequired = errs.NewValueIsRequiredError("empNo")

// EmpNo identifies the employee performing an action. Every capture and
// transition in the system is attributed to an EmpNo for audit purposes.
type EmpNo string

// NewEmpNo validates and returns an employee number.
func NewEmpNo(s string) (EmpNo, error) {
	e := EmpNo(s)
	if err := e.Validate(); err != nil {
		return "", err
	}
	return e, nil
}

// Validate rejects the empty employee number.
func (e EmpNo) Validate() error {
	if e == "" {
		return ErrEmpNoIsRequired
	}
	return nil
}

// String returns the raw badge number.
func (e EmpNo) String() string {
	return string(e)
}

package kernel

import (
	"fmt"

	"shopfloor/internal/pkg/errs"
)

// Role represents the acting role attached to every mutating operation.
// Permission rules in the domain model read the role rather than any
// transport-level identity: operators drive route execution, supervisors
// own review decisions, administrators manage reason-code configuration
// and clerks handle order paperwork and dispatch.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// RoleOperator executes route steps at a work center.
	RoleOperator

	// RoleSupervisor reviews and corrects route plans and makes
	// approve/reject decisions.
	RoleSupervisor

	// RoleAdministrator manages configuration such as hold reason codes.
	RoleAdministrator

	// RoleClerk maintains order data, the transportation board and
	// invoicing paperwork.
	RoleClerk
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "Unknown",
		RoleOperator:      "Operator",
		RoleSupervisor:    "Supervisor",
		RoleAdministrator: "Administrator",
		RoleClerk:         "Clerk",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as invalid
	return map[Role]string{
		RoleOperator:      "Operator",
		RoleSupervisor:    "Supervisor",
		RoleAdministrator: "Administrator",
		RoleClerk:         "Clerk",
	}
}

// RoleFromString parses a role name as received on the transport boundary.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined acting roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable role name.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// CanAdminister reports whether the role may manage configuration data
// such as hold reason codes.
func (r Role) CanAdminister() bool {
	return r == RoleAdministrator
}

// CanReview reports whether the role may act on the route review and
// supervisor decision queues.
func (r Role) CanReview() bool {
	return r == RoleSupervisor || r == RoleAdministrator
}

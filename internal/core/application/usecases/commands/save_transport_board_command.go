package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/dispatch"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrSaveTransportBoardCommandIsNotConstructed = errors.New(
	"SaveTransportBoardCommand must be created via NewSaveTransportBoardCommand constructor",
)

// SaveTransportBoardCommand persists the edited rows of the dispatch
// board. Each patch carries only the fields the dispatcher touched.
type SaveTransportBoardCommand struct { //nolint:recvcheck //using for validation
	patches []dispatch.Patch

	guard guard.ConstructorGuard
}

// NewSaveTransportBoardCommand creates a validated board save command.
func NewSaveTransportBoardCommand(patches []dispatch.Patch) (SaveTransportBoardCommand, error) {
	if len(patches) == 0 {
		return SaveTransportBoardCommand{}, errs.NewValueIsRequiredError("patches")
	}
	for _, p := range patches {
		if err := p.OrderID.Validate(); err != nil {
			return SaveTransportBoardCommand{}, err
		}
		if len(p.Fields) == 0 {
			return SaveTransportBoardCommand{}, errs.NewValueIsRequiredError("fields")
		}
	}

	return SaveTransportBoardCommand{
		patches: patches,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveTransportBoardCommand) Validate() error {
	return c.guard.Validate(ErrSaveTransportBoardCommandIsNotConstructed)
}

// Patches returns the per-order partial updates to persist.
func (c SaveTransportBoardCommand) Patches() []dispatch.Patch { return c.patches }
